/*
Package sigs provides basic authentication
middleware to verify the signatures on the transaction,
and maintain nonces for replay protection.

Every signer is identified by its ed25519 public key, which is also its
address. The per signer sequence is stored in the "sigs" bucket and must be
presented with every signature, starting at zero.
*/
package sigs
