/*
Package token implements the ledger the escrow is built on.

A Mint identifies an asset type. Token balances are kept in Accounts, each
holding a single mint and owned by an authority that alone may move funds out
of it. Creating an account costs a deposit, paid from the native Wallet of a
payer and refunded when the account is closed.

An owner may be a signer, or an address derived from a program identity and
a list of seeds. The Authority implementations prove ownership for both
cases, see SignerAuthority and SeedAuthority.
*/
package token
