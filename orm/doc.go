/*
Package orm provides an easy to use db wrapper.

Every model kind is kept in its own ModelBucket, under a unique prefix, and is
always addressed by its primary key. For the escrow the primary key is an
address: the holding account address for token accounts and the derived offer
address for offers.
*/
package orm
