/*

Package swap defines interfaces used throughout the escrow app, such as:
storage, transactions, handlers, addresses and derived authorities.
It also contains helpers to work with context and abci.

Look into this package to get a brief overview of design decisions made around
interfaces and extension building blocks. The escrow itself lives in x/offer,
the token ledger it settles on lives in x/token.

*/

package swap
