/*
Package offer implements a two party token swap escrow.

A maker locks an amount of asset A in a vault and asks for an amount of
asset B in exchange. The vault is a token account owned by the offer
address, derived from the maker and an id chosen by the maker. No private
key exists for that address, so only this package can move funds out of the
vault, by presenting the derivation seeds to the ledger.

A taker settles the offer by paying asset B to the maker and receiving the
vault content in a single instruction. The maker can instead cancel the
offer and reclaim asset A. Both operations destroy the offer record and the
vault and refund their deposits to the maker.

Instructions are binary encoded: an 8 byte discriminator followed by little
endian arguments, along with an ordered list of account addresses. See
DecodeInstruction.
*/
package offer
