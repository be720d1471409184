// Package custody implements the asset custody provider the ledger
// escrows through. Two banks are provided: MemBank keeps balances in a
// map and backs tests and embedded runs; PebbleBank persists balances
// in a pebble store with the debit and credit of each transfer
// committed in one batch.
//
// Both banks fail closed: a transfer that would overdraw the source
// moves nothing.
package custody
