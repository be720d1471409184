// Package journal is the ledger's command journal: a segmented,
// CRC-framed append-only log of every committed mutating operation.
// On boot the journal is replayed through the ledger state machine to
// rebuild in-memory state; after a snapshot the covered segments are
// truncated.
//
// Only committed operations are appended. Failed calls (bad caller,
// rejected transfer, expired window) leave no record.
package journal
