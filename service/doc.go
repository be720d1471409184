// Package service orchestrates the core components of the exchange —
// ledger, custody, command journal, event outbox, and snapshots.
//
// It is the ONLY write entry point into the system. One mutex gives the
// ledger its single global commit order: every mutating call runs as
// one atomic step (custody transfer and status flip succeed or fail
// together inside the ledger), then journals the committed operation
// and enqueues its notification event.
package service
