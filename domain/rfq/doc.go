// Package rfq implements the exchange ledger for the request-for-quote
// market. A creator escrows a quantity of one asset against a request,
// bidders escrow the wanted asset against competing bids, the creator
// accepts exactly one bid, and both sides settle independently with no
// counterparty risk.
//
// The ledger is a pure single-writer state machine. It holds no locks
// and spawns nothing; callers (the service layer) serialize all
// mutations. Custody movements and time are supplied through the
// Custody and Clock interfaces so the state machine stays deterministic
// and replayable.
package rfq
