package journal

type RecordType uint8

const (
	RecordRequest RecordType = iota
	RecordBid
	RecordAccept
	RecordSettleCreator
	RecordSettleBidder
	RecordReclaim
)

// Record is one committed ledger operation. Seq is the global commit
// sequence, Time the clock value the operation observed; replay pins
// the ledger clock to it so expiry decisions reproduce exactly.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, ts int64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: ts,
		Data: data,
	}
}
