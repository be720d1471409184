package indexer

import (
	"testing"

	"otomic/api/pb"
)

func newBare() *Indexer {
	return &Indexer{requests: make(map[uint64]*Request)}
}

func TestApplyFoldsFullLifecycle(t *testing.T) {
	ix := newBare()

	ix.Apply(&pb.Event{
		Type: pb.EventRequestCreated, Seq: 1,
		RequestId: 1, Account: "alice",
		AssetOffered: "GOLD", AssetWanted: "SILVER", Amount: 100, Time: 1000,
	})
	ix.Apply(&pb.Event{
		Type: pb.EventBidSubmitted, Seq: 2,
		RequestId: 1, BidId: 2, Account: "bob", Amount: 80, Time: 1010,
	})
	ix.Apply(&pb.Event{
		Type: pb.EventBidSubmitted, Seq: 3,
		RequestId: 1, BidId: 3, Account: "carol", Amount: 70, Time: 1020,
	})
	ix.Apply(&pb.Event{
		Type: pb.EventBidAccepted, Seq: 4,
		RequestId: 1, BidId: 2, Account: "alice", Time: 1030,
	})

	req, ok := ix.Request(1)
	if !ok {
		t.Fatal("request not indexed")
	}
	if req.Creator != "alice" || req.AssetOffered != "GOLD" || req.Amount != 100 {
		t.Fatalf("request fields: %+v", req)
	}
	if !req.Accepted || req.AcceptedBidID != 2 || req.Closed {
		t.Fatalf("acceptance state: %+v", req)
	}
	if len(req.Bids) != 2 || req.Bids[0].Bidder != "bob" || req.Bids[1].Bidder != "carol" {
		t.Fatalf("bids: %+v", req.Bids)
	}

	ix.Apply(&pb.Event{Type: pb.EventCreatorSettled, Seq: 5, RequestId: 1, Account: "alice", Time: 1040})

	req, _ = ix.Request(1)
	if !req.Closed {
		t.Fatal("creator settlement must close the indexed request")
	}
}

func TestApplyReclaimCloses(t *testing.T) {
	ix := newBare()

	ix.Apply(&pb.Event{Type: pb.EventRequestCreated, Seq: 1, RequestId: 9, Account: "alice", Amount: 5, Time: 100})
	ix.Apply(&pb.Event{Type: pb.EventReclaimed, Seq: 2, RequestId: 9, Account: "alice", Time: 200})

	req, ok := ix.Request(9)
	if !ok || !req.Closed {
		t.Fatalf("reclaimed request: ok=%v %+v", ok, req)
	}
	if req.Accepted {
		t.Fatalf("reclaim must not mark acceptance: %+v", req)
	}
}

func TestApplyIgnoresOrphanBid(t *testing.T) {
	ix := newBare()

	// Events for a request that predates the topic's retention window.
	ix.Apply(&pb.Event{Type: pb.EventBidSubmitted, Seq: 1, RequestId: 404, BidId: 1, Account: "bob", Amount: 10})
	ix.Apply(&pb.Event{Type: pb.EventBidAccepted, Seq: 2, RequestId: 404, BidId: 1})

	if _, ok := ix.Request(404); ok {
		t.Fatal("orphan events must not create a request")
	}
	if got := ix.Requests(); len(got) != 0 {
		t.Fatalf("index not empty: %+v", got)
	}
}

func TestRequestReturnsCopies(t *testing.T) {
	ix := newBare()
	ix.Apply(&pb.Event{Type: pb.EventRequestCreated, Seq: 1, RequestId: 1, Account: "alice", Amount: 10})
	ix.Apply(&pb.Event{Type: pb.EventBidSubmitted, Seq: 2, RequestId: 1, BidId: 2, Account: "bob", Amount: 8})

	req, _ := ix.Request(1)
	req.Bids[0].Bidder = "mallory"

	again, _ := ix.Request(1)
	if again.Bids[0].Bidder != "bob" {
		t.Fatal("query result aliases internal state")
	}
}
