package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"google.golang.org/grpc"

	"otomic/api/grpcserver"
	"otomic/api/pb"

	"otomic/domain/rfq"
	"otomic/infra/custody"
	"otomic/infra/wal/journal"
	"otomic/infra/wal/outbox"
	"otomic/jobs/broadcaster"
	"otomic/service"
)

const (
	listenAddr = ":50051"

	journalDir  = "./wal_journal"
	outboxDir   = "./wal_outbox"
	bankDir     = "./bank"
	snapshotDir = "./snapshots"

	kafkaTopic = "otomic.events"

	// 10 days
	requestLifetime = int64(10 * 24 * 60 * 60)

	snapshotInterval  = time.Minute
	broadcastInterval = 250 * time.Millisecond
)

var kafkaBrokers = []string{"localhost:9092"}

func main() {
	// ---------------- Journal ----------------

	jnl, err := journal.Open(journal.Config{
		Dir:         journalDir,
		SegmentSize: 2 * 1024 * 1024,
	})
	if err != nil {
		log.Fatalf("journal init failed: %v", err)
	}
	defer jnl.Close()

	// ---------------- Outbox ----------------

	ob, err := outbox.Open(outboxDir)
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer ob.Close()

	// ---------------- Custody ----------------

	bank, err := custody.OpenPebbleBank(bankDir)
	if err != nil {
		log.Fatalf("custody bank init failed: %v", err)
	}
	defer bank.Close()

	// ---------------- Service (snapshot + replay) ----------------

	svc, err := service.Boot(service.BootConfig{
		RequestLifetime: requestLifetime,
		JournalDir:      journalDir,
		SnapshotDir:     snapshotDir,
		Journal:         jnl,
		Outbox:          ob,
		Bank:            bank,
		Clock:           &rfq.WallClock{},
	})
	if err != nil {
		log.Fatalf("boot failed: %v", err)
	}

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartSnapshotJob(snapshotDir, snapshotInterval)

	bc, err := broadcaster.New(ob, kafkaBrokers, kafkaTopic, broadcastInterval)
	if err != nil {
		log.Fatalf("broadcaster init failed: %v", err)
	}
	defer bc.Close()
	bc.Start(ctx)

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterExchangeServer(grpcSrv, grpcserver.NewServer(svc))

	fmt.Println("🚀 otomic exchange ledger running on " + listenAddr)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
