package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"otomic/jobs/indexer"
)

const (
	kafkaTopic    = "otomic.events"
	consumerGroup = "otomic-indexer"
)

var kafkaBrokers = []string{"localhost:9092"}

// Standalone consumer that mirrors the event topic into a queryable
// index and periodically reports what it sees. Client tooling embeds
// jobs/indexer directly; this binary exists for ops visibility.
func main() {
	ix := indexer.New(kafkaBrokers, kafkaTopic, consumerGroup)
	defer ix.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				reqs := ix.Requests()
				open := 0
				for _, r := range reqs {
					if !r.Closed {
						open++
					}
				}
				log.Printf("[indexer] tracking %d requests (%d unresolved)", len(reqs), open)
			}
		}
	}()

	if err := ix.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("indexer exited: %v", err)
	}
}
