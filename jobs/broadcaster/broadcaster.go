// Package broadcaster drains the durable event outbox to Kafka. It is
// the only component that publishes; the service never talks to the
// broker directly, so a broker outage cannot block a commit.
package broadcaster

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/IBM/sarama"

	"otomic/infra/wal/outbox"
)

const maxRetries = 5

type Broadcaster struct {
	outbox   *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

func New(ob *outbox.Outbox, brokers []string, topic string, interval time.Duration) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    topic,
		interval: interval,
	}, nil
}

// ------------------------------------------------
// START LOOP
// ------------------------------------------------

func (b *Broadcaster) Start(ctx context.Context) {
	log.Println("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				b.replayOnce()
			}
		}
	}()
}

// ------------------------------------------------
// REPLAY LOGIC
// ------------------------------------------------

// replayOnce publishes every unacked outbox record. SENT is written
// before the publish attempt, so delivery is at-least-once: a crash
// after the broker accepted but before ACKED gets republished.
func (b *Broadcaster) replayOnce() {
	_ = b.outbox.ScanPending(func(rec *outbox.Record) error {
		if rec.Retries >= maxRetries {
			_ = b.outbox.MarkFailed(rec.Seq)
			log.Printf("[broadcaster] gave up on event seq=%d after %d attempts", rec.Seq, rec.Retries)
			return nil
		}

		_ = b.outbox.MarkSent(rec.Seq)

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(keyOf(rec.Seq)),
			Value: sarama.ByteEncoder(rec.Payload),
		}

		if _, _, err := b.producer.SendMessage(msg); err != nil {
			return nil // retry next tick
		}

		_ = b.outbox.MarkAcked(rec.Seq)
		return nil
	})
}

func keyOf(seq uint64) string {
	// Zero-padded so partition keys sort like commit order.
	return fmt.Sprintf("%020d", seq)
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
