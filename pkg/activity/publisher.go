// Package activity publishes append-only activity log records to Kafka.
// Persistence for dashboard reads stays in the activity repository; the
// stream is a fan-out for downstream consumers.
package activity

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/pkg/logger"
)

// Publisher emits activity log items
type Publisher interface {
	// Publish enqueues an item for delivery (non-blocking; items may be
	// dropped when the buffer is full)
	Publish(ctx context.Context, item *domain.ActivityLogItem)
	// Close flushes pending items and shuts down
	Close() error
}

// NopPublisher discards all items. Used when Kafka is disabled.
type NopPublisher struct{}

// Publish discards the item
func (NopPublisher) Publish(ctx context.Context, item *domain.ActivityLogItem) {}

// Close is a no-op
func (NopPublisher) Close() error { return nil }

// KafkaConfig holds Kafka publisher settings
type KafkaConfig struct {
	Brokers  []string
	ClientID string
	Topic    string
	// BufferSize is the size of the async buffer (default: 1000)
	BufferSize int
	// FlushTimeout bounds the final flush on Close (default: 10s)
	FlushTimeout time.Duration
}

// KafkaPublisher publishes activity items to a Kafka topic via franz-go.
// Items are buffered and produced by a background worker so callers never
// block on the broker.
type KafkaPublisher struct {
	client    *kgo.Client
	topic     string
	buffer    chan *domain.ActivityLogItem
	wg        sync.WaitGroup
	closeOnce sync.Once
	flushWait time.Duration
}

// NewKafkaPublisher creates a Kafka-backed activity publisher
func NewKafkaPublisher(cfg *KafkaConfig) (*KafkaPublisher, error) {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.FlushTimeout <= 0 {
		cfg.FlushTimeout = 10 * time.Second
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, err
	}

	p := &KafkaPublisher{
		client:    client,
		topic:     cfg.Topic,
		buffer:    make(chan *domain.ActivityLogItem, cfg.BufferSize),
		flushWait: cfg.FlushTimeout,
	}

	p.wg.Add(1)
	go p.worker()

	return p, nil
}

// Publish enqueues an item for delivery
func (p *KafkaPublisher) Publish(ctx context.Context, item *domain.ActivityLogItem) {
	select {
	case p.buffer <- item:
	default:
		// Buffer full; the activity stream is best-effort
		logger.WarnCtx(ctx, "activity buffer full, dropping item",
			zap.String("action_type", item.ActionType))
	}
}

// Close flushes pending items and shuts down the producer
func (p *KafkaPublisher) Close() error {
	p.closeOnce.Do(func() {
		close(p.buffer)
		p.wg.Wait()

		ctx, cancel := context.WithTimeout(context.Background(), p.flushWait)
		defer cancel()
		_ = p.client.Flush(ctx)
		p.client.Close()
	})
	return nil
}

// worker drains the buffer and produces records asynchronously
func (p *KafkaPublisher) worker() {
	defer p.wg.Done()

	for item := range p.buffer {
		payload, err := json.Marshal(item)
		if err != nil {
			logger.Error("failed to serialize activity item", zap.Error(err))
			continue
		}

		record := &kgo.Record{
			Topic: p.topic,
			Key:   []byte(item.UserID),
			Value: payload,
		}

		p.client.Produce(context.Background(), record, func(r *kgo.Record, err error) {
			if err != nil {
				logger.Error("failed to produce activity record",
					zap.String("action_type", item.ActionType),
					zap.Error(err))
			}
		})
	}
}
