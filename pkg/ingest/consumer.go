package ingest

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/edgeflare/stationd/pkg/metrics"
	"github.com/edgeflare/stationd/pkg/station"
	"github.com/edgeflare/stationd/pkg/store"
)

// Config tunes the consumer's write quorum and retry bounds.
type Config struct {
	// WriteQuorum is the availability-favoring write policy; one ack by
	// default so ingestion keeps accepting data while a majority of
	// replicas is unreachable.
	WriteQuorum store.Quorum `mapstructure:"writeQuorum"`
	// MaxRetries bounds retry attempts per message after the first try.
	MaxRetries      uint64        `mapstructure:"maxRetries"`
	InitialInterval time.Duration `mapstructure:"initialInterval"`
	MaxInterval     time.Duration `mapstructure:"maxInterval"`
	// StoreTimeout bounds each store round trip.
	StoreTimeout time.Duration `mapstructure:"storeTimeout"`
}

func (c *Config) applyDefaults() {
	if c.WriteQuorum <= 0 {
		c.WriteQuorum = store.QuorumOne
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 5
	}
	if c.InitialInterval <= 0 {
		c.InitialInterval = 200 * time.Millisecond
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = 5 * time.Second
	}
	if c.StoreTimeout <= 0 {
		c.StoreTimeout = 10 * time.Second
	}
}

// Consumer applies decoded stream records to the store. One Consumer may
// drain several sources concurrently; writes are idempotent upserts keyed by
// (station_id, date), so parallelism across stream partitions does not
// affect correctness.
type Consumer struct {
	store  store.Client
	dead   DeadLetterer
	cfg    Config
	logger *zap.Logger
}

func NewConsumer(client store.Client, dead DeadLetterer, cfg Config, logger *zap.Logger) *Consumer {
	cfg.applyDefaults()
	if dead == nil {
		dead = &LogDeadLetterer{Logger: logger}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{store: client, dead: dead, cfg: cfg, logger: logger}
}

// Run drains src until ctx is canceled or the source closes its channel.
// A malformed or unwritable message never stops the loop.
func (c *Consumer) Run(ctx context.Context, src Source) error {
	msgs, err := src.Messages(ctx)
	if err != nil {
		return err
	}
	c.logger.Info("consumer running", zap.String("source", src.Name()))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				c.logger.Info("source closed", zap.String("source", src.Name()))
				return nil
			}
			c.handle(ctx, msg)
		}
	}
}

// handle runs one message through decode → write-with-retry → ack. The ack
// is issued only after the write is confirmed or the message is permanently
// dead-lettered; on shutdown mid-retry the message is left unacked so the
// stream redelivers it.
func (c *Consumer) handle(ctx context.Context, msg Message) {
	rec, err := station.Decode(msg.Value)
	if err != nil {
		var decodeErr *station.DecodeError
		if errors.As(err, &decodeErr) {
			c.logger.Warn("skipping malformed record",
				zap.String("source", msg.Source),
				zap.String("field", decodeErr.Field),
				zap.Int64("offset", msg.Offset),
				zap.Error(err))
		}
		metrics.DecodeFailures.WithLabelValues(msg.Source).Inc()
		c.dead.DeadLetter(ctx, msg, "decode", err)
		msg.Ack()
		return
	}

	if err := c.write(ctx, rec); err != nil {
		if ctx.Err() != nil {
			// Shutting down: leave the message unacked; at-least-once
			// delivery replays it on restart.
			return
		}
		c.logger.Error("write retries exhausted, dead-lettering",
			zap.String("source", msg.Source),
			zap.String("station", rec.StationID),
			zap.Int64("offset", msg.Offset),
			zap.Error(err))
		c.dead.DeadLetter(ctx, msg, "write", err)
		msg.Ack()
		return
	}

	metrics.IngestedRecords.WithLabelValues(msg.Source).Inc()
	msg.Ack()
}

// write upserts the record with bounded exponential backoff. Only quorum
// unavailability is retried; anything else is a permanent failure.
func (c *Consumer) write(ctx context.Context, rec station.Record) error {
	attempt := 0
	op := func() error {
		opCtx, cancel := context.WithTimeout(ctx, c.cfg.StoreTimeout)
		defer cancel()

		var err error
		if rec.Observation != nil {
			err = c.store.UpsertObservation(opCtx, *rec.Observation, c.cfg.WriteQuorum)
		} else {
			err = c.store.UpsertName(opCtx, rec.StationID, rec.Name, c.cfg.WriteQuorum)
		}
		if err == nil {
			return nil
		}
		if errors.Is(err, store.ErrUnavailable) {
			if attempt > 0 {
				metrics.StoreWriteRetries.Inc()
			}
			attempt++
			return err
		}
		return backoff.Permanent(err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.cfg.InitialInterval
	bo.MaxInterval = c.cfg.MaxInterval
	bo.MaxElapsedTime = 0 // bounded by attempt count, not wall clock

	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, c.cfg.MaxRetries), ctx))
}
