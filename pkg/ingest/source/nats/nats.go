// Package nats is an alternate observation stream source backed by a
// JetStream durable consumer with explicit acks.
package nats

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/edgeflare/stationd/pkg/ingest"
)

// Config represents NATS source configuration.
type Config struct {
	Servers  []string `mapstructure:"servers"`
	Stream   string   `mapstructure:"stream"`
	Subject  string   `mapstructure:"subject"`
	Durable  string   `mapstructure:"durable"`
	Username string   `mapstructure:"username,omitempty"`
	Password string   `mapstructure:"password,omitempty"`
}

func (c *Config) applyDefaults() {
	if len(c.Servers) == 0 {
		c.Servers = []string{nats.DefaultURL}
	}
	c.Subject = cmp.Or(c.Subject, "observations.>")
	c.Stream = cmp.Or(c.Stream, "observations")
	c.Durable = cmp.Or(c.Durable, "stationd")
}

// Source pulls observation messages from a JetStream stream.
type Source struct {
	nc     *nats.Conn
	js     nats.JetStreamContext
	cfg    Config
	logger *zap.Logger
}

// New connects to the first reachable server and ensures the stream exists.
func New(cfg Config, logger *zap.Logger) (*Source, error) {
	cfg.applyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []nats.Option{
		nats.Timeout(5 * time.Second),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	}
	if cfg.Username != "" && cfg.Password != "" {
		opts = append(opts, nats.UserInfo(cfg.Username, cfg.Password))
	}

	var nc *nats.Conn
	var err error
	for _, server := range cfg.Servers {
		nc, err = nats.Connect(server, opts...)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("nats source: connect: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("nats source: create JetStream context: %w", err)
	}

	s := &Source{nc: nc, js: js, cfg: cfg, logger: logger}
	if err := s.ensureStream(); err != nil {
		nc.Close()
		return nil, fmt.Errorf("nats source: ensure stream: %w", err)
	}
	return s, nil
}

func (s *Source) Name() string { return "nats" }

// Messages starts a pull loop against a durable consumer. Each message's Ack
// is the JetStream explicit ack; nacked or unacked messages are redelivered.
func (s *Source) Messages(ctx context.Context) (<-chan ingest.Message, error) {
	_, err := s.js.AddConsumer(s.cfg.Stream, &nats.ConsumerConfig{
		Durable:       s.cfg.Durable,
		AckPolicy:     nats.AckExplicitPolicy,
		AckWait:       time.Minute,
		FilterSubject: s.cfg.Subject,
	})
	if err != nil && !errors.Is(err, nats.ErrConsumerNameAlreadyInUse) {
		return nil, fmt.Errorf("nats source: create consumer: %w", err)
	}

	sub, err := s.js.PullSubscribe(s.cfg.Subject, s.cfg.Durable)
	if err != nil {
		return nil, fmt.Errorf("nats source: create subscription: %w", err)
	}

	out := make(chan ingest.Message, 64)
	go s.pull(ctx, sub, out)

	s.logger.Info("nats source started",
		zap.String("stream", s.cfg.Stream),
		zap.String("subject", s.cfg.Subject),
		zap.String("durable", s.cfg.Durable))
	return out, nil
}

func (s *Source) pull(ctx context.Context, sub *nats.Subscription, out chan<- ingest.Message) {
	defer close(out)
	defer func() {
		if err := sub.Unsubscribe(); err != nil {
			s.logger.Warn("nats unsubscribe failed", zap.Error(err))
		}
	}()

	for {
		if ctx.Err() != nil {
			return
		}
		msgs, err := sub.Fetch(10, nats.MaxWait(time.Second))
		if err != nil {
			if !errors.Is(err, nats.ErrTimeout) && ctx.Err() == nil {
				s.logger.Warn("fetch messages", zap.Error(err))
			}
			continue
		}

		for _, msg := range msgs {
			m := msg
			var offset int64
			if meta, err := m.Metadata(); err == nil {
				offset = int64(meta.Sequence.Stream)
			}
			im := ingest.Message{
				Value:  m.Data,
				Source: "nats",
				Topic:  m.Subject,
				Offset: offset,
				Ack: func() {
					if err := m.Ack(); err != nil {
						s.logger.Warn("nats ack failed", zap.Error(err))
					}
				},
			}
			select {
			case out <- im:
			case <-ctx.Done():
				// Not acked; JetStream redelivers after AckWait.
				return
			}
		}
	}
}

func (s *Source) Close() error {
	s.nc.Close()
	return nil
}

func (s *Source) ensureStream() error {
	config := &nats.StreamConfig{
		Name:     s.cfg.Stream,
		Subjects: []string{s.cfg.Subject},
		Storage:  nats.FileStorage,
		Replicas: 1,
	}

	_, err := s.js.StreamInfo(s.cfg.Stream)
	if err == nil {
		return nil
	}
	if !errors.Is(err, nats.ErrStreamNotFound) {
		return fmt.Errorf("get stream info: %w", err)
	}

	if _, err := s.js.AddStream(config); err != nil {
		return fmt.Errorf("create stream: %w", err)
	}
	s.logger.Info("created stream", zap.String("stream", s.cfg.Stream))
	return nil
}
