// Package kafka is the primary observation stream source: a sarama consumer
// group whose offsets advance only through explicit per-message acks.
package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/edgeflare/stationd/pkg/ingest"
)

// Source drains one Kafka topic through a consumer group. Partitions are
// claimed per group member; each claim is consumed in order, which keeps the
// consumer logically single-threaded per stream partition.
type Source struct {
	group  sarama.ConsumerGroup
	cfg    Config
	logger *zap.Logger
}

// New connects the consumer group.
func New(cfg Config, logger *zap.Logger) (*Source, error) {
	cfg.applyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	conf, err := cfg.ToSaramaConfig()
	if err != nil {
		return nil, fmt.Errorf("kafka source: %w", err)
	}

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.Group, conf)
	if err != nil {
		return nil, fmt.Errorf("kafka source: create consumer group: %w", err)
	}

	return &Source{group: group, cfg: cfg, logger: logger}, nil
}

func (s *Source) Name() string { return "kafka" }

// Messages starts the consume loop. The returned channel closes when ctx is
// canceled or the group shuts down. Rebalances re-enter Consume, as sarama
// requires.
func (s *Source) Messages(ctx context.Context) (<-chan ingest.Message, error) {
	out := make(chan ingest.Message, 64)
	handler := &groupHandler{out: out, ctx: ctx}

	go func() {
		for err := range s.group.Errors() {
			s.logger.Warn("consumer group error", zap.Error(err))
		}
	}()

	go func() {
		defer close(out)
		for {
			if err := s.group.Consume(ctx, []string{s.cfg.Topic}, handler); err != nil {
				if errors.Is(err, sarama.ErrClosedConsumerGroup) {
					return
				}
				s.logger.Error("consume session ended", zap.Error(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	s.logger.Info("kafka source started",
		zap.Strings("brokers", s.cfg.Brokers),
		zap.String("topic", s.cfg.Topic),
		zap.String("group", s.cfg.Group))
	return out, nil
}

func (s *Source) Close() error {
	return s.group.Close()
}

type groupHandler struct {
	out chan<- ingest.Message
	ctx context.Context
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case <-h.ctx.Done():
			return nil
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			m := msg
			out := ingest.Message{
				Value:     m.Value,
				Source:    "kafka",
				Topic:     m.Topic,
				Partition: m.Partition,
				Offset:    m.Offset,
				Ack: func() {
					session.MarkMessage(m, "")
				},
			}
			select {
			case h.out <- out:
			case <-h.ctx.Done():
				return nil
			}
		}
	}
}
