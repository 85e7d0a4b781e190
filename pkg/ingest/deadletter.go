package ingest

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edgeflare/stationd/pkg/metrics"
)

// DeadLetterEnvelope wraps an abandoned message with enough context to
// replay or inspect it later.
type DeadLetterEnvelope struct {
	ID        string          `json:"id"`
	Reason    string          `json:"reason"`
	Error     string          `json:"error,omitempty"`
	Source    string          `json:"source"`
	Topic     string          `json:"topic,omitempty"`
	Partition int32           `json:"partition"`
	Offset    int64           `json:"offset"`
	Payload   json.RawMessage `json:"payload"`
	Time      time.Time       `json:"time"`
}

// KafkaDeadLetterer publishes abandoned messages to a dead-letter topic via
// a sarama sync producer. Its own publish failures are logged, never
// propagated: dead-lettering must not stall ingestion.
type KafkaDeadLetterer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *zap.Logger
}

func NewKafkaDeadLetterer(producer sarama.SyncProducer, topic string, logger *zap.Logger) *KafkaDeadLetterer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaDeadLetterer{producer: producer, topic: topic, logger: logger}
}

func (d *KafkaDeadLetterer) DeadLetter(_ context.Context, msg Message, reason string, cause error) {
	metrics.DeadLetteredRecords.WithLabelValues(msg.Source, reason).Inc()

	env := DeadLetterEnvelope{
		ID:        uuid.NewString(),
		Reason:    reason,
		Source:    msg.Source,
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Payload:   json.RawMessage(msg.Value),
		Time:      time.Now().UTC(),
	}
	if cause != nil {
		env.Error = cause.Error()
	}
	if !json.Valid(msg.Value) {
		// Keep the envelope valid JSON even when the payload is not.
		quoted, _ := json.Marshal(string(msg.Value))
		env.Payload = quoted
	}

	data, err := json.Marshal(env)
	if err != nil {
		d.logger.Error("marshal dead-letter envelope", zap.Error(err))
		return
	}

	partition, offset, err := d.producer.SendMessage(&sarama.ProducerMessage{
		Topic: d.topic,
		Key:   sarama.StringEncoder(env.ID),
		Value: sarama.ByteEncoder(data),
	})
	if err != nil {
		d.logger.Error("publish dead-letter message",
			zap.String("id", env.ID),
			zap.String("reason", reason),
			zap.Error(err))
		return
	}
	d.logger.Info("dead-lettered message",
		zap.String("id", env.ID),
		zap.String("reason", reason),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
}

// LogDeadLetterer is the fallback policy when no dead-letter topic is
// configured: record the loss and move on.
type LogDeadLetterer struct {
	Logger *zap.Logger
}

func (d *LogDeadLetterer) DeadLetter(_ context.Context, msg Message, reason string, cause error) {
	metrics.DeadLetteredRecords.WithLabelValues(msg.Source, reason).Inc()
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Warn("dead-lettered message",
		zap.String("source", msg.Source),
		zap.String("topic", msg.Topic),
		zap.Int32("partition", msg.Partition),
		zap.Int64("offset", msg.Offset),
		zap.String("reason", reason),
		zap.Error(cause))
}
