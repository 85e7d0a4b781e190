// Package ingest turns the at-least-once, possibly-duplicated, possibly
// out-of-order observation stream into correct store state. The consumer is
// a dedicated task with its own cancellation signal, a bounded retry state
// machine per message, and an explicit acknowledgment step: a message's
// stream position is committed only after its store write is confirmed or it
// has been permanently dead-lettered.
package ingest

import "context"

// Message is one raw record received from a stream source, with the
// coordinates needed for dead-letter context and an Ack that commits the
// consumer's position past it. Ack must be safe to call exactly once.
type Message struct {
	Value     []byte
	Source    string // source name, e.g. "kafka"
	Topic     string
	Partition int32
	Offset    int64
	Ack       func()
}

// Source is a stream transport the consumer can drain. Messages returns a
// channel that closes when the source shuts down; implementations own their
// connection lifecycle and stop producing when ctx is canceled.
type Source interface {
	Name() string
	Messages(ctx context.Context) (<-chan Message, error)
	Close() error
}

// DeadLetterer records a message the pipeline is giving up on: malformed
// payloads, and writes whose retries exhausted. Dead-lettering must not
// fail ingestion; implementations log-and-continue on their own errors.
type DeadLetterer interface {
	DeadLetter(ctx context.Context, msg Message, reason string, cause error)
}
