// Package store provides the replicated-store client the consumer writes
// through and the query service reads through. Every operation takes an
// explicit Quorum so write/read consistency levels are data, not constants
// scattered through call sites.
package store

import (
	"context"
	"errors"

	"github.com/edgeflare/stationd/pkg/station"
)

// Quorum is the number of replicas that must acknowledge an operation before
// it completes. The ingestion path writes at QuorumOne for availability; the
// query path reads at the replication factor so R + W > RF holds and a read
// issued after an acknowledged write observes it.
type Quorum int

// QuorumOne is the availability-favoring write policy: one replica ack.
const QuorumOne Quorum = 1

// Sentinel errors shared by all Client implementations.
var (
	// ErrNotFound reports a well-formed read against a partition that has
	// never been written. Not an internal fault.
	ErrNotFound = errors.New("store: not found")

	// ErrUnavailable reports that the store could not gather the required
	// replica acknowledgments within the timeout. Reads surface it verbatim
	// rather than degrading to a weaker consistency level; writes treat it
	// as transient and retry.
	ErrUnavailable = errors.New("store: not enough replicas available")
)

// Client is a connection-pooled, concurrency-safe handle on the replicated
// stations table.
//
// Conflict resolution is last-write-wins by write timestamp: a repeated write
// to the same (id, date) key, and racing writes to a partition's static name,
// resolve to the write the store timestamps latest. Implementations must
// return observations for a partition in ascending date order regardless of
// write order.
type Client interface {
	// EnsureSchema creates the keyspace and stations table if absent.
	EnsureSchema(ctx context.Context) error

	// UpsertObservation writes one observation, overwriting any prior value
	// for its (id, date) key. A non-empty obs.Name also updates the static
	// name column. Returns ErrUnavailable if fewer than q replicas ack.
	UpsertObservation(ctx context.Context, obs station.Observation, q Quorum) error

	// UpsertName writes only the partition's static name.
	UpsertName(ctx context.Context, stationID, name string, q Quorum) error

	// Name reads the partition's static name. ErrNotFound if the partition
	// has never been written or carries no name.
	Name(ctx context.Context, stationID string, q Quorum) (string, error)

	// Observations reads the full partition in clustering-key (date) order.
	// ErrNotFound if the partition holds no observation rows.
	Observations(ctx context.Context, stationID string, q Quorum) ([]station.Observation, error)

	Close() error
}
