package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/edgeflare/stationd/pkg/station"
)

// Memory is an in-process Client backed by rf independent replicas. It
// implements the same quorum and last-write-wins semantics the Cassandra
// client gets from its cluster: a write is applied to every reachable replica
// and succeeds once q have acked; a read gathers q reachable replicas and
// merges rows by write timestamp. Replicas can be failed and restored, which
// is what makes the consistency arithmetic (R + W > RF) directly testable.
// It also serves as the dev backend when no cluster is around.
type Memory struct {
	mu       sync.Mutex
	replicas []*replica
	clock    int64
}

type replica struct {
	down       bool
	partitions map[string]*partition
}

type partition struct {
	name   string
	nameTS int64
	rows   map[string]timestampedRow
}

type timestampedRow struct {
	obs station.Observation
	ts  int64
}

// NewMemory returns a Memory store with rf replicas, all reachable.
func NewMemory(rf int) *Memory {
	m := &Memory{replicas: make([]*replica, rf)}
	for i := range m.replicas {
		m.replicas[i] = &replica{partitions: make(map[string]*partition)}
	}
	return m
}

// FailReplica makes replica i unreachable for subsequent operations.
func (m *Memory) FailReplica(i int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replicas[i].down = true
}

// RestoreReplica brings replica i back. It does not backfill writes the
// replica missed while down; convergence comes from read-time merging, as
// with a replica that rejoined before repair.
func (m *Memory) RestoreReplica(i int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replicas[i].down = false
}

// ReplicationFactor returns the number of replicas.
func (m *Memory) ReplicationFactor() int { return len(m.replicas) }

func (m *Memory) EnsureSchema(context.Context) error { return nil }

func (m *Memory) UpsertObservation(ctx context.Context, obs station.Observation, q Quorum) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clock++
	ts := m.clock
	acked := 0
	for _, r := range m.replicas {
		if r.down {
			continue
		}
		p := r.partition(obs.ID)
		p.rows[obs.DateString()] = timestampedRow{obs: obs, ts: ts}
		if obs.Name != "" {
			p.setName(obs.Name, ts)
		}
		acked++
	}
	if acked < int(q) {
		return fmt.Errorf("%w: %d of %d acks", ErrUnavailable, acked, q)
	}
	return nil
}

func (m *Memory) UpsertName(ctx context.Context, stationID, name string, q Quorum) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clock++
	ts := m.clock
	acked := 0
	for _, r := range m.replicas {
		if r.down {
			continue
		}
		r.partition(stationID).setName(name, ts)
		acked++
	}
	if acked < int(q) {
		return fmt.Errorf("%w: %d of %d acks", ErrUnavailable, acked, q)
	}
	return nil
}

func (m *Memory) Name(ctx context.Context, stationID string, q Quorum) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	queried, err := m.gather(q)
	if err != nil {
		return "", err
	}

	var name string
	var nameTS int64 = -1
	found := false
	for _, r := range queried {
		p, ok := r.partitions[stationID]
		if !ok {
			continue
		}
		found = true
		if p.name != "" && p.nameTS > nameTS {
			name, nameTS = p.name, p.nameTS
		}
	}
	if !found || name == "" {
		return "", ErrNotFound
	}
	return name, nil
}

func (m *Memory) Observations(ctx context.Context, stationID string, q Quorum) ([]station.Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	queried, err := m.gather(q)
	if err != nil {
		return nil, err
	}

	// Merge per date key: the latest write timestamp wins across replicas.
	merged := make(map[string]timestampedRow)
	for _, r := range queried {
		p, ok := r.partitions[stationID]
		if !ok {
			continue
		}
		for date, row := range p.rows {
			if cur, ok := merged[date]; !ok || row.ts > cur.ts {
				merged[date] = row
			}
		}
	}
	if len(merged) == 0 {
		return nil, ErrNotFound
	}

	dates := make([]string, 0, len(merged))
	for d := range merged {
		dates = append(dates, d)
	}
	// ISO dates sort lexicographically, which is clustering order.
	sort.Strings(dates)

	out := make([]station.Observation, 0, len(dates))
	for _, d := range dates {
		out = append(out, merged[d].obs)
	}
	return out, nil
}

func (m *Memory) Close() error { return nil }

// gather selects q reachable replicas for a read, or fails the read if fewer
// than q are reachable. Never silently degrades to a weaker read.
func (m *Memory) gather(q Quorum) ([]*replica, error) {
	reachable := make([]*replica, 0, len(m.replicas))
	for _, r := range m.replicas {
		if !r.down {
			reachable = append(reachable, r)
		}
	}
	if len(reachable) < int(q) {
		return nil, fmt.Errorf("%w: %d of %d replicas reachable", ErrUnavailable, len(reachable), q)
	}
	return reachable[:q], nil
}

func (r *replica) partition(stationID string) *partition {
	p, ok := r.partitions[stationID]
	if !ok {
		p = &partition{rows: make(map[string]timestampedRow)}
		r.partitions[stationID] = p
	}
	return p
}

func (p *partition) setName(name string, ts int64) {
	if ts > p.nameTS {
		p.name, p.nameTS = name, ts
	}
}
