package ingest

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeflare/stationd/pkg/station"
	"github.com/edgeflare/stationd/pkg/store"
)

// chanSource feeds canned messages to the consumer.
type chanSource struct {
	msgs chan Message
}

func newChanSource() *chanSource {
	return &chanSource{msgs: make(chan Message, 64)}
}

func (s *chanSource) Name() string { return "test" }
func (s *chanSource) Close() error { return nil }

func (s *chanSource) Messages(context.Context) (<-chan Message, error) { return s.msgs, nil }

func (s *chanSource) push(payload string, acked *atomic.Int32) {
	s.msgs <- Message{
		Value:  []byte(payload),
		Source: "test",
		Ack:    func() { acked.Add(1) },
	}
}

// recordingDeadLetterer captures dead-letter calls.
type recordingDeadLetterer struct {
	mu      sync.Mutex
	reasons []string
}

func (d *recordingDeadLetterer) DeadLetter(_ context.Context, _ Message, reason string, _ error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reasons = append(d.reasons, reason)
}

func (d *recordingDeadLetterer) Reasons() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.reasons...)
}

// flakyStore wraps a Memory store and fails the first n writes with the
// given error.
type flakyStore struct {
	store.Client
	mu       sync.Mutex
	failures int
	err      error
	attempts int
}

func (f *flakyStore) UpsertObservation(ctx context.Context, obs station.Observation, q store.Quorum) error {
	f.mu.Lock()
	f.attempts++
	fail := f.failures > 0
	if fail {
		f.failures--
	}
	f.mu.Unlock()
	if fail {
		return f.err
	}
	return f.Client.UpsertObservation(ctx, obs, q)
}

func (f *flakyStore) Attempts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts
}

func runConsumer(t *testing.T, c *Consumer, src Source) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.Run(ctx, src)
	}()
	return func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("consumer did not stop")
		}
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestConsumerAppliesValidSkipsCorrupt(t *testing.T) {
	m := store.NewMemory(3)
	dead := &recordingDeadLetterer{}
	c := NewConsumer(m, dead, Config{}, nil)
	src := newChanSource()

	var acked atomic.Int32
	src.push(`{"station_id":"USR0000WDDG","date":"2021-07-10","tmax":300}`, &acked)
	src.push(`tmax,344,garbage`, &acked)
	src.push(`{"station_id":"USR0000WDDG","date":"2021-07-11","tmax":344,"tmin":210}`, &acked)
	src.push(`{"station_id":"US1WIDA0007","date":"2021-07-11","tmax":289}`, &acked)

	stop := runConsumer(t, c, src)
	defer stop()
	waitFor(t, func() bool { return acked.Load() == 4 })

	got, err := m.Observations(context.Background(), "USR0000WDDG", store.Quorum(3))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = m.Observations(context.Background(), "US1WIDA0007", store.Quorum(3))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	assert.Equal(t, []string{"decode"}, dead.Reasons())
}

func TestConsumerAppliesMetadataRecord(t *testing.T) {
	m := store.NewMemory(3)
	c := NewConsumer(m, nil, Config{}, nil)
	src := newChanSource()

	var acked atomic.Int32
	src.push(`{"station_id":"USR0000WDDG","name":"DODGE WISCONSIN"}`, &acked)

	stop := runConsumer(t, c, src)
	defer stop()
	waitFor(t, func() bool { return acked.Load() == 1 })

	name, err := m.Name(context.Background(), "USR0000WDDG", store.Quorum(3))
	require.NoError(t, err)
	assert.Equal(t, "DODGE WISCONSIN", name)
}

func TestConsumerRetriesTransientUnavailability(t *testing.T) {
	f := &flakyStore{Client: store.NewMemory(3), failures: 2, err: store.ErrUnavailable}
	dead := &recordingDeadLetterer{}
	c := NewConsumer(f, dead, Config{
		MaxRetries:      5,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
	}, nil)
	src := newChanSource()

	var acked atomic.Int32
	src.push(`{"station_id":"X","date":"2021-07-11","tmax":344}`, &acked)

	stop := runConsumer(t, c, src)
	defer stop()
	waitFor(t, func() bool { return acked.Load() == 1 })

	got, err := f.Client.Observations(context.Background(), "X", store.Quorum(3))
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Empty(t, dead.Reasons())
	assert.Equal(t, 3, f.Attempts())
}

func TestConsumerDeadLettersOnExhaustion(t *testing.T) {
	f := &flakyStore{Client: store.NewMemory(3), failures: 100, err: store.ErrUnavailable}
	dead := &recordingDeadLetterer{}
	c := NewConsumer(f, dead, Config{
		MaxRetries:      2,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
	}, nil)
	src := newChanSource()

	var acked atomic.Int32
	src.push(`{"station_id":"X","date":"2021-07-11","tmax":344}`, &acked)

	stop := runConsumer(t, c, src)
	defer stop()
	waitFor(t, func() bool { return acked.Load() == 1 })

	assert.Equal(t, []string{"write"}, dead.Reasons())
	// Initial attempt plus MaxRetries.
	assert.Equal(t, 3, f.Attempts())

	_, err := f.Client.Observations(context.Background(), "X", store.Quorum(3))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestConsumerDoesNotRetryPermanentErrors(t *testing.T) {
	f := &flakyStore{Client: store.NewMemory(3), failures: 100, err: errors.New("invalid query")}
	dead := &recordingDeadLetterer{}
	c := NewConsumer(f, dead, Config{
		MaxRetries:      5,
		InitialInterval: time.Millisecond,
	}, nil)
	src := newChanSource()

	var acked atomic.Int32
	src.push(`{"station_id":"X","date":"2021-07-11","tmax":344}`, &acked)

	stop := runConsumer(t, c, src)
	defer stop()
	waitFor(t, func() bool { return acked.Load() == 1 })

	assert.Equal(t, []string{"write"}, dead.Reasons())
	assert.Equal(t, 1, f.Attempts())
}

// On shutdown mid-retry the message must stay unacked so the stream
// redelivers it after restart.
func TestConsumerLeavesUnackedOnShutdown(t *testing.T) {
	f := &flakyStore{Client: store.NewMemory(3), failures: 1 << 30, err: store.ErrUnavailable}
	dead := &recordingDeadLetterer{}
	c := NewConsumer(f, dead, Config{
		MaxRetries:      1 << 30,
		InitialInterval: 10 * time.Millisecond,
		MaxInterval:     10 * time.Millisecond,
	}, nil)
	src := newChanSource()

	var acked atomic.Int32
	src.push(`{"station_id":"X","date":"2021-07-11","tmax":344}`, &acked)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.Run(ctx, src)
	}()

	// Let it enter the retry loop, then shut down.
	waitFor(t, func() bool { return f.Attempts() >= 2 })
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not stop")
	}

	assert.Equal(t, int32(0), acked.Load())
	assert.Empty(t, dead.Reasons())
}

func TestConsumerStopsWhenSourceCloses(t *testing.T) {
	c := NewConsumer(store.NewMemory(1), nil, Config{}, nil)
	src := newChanSource()
	close(src.msgs)

	err := c.Run(context.Background(), src)
	require.NoError(t, err)
}
