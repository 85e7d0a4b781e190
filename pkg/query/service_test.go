package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/edgeflare/stationd/internal/testutil"
	"github.com/edgeflare/stationd/pkg/ingest"
	"github.com/edgeflare/stationd/pkg/station"
	"github.com/edgeflare/stationd/pkg/store"
	pb "github.com/edgeflare/stationd/proto/generated"
)

func newTestService(m *store.Memory) *Service {
	return NewService(m, station.Schema("weather"), Options{
		ReadQuorum:  store.Quorum(m.ReplicationFactor()),
		WriteQuorum: store.QuorumOne,
	}, nil)
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "expected grpc status, got %v", err)
	assert.Equal(t, code, st.Code())
}

func TestStationSchema(t *testing.T) {
	svc := newTestService(store.NewMemory(3))

	reply, err := svc.StationSchema(context.Background(), &pb.StationSchemaRequest{})
	require.NoError(t, err)

	assert.Equal(t, "weather", reply.GetKeyspace())
	assert.Equal(t, "stations", reply.GetTable())
	assert.Contains(t, reply.GetCql(), "CLUSTERING ORDER BY (date ASC)")

	kinds := map[string]string{}
	for _, c := range reply.GetColumns() {
		kinds[c.GetName()] = c.GetKind()
	}
	assert.Equal(t, "partition_key", kinds["id"])
	assert.Equal(t, "clustering", kinds["date"])
	assert.Equal(t, "static", kinds["name"])
	assert.Equal(t, "regular", kinds["tmax"])
}

func TestStationName(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory(3)
	require.NoError(t, m.UpsertName(ctx, "USR0000WDDG", "DODGE WISCONSIN", store.QuorumOne))

	svc := newTestService(m)
	reply, err := svc.StationName(ctx, &pb.StationNameRequest{Station: "USR0000WDDG"})
	require.NoError(t, err)
	assert.Equal(t, "DODGE WISCONSIN", reply.GetName())
}

func TestStationNameNotFound(t *testing.T) {
	svc := newTestService(store.NewMemory(3))

	_, err := svc.StationName(context.Background(), &pb.StationNameRequest{Station: "UNKNOWN"})
	requireCode(t, err, codes.NotFound)
}

func TestStationNameInvalidArgument(t *testing.T) {
	svc := newTestService(store.NewMemory(3))

	_, err := svc.StationName(context.Background(), &pb.StationNameRequest{})
	requireCode(t, err, codes.InvalidArgument)
}

func TestStationMax(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory(3)
	svc := newTestService(m)

	for _, tc := range []struct {
		date string
		tmax int32
	}{
		{"2021-07-10", 300},
		{"2021-07-11", 344},
		{"2021-07-12", 210},
	} {
		_, err := svc.RecordTemps(ctx, &pb.RecordTempsRequest{
			Station: "USR0000WDDG", Date: tc.date, Tmax: tc.tmax,
		})
		require.NoError(t, err)
	}

	reply, err := svc.StationMax(ctx, &pb.StationMaxRequest{Station: "USR0000WDDG"})
	require.NoError(t, err)
	assert.Equal(t, int32(344), reply.GetTmax())
}

func TestStationMaxNotFound(t *testing.T) {
	svc := newTestService(store.NewMemory(3))

	_, err := svc.StationMax(context.Background(), &pb.StationMaxRequest{Station: "UNKNOWN"})
	requireCode(t, err, codes.NotFound)
}

// With one replica down the full-quorum read set cannot be assembled;
// reads must fail rather than answer from the remaining replicas.
func TestReadsUnavailableWithReplicaDown(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory(3)
	require.NoError(t, m.UpsertObservation(ctx, station.Observation{
		ID: "USR0000WDDG", Date: testutil.MustDate(t, "2021-07-11"), Name: "DODGE WISCONSIN", TMax: 344,
	}, store.QuorumOne))

	svc := newTestService(m)
	m.FailReplica(2)

	_, err := svc.StationMax(ctx, &pb.StationMaxRequest{Station: "USR0000WDDG"})
	requireCode(t, err, codes.Unavailable)
	_, err = svc.StationName(ctx, &pb.StationNameRequest{Station: "USR0000WDDG"})
	requireCode(t, err, codes.Unavailable)

	// Writes keep working at a single ack.
	_, err = svc.RecordTemps(ctx, &pb.RecordTempsRequest{
		Station: "USR0000WDDG", Date: "2021-07-12", Tmax: 100,
	})
	require.NoError(t, err)

	m.RestoreReplica(2)
	reply, err := svc.StationMax(ctx, &pb.StationMaxRequest{Station: "USR0000WDDG"})
	require.NoError(t, err)
	assert.Equal(t, int32(344), reply.GetTmax())
}

func TestRecordTempsValidation(t *testing.T) {
	svc := newTestService(store.NewMemory(3))
	ctx := context.Background()

	_, err := svc.RecordTemps(ctx, &pb.RecordTempsRequest{Date: "2021-07-11", Tmax: 1})
	requireCode(t, err, codes.InvalidArgument)

	_, err = svc.RecordTemps(ctx, &pb.RecordTempsRequest{Station: "X", Date: "07/11/2021", Tmax: 1})
	requireCode(t, err, codes.InvalidArgument)
}

func TestRecordTempsUnavailable(t *testing.T) {
	m := store.NewMemory(3)
	svc := newTestService(m)
	for i := 0; i < 3; i++ {
		m.FailReplica(i)
	}

	_, err := svc.RecordTemps(context.Background(), &pb.RecordTempsRequest{
		Station: "X", Date: "2021-07-11", Tmax: 1,
	})
	requireCode(t, err, codes.Unavailable)
}

// End-to-end over the ingestion path: stream payloads for one station flow
// through the consumer into the store, and the query surface answers name
// and max from what was ingested.
func TestIngestThenQuery(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory(3)

	consumer := ingest.NewConsumer(m, nil, ingest.Config{}, nil)
	src := &staticSource{payloads: []string{
		`{"station_id":"USR0000WDDG","name":"DODGE WISCONSIN"}`,
		`{"station_id":"USR0000WDDG","date":"2021-07-11","tmax":344,"tmin":210}`,
		`{"station_id":"USR0000WDDG","date":"2021-07-12","tmax":210,"tmin":140}`,
		`not json at all`,
	}}
	require.NoError(t, consumer.Run(ctx, src))

	svc := newTestService(m)

	name, err := svc.StationName(ctx, &pb.StationNameRequest{Station: "USR0000WDDG"})
	require.NoError(t, err)
	assert.Equal(t, "DODGE WISCONSIN", name.GetName())

	max, err := svc.StationMax(ctx, &pb.StationMaxRequest{Station: "USR0000WDDG"})
	require.NoError(t, err)
	assert.Equal(t, int32(344), max.GetTmax())
}

// staticSource plays a fixed set of payloads and closes.
type staticSource struct {
	payloads []string
}

func (s *staticSource) Name() string { return "static" }
func (s *staticSource) Close() error { return nil }

func (s *staticSource) Messages(context.Context) (<-chan ingest.Message, error) {
	ch := make(chan ingest.Message, len(s.payloads))
	for _, p := range s.payloads {
		ch <- ingest.Message{Value: []byte(p), Source: "static", Ack: func() {}}
	}
	close(ch)
	return ch, nil
}
