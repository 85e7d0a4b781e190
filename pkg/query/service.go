// Package query serves the Station RPC surface: schema introspection, point
// and aggregate reads at the consistency-favoring read quorum, and a direct
// write path at the ingest write quorum. Handlers are stateless; all state
// lives in the replicated store.
package query

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/edgeflare/stationd/pkg/metrics"
	"github.com/edgeflare/stationd/pkg/station"
	"github.com/edgeflare/stationd/pkg/store"
	pb "github.com/edgeflare/stationd/proto/generated"
)

// Options tune the service's quorum policies and per-request store timeout.
// ReadQuorum defaults to the replication factor: every read touches every
// replica, so R + W > RF holds against the availability-favoring write path
// and an acknowledged write is always visible to a later read. The price is
// that a read fails with Unavailable when any replica in the set is down,
// rather than returning possibly-stale data.
type Options struct {
	ReadQuorum   store.Quorum
	WriteQuorum  store.Quorum
	StoreTimeout time.Duration
}

// Service implements pb.StationServer against a store.Client.
type Service struct {
	pb.UnimplementedStationServer

	store  store.Client
	schema station.TableSchema
	opts   Options
	logger *zap.Logger
}

// NewService wires the query service. The client is constructed and owned by
// the caller; the service never manages its lifecycle.
func NewService(client store.Client, schema station.TableSchema, opts Options, logger *zap.Logger) *Service {
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = 10 * time.Second
	}
	if opts.WriteQuorum <= 0 {
		opts.WriteQuorum = store.QuorumOne
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: client, schema: schema, opts: opts, logger: logger}
}

// StationSchema returns the static table definition. No store access.
func (s *Service) StationSchema(context.Context, *pb.StationSchemaRequest) (*pb.StationSchemaReply, error) {
	defer observe("StationSchema")()

	columns := make([]*pb.Column, 0, len(s.schema.Columns))
	for _, c := range s.schema.Columns {
		columns = append(columns, &pb.Column{
			Name:            c.Name,
			Type:            c.Type,
			Kind:            string(c.Kind),
			ClusteringOrder: c.ClusteringOrder,
		})
	}
	return &pb.StationSchemaReply{
		Keyspace: s.schema.Keyspace,
		Table:    s.schema.Table,
		Columns:  columns,
		Cql:      s.schema.CQL(),
	}, nil
}

// StationName reads the partition's static name at the read quorum.
func (s *Service) StationName(ctx context.Context, req *pb.StationNameRequest) (*pb.StationNameReply, error) {
	defer observe("StationName")()

	if req.GetStation() == "" {
		return nil, status.Error(codes.InvalidArgument, "station id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.StoreTimeout)
	defer cancel()

	name, err := s.store.Name(ctx, req.GetStation(), s.opts.ReadQuorum)
	if err != nil {
		return nil, s.readError(err, "StationName", req.GetStation())
	}
	return &pb.StationNameReply{Name: name}, nil
}

// StationMax scans the full partition at the read quorum and reduces to the
// maximum tmax. Cost scales with partition size, which is bounded at one row
// per day per station.
func (s *Service) StationMax(ctx context.Context, req *pb.StationMaxRequest) (*pb.StationMaxReply, error) {
	defer observe("StationMax")()

	if req.GetStation() == "" {
		return nil, status.Error(codes.InvalidArgument, "station id is required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.StoreTimeout)
	defer cancel()

	observations, err := s.store.Observations(ctx, req.GetStation(), s.opts.ReadQuorum)
	if err != nil {
		return nil, s.readError(err, "StationMax", req.GetStation())
	}

	max := observations[0].TMax
	for _, o := range observations[1:] {
		if o.TMax > max {
			max = o.TMax
		}
	}
	return &pb.StationMaxReply{Tmax: max}, nil
}

// RecordTemps upserts one observation at the write quorum. The write path
// favors availability: one replica ack suffices, and the same key may be
// rewritten any number of times without creating duplicates.
func (s *Service) RecordTemps(ctx context.Context, req *pb.RecordTempsRequest) (*pb.RecordTempsReply, error) {
	defer observe("RecordTemps")()

	if req.GetStation() == "" {
		return nil, status.Error(codes.InvalidArgument, "station id is required")
	}
	date, err := time.Parse(station.DateLayout, req.GetDate())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "date %q: want %s", req.GetDate(), station.DateLayout)
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.StoreTimeout)
	defer cancel()

	tmin := req.GetTmin()
	obs := station.Observation{
		ID:   req.GetStation(),
		Date: date,
		TMin: &tmin,
		TMax: req.GetTmax(),
	}
	if err := s.store.UpsertObservation(ctx, obs, s.opts.WriteQuorum); err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			return nil, status.Error(codes.Unavailable, "write quorum not reachable")
		}
		s.logger.Error("record temps failed", zap.String("station", req.GetStation()), zap.Error(err))
		return nil, status.Error(codes.Internal, "store write failed")
	}
	return &pb.RecordTempsReply{}, nil
}

// readError maps store sentinels onto RPC codes. Unavailable is surfaced
// verbatim, never silently degraded to a weaker read.
func (s *Service) readError(err error, method, stationID string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return status.Errorf(codes.NotFound, "station %q not found", stationID)
	case errors.Is(err, store.ErrUnavailable):
		s.logger.Warn("read quorum not reachable",
			zap.String("method", method),
			zap.String("station", stationID))
		return status.Error(codes.Unavailable, "read quorum not reachable")
	default:
		s.logger.Error("store read failed",
			zap.String("method", method),
			zap.String("station", stationID),
			zap.Error(err))
		return status.Error(codes.Internal, "store read failed")
	}
}

func observe(method string) func() {
	timer := prometheus.NewTimer(metrics.RPCDuration.WithLabelValues(method))
	return func() { timer.ObserveDuration() }
}
