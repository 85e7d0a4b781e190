// Package metrics exposes the service's Prometheus collectors and an
// optional metrics HTTP server.
package metrics

import (
	"cmp"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	IngestedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stationd_ingested_records_total",
			Help: "Total number of stream records applied to the store, by source",
		},
		[]string{"source"},
	)

	DecodeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stationd_decode_failures_total",
			Help: "Total number of stream records rejected by the codec, by source",
		},
		[]string{"source"},
	)

	DeadLetteredRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stationd_dead_lettered_records_total",
			Help: "Total number of records dead-lettered, by source and reason",
		},
		[]string{"source", "reason"},
	)

	StoreWriteRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stationd_store_write_retries_total",
			Help: "Total number of retried store writes on the ingestion path",
		},
	)

	StoreOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stationd_store_op_duration_seconds",
			Help:    "Duration of store operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stationd_rpc_duration_seconds",
			Help:    "Duration of query RPCs",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

type ServerOpts struct {
	Addr              string
	Path              string        // metrics endpoint path, defaults to "/metrics"
	ShutdownTimeout   time.Duration // defaults to 5 seconds
	ReadHeaderTimeout time.Duration // defaults to 3 seconds
}

func defaultServerOpts() ServerOpts {
	return ServerOpts{
		Addr:              ":9100",
		Path:              "/metrics",
		ShutdownTimeout:   5 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// StartServer starts the metrics HTTP server and shuts it down gracefully
// when ctx is canceled.
func StartServer(ctx context.Context, wg *sync.WaitGroup, opts *ServerOpts, logger *zap.Logger) {
	effective := defaultServerOpts()
	if opts != nil {
		effective.Addr = cmp.Or(opts.Addr, effective.Addr)
		effective.Path = cmp.Or(opts.Path, effective.Path)
		effective.ShutdownTimeout = cmp.Or(opts.ShutdownTimeout, effective.ShutdownTimeout)
		effective.ReadHeaderTimeout = cmp.Or(opts.ReadHeaderTimeout, effective.ReadHeaderTimeout)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()
	mux.Handle(effective.Path, promhttp.Handler())
	server := &http.Server{
		Addr:              effective.Addr,
		Handler:           mux,
		ReadHeaderTimeout: effective.ReadHeaderTimeout,
	}

	serverClosed := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting metrics server", zap.String("addr", effective.Addr))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", zap.Error(err))
		}
		close(serverClosed)
	}()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), effective.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", zap.Error(err))
		}

		select {
		case <-serverClosed:
			logger.Info("metrics server shutdown complete")
		case <-shutdownCtx.Done():
			logger.Warn("metrics server shutdown timed out")
		}
	}()
}
