package stationd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/edgeflare/stationd/pkg/ingest"
	"github.com/edgeflare/stationd/pkg/ingest/source/kafka"
	"github.com/edgeflare/stationd/pkg/ingest/source/mqtt"
	"github.com/edgeflare/stationd/pkg/ingest/source/nats"
	"github.com/edgeflare/stationd/pkg/metrics"
	"github.com/edgeflare/stationd/pkg/query"
	"github.com/edgeflare/stationd/pkg/station"
	"github.com/edgeflare/stationd/pkg/store"
)

var (
	prometheusEnabled bool
	prometheusAddr    string
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Run the ingestion consumer and query server",
	Long:    `Run the stream consumer writing observations into the replicated store, alongside the gRPC query service reading at full quorum.`,
	RunE:    runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	doneChan := make(chan struct{})

	var wg sync.WaitGroup

	if prometheusEnabled || cfg.Metrics.Enabled {
		go metrics.StartServer(ctx, &wg, &metrics.ServerOpts{Addr: prometheusAddr}, logger)
	}

	client, err := store.NewCassandra(cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer client.Close()

	if err := client.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	sources, closeSources, err := buildSources(logger)
	if err != nil {
		return err
	}
	defer closeSources()

	dead, err := buildDeadLetterer(logger)
	if err != nil {
		return err
	}

	consumer := ingest.NewConsumer(client, dead, cfg.Ingest.Config, logger)
	for _, src := range sources {
		wg.Add(1)
		go func(src ingest.Source) {
			defer wg.Done()
			if err := consumer.Run(ctx, src); err != nil && ctx.Err() == nil {
				errChan <- fmt.Errorf("consumer %s: %w", src.Name(), err)
			}
		}(src)
	}

	readQuorum := cfg.Query.ReadQuorum
	if readQuorum == 0 {
		readQuorum = store.Quorum(cfg.Store.ReplicationFactor)
	}
	svc := query.NewService(client, station.Schema(cfg.Store.Keyspace), query.Options{
		ReadQuorum:  readQuorum,
		WriteQuorum: cfg.Ingest.WriteQuorum,
	}, logger)
	srv := query.NewServer(cfg.Query.ListenAddr, svc, logger)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Run(ctx); err != nil {
			errChan <- fmt.Errorf("query server: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		logger.Info("received termination signal, shutting down gracefully")
		cancel()
	case err := <-errChan:
		logger.Error("runtime error", zap.Error(err))
		cancel()
	}

	// Wait for goroutines to complete
	go func() {
		wg.Wait()
		close(doneChan)
	}()

	// Wait with timeout
	select {
	case <-doneChan:
		logger.Info("shutdown complete")
	case <-time.After(10 * time.Second):
		logger.Warn("shutdown timed out after 10 seconds")
	}

	return nil
}

func buildSources(logger *zap.Logger) ([]ingest.Source, func(), error) {
	var sources []ingest.Source

	closeAll := func() {
		for _, src := range sources {
			if err := src.Close(); err != nil {
				logger.Warn("closing source", zap.String("source", src.Name()), zap.Error(err))
			}
		}
	}

	if cfg.Ingest.Kafka.Enabled {
		src, err := kafka.New(cfg.Ingest.Kafka.Config, logger)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("kafka source: %w", err)
		}
		sources = append(sources, src)
	}
	if cfg.Ingest.MQTT.Enabled {
		src, err := mqtt.New(cfg.Ingest.MQTT.Config, logger)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("mqtt source: %w", err)
		}
		sources = append(sources, src)
	}
	if cfg.Ingest.NATS.Enabled {
		src, err := nats.New(cfg.Ingest.NATS.Config, logger)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("nats source: %w", err)
		}
		sources = append(sources, src)
	}
	if len(sources) == 0 {
		return nil, nil, fmt.Errorf("no stream source enabled; enable at least one of ingest.kafka, ingest.mqtt, ingest.nats")
	}
	return sources, closeAll, nil
}

func buildDeadLetterer(logger *zap.Logger) (ingest.DeadLetterer, error) {
	if cfg.Ingest.DeadLetterTopic == "" || !cfg.Ingest.Kafka.Enabled {
		return &ingest.LogDeadLetterer{Logger: logger}, nil
	}
	producer, err := kafka.NewSyncProducer(cfg.Ingest.Kafka.Config)
	if err != nil {
		return nil, fmt.Errorf("dead-letter producer: %w", err)
	}
	return ingest.NewKafkaDeadLetterer(producer, cfg.Ingest.DeadLetterTopic, logger), nil
}

func init() {
	serveCmd.Flags().BoolVar(&prometheusEnabled, "metrics", true, "Enable Prometheus metrics server")
	serveCmd.Flags().StringVar(&prometheusAddr, "metrics-addr", ":9100", "Prometheus metrics server address")

	if err := viper.BindPFlag("metrics.enabled", serveCmd.Flags().Lookup("metrics")); err != nil {
		panic(fmt.Sprintf("binding flag 'metrics.enabled': %v", err))
	}
	if err := viper.BindPFlag("metrics.addr", serveCmd.Flags().Lookup("metrics-addr")); err != nil {
		panic(fmt.Sprintf("binding flag 'metrics.addr': %v", err))
	}
}
