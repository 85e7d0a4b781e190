package stationd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edgeflare/stationd/pkg/ingest/source/kafka"
	"github.com/edgeflare/stationd/pkg/loader"
)

var (
	loadFile  string
	loadState string
	loadTopic string
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Publish station metadata from a GHCND stations file",
	Long:  `Reads the fixed-width GHCND stations file and publishes one metadata message per station onto the observation topic, so the consumer records each station's name.`,
	RunE:  runLoad,
}

func init() {
	f := loadCmd.Flags()
	f.StringVarP(&loadFile, "file", "f", "", "path to the GHCND stations file")
	f.StringVar(&loadState, "state", "", "only publish stations in this state code")
	f.StringVar(&loadTopic, "topic", "", "topic to publish on (defaults to the kafka source topic)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	lcfg := cfg.Loader
	if loadFile != "" {
		lcfg.Path = loadFile
	}
	if loadState != "" {
		lcfg.State = loadState
	}
	if loadTopic != "" {
		lcfg.Topic = loadTopic
	}
	if lcfg.Topic == "" {
		lcfg.Topic = cfg.Ingest.Kafka.Topic
	}

	producer, err := kafka.NewSyncProducer(cfg.Ingest.Kafka.Config)
	if err != nil {
		return fmt.Errorf("producer: %w", err)
	}
	defer producer.Close()

	l, err := loader.New(producer, lcfg, logger)
	if err != nil {
		return err
	}

	stats, err := l.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("station metadata published",
		zap.Int("published", stats.Published),
		zap.Int("filtered", stats.Filtered),
		zap.Int("skipped", stats.Skipped))
	return nil
}
