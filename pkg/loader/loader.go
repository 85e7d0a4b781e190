// Package loader is the one-shot station-metadata collaborator: it replays
// the GHCND stations file onto the observation stream as metadata-only
// messages carrying each station's static name. It runs once and exits; the
// consumer ingests its output like any other stream traffic.
package loader

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/edgeflare/stationd/pkg/station"
)

// The stations file is fixed-width; see the GHCND readme for the full
// layout. Only id, state and name matter here.
const (
	idStart    = 0
	idEnd      = 11
	stateStart = 38
	stateEnd   = 40
	nameStart  = 41
	nameEnd    = 71
)

// Config selects the input file, an optional state filter and the topic to
// publish on.
type Config struct {
	Path  string `mapstructure:"path"`
	State string `mapstructure:"state,omitempty"`
	Topic string `mapstructure:"topic"`
}

// Stats reports one loader run.
type Stats struct {
	Published int
	Filtered  int
	Skipped   int
}

// Loader publishes station names through a sarama sync producer.
type Loader struct {
	producer sarama.SyncProducer
	cfg      Config
	logger   *zap.Logger
}

func New(producer sarama.SyncProducer, cfg Config, logger *zap.Logger) (*Loader, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("loader: stations file path is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("loader: topic is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{producer: producer, cfg: cfg, logger: logger}, nil
}

// Station is one parsed line of the stations file.
type Station struct {
	ID    string
	State string
	Name  string
}

// ParseLine extracts id, state and name from one fixed-width line. A line
// too short to hold a name, or with an empty id, is malformed.
func ParseLine(line string) (Station, error) {
	if len(line) < nameStart {
		return Station{}, fmt.Errorf("line too short: %d chars", len(line))
	}
	id := strings.TrimSpace(line[idStart:idEnd])
	if id == "" {
		return Station{}, fmt.Errorf("empty station id")
	}
	end := nameEnd
	if len(line) < end {
		end = len(line)
	}
	return Station{
		ID:    id,
		State: strings.TrimSpace(line[stateStart:stateEnd]),
		Name:  strings.TrimSpace(line[nameStart:end]),
	}, nil
}

// Run reads the stations file and publishes one metadata message per
// matching station. Malformed lines are counted and skipped, never fatal.
func (l *Loader) Run(ctx context.Context) (Stats, error) {
	f, err := os.Open(l.cfg.Path)
	if err != nil {
		return Stats{}, fmt.Errorf("loader: open %s: %w", l.cfg.Path, err)
	}
	defer f.Close()

	var stats Stats
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		st, err := ParseLine(scanner.Text())
		if err != nil {
			stats.Skipped++
			l.logger.Warn("skipping malformed station line", zap.Error(err))
			continue
		}
		if l.cfg.State != "" && st.State != l.cfg.State {
			stats.Filtered++
			continue
		}
		if st.Name == "" {
			stats.Skipped++
			continue
		}

		payload, err := station.EncodeName(st.ID, st.Name)
		if err != nil {
			stats.Skipped++
			l.logger.Warn("encode station name", zap.String("station", st.ID), zap.Error(err))
			continue
		}

		_, _, err = l.producer.SendMessage(&sarama.ProducerMessage{
			Topic: l.cfg.Topic,
			Key:   sarama.StringEncoder(st.ID),
			Value: sarama.ByteEncoder(payload),
		})
		if err != nil {
			return stats, fmt.Errorf("loader: publish station %s: %w", st.ID, err)
		}
		stats.Published++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("loader: read %s: %w", l.cfg.Path, err)
	}

	l.logger.Info("loader finished",
		zap.Int("published", stats.Published),
		zap.Int("filtered", stats.Filtered),
		zap.Int("skipped", stats.Skipped))
	return stats, nil
}
