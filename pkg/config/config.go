// Package config loads stationd configuration from a YAML file and the
// environment via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/edgeflare/stationd/pkg/ingest"
	"github.com/edgeflare/stationd/pkg/ingest/source/kafka"
	"github.com/edgeflare/stationd/pkg/ingest/source/mqtt"
	"github.com/edgeflare/stationd/pkg/ingest/source/nats"
	"github.com/edgeflare/stationd/pkg/loader"
	"github.com/edgeflare/stationd/pkg/store"
)

// Config holds application-wide configuration.
type Config struct {
	Store   store.CassandraConfig `mapstructure:"store"`
	Ingest  IngestConfig          `mapstructure:"ingest"`
	Query   QueryConfig           `mapstructure:"query"`
	Loader  loader.Config         `mapstructure:"loader"`
	Metrics MetricsConfig         `mapstructure:"metrics"`
}

// IngestConfig composes the consumer policy with the enabled stream sources.
type IngestConfig struct {
	ingest.Config `mapstructure:",squash"`

	Kafka KafkaSourceConfig `mapstructure:"kafka"`
	MQTT  MQTTSourceConfig  `mapstructure:"mqtt"`
	NATS  NATSSourceConfig  `mapstructure:"nats"`

	// DeadLetterTopic receives undeliverable messages. Empty disables the
	// Kafka dead-letter sink; envelopes are then only logged.
	DeadLetterTopic string `mapstructure:"deadLetterTopic"`
}

// Each stream source is gated behind an enabled flag.
type KafkaSourceConfig struct {
	Enabled      bool `mapstructure:"enabled"`
	kafka.Config `mapstructure:",squash"`
}

type MQTTSourceConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	mqtt.Config `mapstructure:",squash"`
}

type NATSSourceConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	nats.Config `mapstructure:",squash"`
}

type QueryConfig struct {
	ListenAddr string `mapstructure:"listenAddr"`
	// ReadQuorum is the consistency-favoring read policy. Zero means read
	// from every replica, which with the default single-ack writes keeps
	// reads and writes overlapping.
	ReadQuorum store.Quorum `mapstructure:"readQuorum"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

func defaults() Config {
	return Config{
		Store: store.CassandraConfig{
			Hosts:             []string{"localhost:9042"},
			Keyspace:          "weather",
			ReplicationFactor: 3,
		},
		Query: QueryConfig{
			ListenAddr: ":5440",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Addr:    ":9100",
		},
	}
}

// Load reads config from file or environment.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("stationd")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config"))
		}
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("STATIOND")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects quorum settings that break read-after-write visibility
// and structurally incomplete sections.
func (c *Config) Validate() error {
	rf := c.Store.ReplicationFactor
	if rf < 1 {
		return fmt.Errorf("store.replicationFactor must be at least 1, got %d", rf)
	}
	if len(c.Store.Hosts) == 0 {
		return fmt.Errorf("store.hosts must not be empty")
	}

	w := c.Ingest.WriteQuorum
	if w == 0 {
		w = store.QuorumOne
	}
	r := c.Query.ReadQuorum
	if r == 0 {
		r = store.Quorum(rf)
	}
	if w < 1 || int(w) > rf {
		return fmt.Errorf("ingest.writeQuorum %d out of range [1, %d]", w, rf)
	}
	if r < 1 || int(r) > rf {
		return fmt.Errorf("query.readQuorum %d out of range [1, %d]", r, rf)
	}
	if int(r)+int(w) <= rf {
		return fmt.Errorf("readQuorum %d + writeQuorum %d must exceed replicationFactor %d", r, w, rf)
	}

	if c.Ingest.Kafka.Enabled && len(c.Ingest.Kafka.Brokers) == 0 {
		return fmt.Errorf("ingest.kafka.brokers must not be empty when kafka is enabled")
	}
	if c.Ingest.MQTT.Enabled && len(c.Ingest.MQTT.Brokers) == 0 {
		return fmt.Errorf("ingest.mqtt.brokers must not be empty when mqtt is enabled")
	}
	if c.Ingest.NATS.Enabled && len(c.Ingest.NATS.Servers) == 0 {
		return fmt.Errorf("ingest.nats.servers must not be empty when nats is enabled")
	}
	if c.Query.ListenAddr == "" {
		return fmt.Errorf("query.listenAddr must not be empty")
	}
	return nil
}
