package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeflare/stationd/pkg/store"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stationd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, []string{"localhost:9042"}, cfg.Store.Hosts)
	assert.Equal(t, "weather", cfg.Store.Keyspace)
	assert.Equal(t, 3, cfg.Store.ReplicationFactor)
	assert.Equal(t, ":5440", cfg.Query.ListenAddr)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
store:
  hosts: ["cass-1:9042", "cass-2:9042", "cass-3:9042"]
  keyspace: weather
  replicationFactor: 3
ingest:
  writeQuorum: 1
  maxRetries: 7
  deadLetterTopic: observations-dlq
  kafka:
    enabled: true
    brokers: ["kafka-0:9092"]
    topic: observations
    group: stationd
query:
  listenAddr: ":5440"
  readQuorum: 3
`))
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Store.ReplicationFactor)
	assert.Equal(t, store.Quorum(1), cfg.Ingest.WriteQuorum)
	assert.Equal(t, uint64(7), cfg.Ingest.MaxRetries)
	assert.Equal(t, "observations-dlq", cfg.Ingest.DeadLetterTopic)
	assert.True(t, cfg.Ingest.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-0:9092"}, cfg.Ingest.Kafka.Brokers)
	assert.Equal(t, store.Quorum(3), cfg.Query.ReadQuorum)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		c := defaults()
		return c
	}

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero replication factor",
			mutate:  func(c *Config) { c.Store.ReplicationFactor = 0 },
			wantErr: "replicationFactor",
		},
		{
			name:    "no hosts",
			mutate:  func(c *Config) { c.Store.Hosts = nil },
			wantErr: "hosts",
		},
		{
			name:    "write quorum above rf",
			mutate:  func(c *Config) { c.Ingest.WriteQuorum = 4 },
			wantErr: "writeQuorum",
		},
		{
			name:    "read quorum above rf",
			mutate:  func(c *Config) { c.Query.ReadQuorum = 5 },
			wantErr: "readQuorum",
		},
		{
			name: "quorums do not overlap",
			mutate: func(c *Config) {
				c.Ingest.WriteQuorum = 1
				c.Query.ReadQuorum = 2
			},
			wantErr: "must exceed replicationFactor",
		},
		{
			name: "explicit overlapping quorums",
			mutate: func(c *Config) {
				c.Ingest.WriteQuorum = 2
				c.Query.ReadQuorum = 2
			},
		},
		{
			name: "kafka enabled without brokers",
			mutate: func(c *Config) {
				c.Ingest.Kafka.Enabled = true
				c.Ingest.Kafka.Brokers = nil
			},
			wantErr: "kafka.brokers",
		},
		{
			name:    "no query listen addr",
			mutate:  func(c *Config) { c.Query.ListenAddr = "" },
			wantErr: "listenAddr",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}
