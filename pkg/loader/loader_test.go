package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProducer records published messages. Methods beyond SendMessage are
// never called by the loader.
type fakeProducer struct {
	sarama.SyncProducer
	msgs []*sarama.ProducerMessage
}

func (f *fakeProducer) SendMessage(msg *sarama.ProducerMessage) (int32, int64, error) {
	f.msgs = append(f.msgs, msg)
	return 0, int64(len(f.msgs)), nil
}

func stationLine(id, state, name string) string {
	return fmt.Sprintf("%-11s %8s %9s %6s %2s %-30s", id, "43.0000", "-89.0000", "261.0", state, name)
}

func writeStationsFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.txt")
	var content string
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseLine(t *testing.T) {
	st, err := ParseLine(stationLine("USR0000WDDG", "WI", "DODGE WISCONSIN"))
	require.NoError(t, err)

	assert.Equal(t, "USR0000WDDG", st.ID)
	assert.Equal(t, "WI", st.State)
	assert.Equal(t, "DODGE WISCONSIN", st.Name)
}

func TestParseLineMalformed(t *testing.T) {
	_, err := ParseLine("short")
	require.Error(t, err)

	_, err = ParseLine(stationLine("", "WI", "NAMELESS"))
	require.Error(t, err)
}

func TestLoaderPublishesFilteredStations(t *testing.T) {
	path := writeStationsFile(t,
		stationLine("USR0000WDDG", "WI", "DODGE WISCONSIN"),
		stationLine("US1WIDA0007", "WI", "MADISON 1.7 NW"),
		stationLine("USW00014837", "MN", "MINNEAPOLIS"),
		"bad",
	)

	producer := &fakeProducer{}
	l, err := New(producer, Config{Path: path, State: "WI", Topic: "observations"}, nil)
	require.NoError(t, err)

	stats, err := l.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Published)
	assert.Equal(t, 1, stats.Filtered)
	assert.Equal(t, 1, stats.Skipped)
	require.Len(t, producer.msgs, 2)

	msg := producer.msgs[0]
	assert.Equal(t, "observations", msg.Topic)

	key, err := msg.Key.Encode()
	require.NoError(t, err)
	assert.Equal(t, "USR0000WDDG", string(key))

	value, err := msg.Value.Encode()
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(value, &payload))
	assert.Equal(t, "USR0000WDDG", payload["station_id"])
	assert.Equal(t, "DODGE WISCONSIN", payload["name"])
}

func TestLoaderNoStateFilter(t *testing.T) {
	path := writeStationsFile(t,
		stationLine("USR0000WDDG", "WI", "DODGE WISCONSIN"),
		stationLine("USW00014837", "MN", "MINNEAPOLIS"),
	)

	producer := &fakeProducer{}
	l, err := New(producer, Config{Path: path, Topic: "observations"}, nil)
	require.NoError(t, err)

	stats, err := l.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Published)
	assert.Equal(t, 0, stats.Filtered)
}

func TestLoaderConfigValidation(t *testing.T) {
	_, err := New(&fakeProducer{}, Config{Topic: "observations"}, nil)
	require.Error(t, err)

	_, err = New(&fakeProducer{}, Config{Path: "stations.txt"}, nil)
	require.Error(t, err)
}
