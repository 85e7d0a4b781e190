package station

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaKeys(t *testing.T) {
	s := Schema("weather")

	assert.Equal(t, "weather", s.Keyspace)
	assert.Equal(t, "stations", s.Table)
	assert.Equal(t, "id", s.PartitionKey().Name)

	ck := s.ClusteringKey()
	assert.Equal(t, "date", ck.Name)
	assert.Equal(t, "ASC", ck.ClusteringOrder)
}

func TestSchemaStaticName(t *testing.T) {
	s := Schema("weather")
	for _, c := range s.Columns {
		if c.Name == "name" {
			assert.Equal(t, KindStatic, c.Kind)
			return
		}
	}
	t.Fatal("name column not found")
}

func TestSchemaCQL(t *testing.T) {
	cql := Schema("weather").CQL()

	assert.Contains(t, cql, "CREATE TABLE weather.stations")
	assert.Contains(t, cql, "name text static")
	assert.Contains(t, cql, "PRIMARY KEY (id, date)")
	assert.Contains(t, cql, "CLUSTERING ORDER BY (date ASC)")
}
