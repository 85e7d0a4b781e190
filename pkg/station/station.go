// Package station holds the domain model for station observations: the
// observation record itself, the wire codec that validates incoming stream
// messages, and the logical table schema the query service introspects.
package station

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used on the wire and as the
// clustering key. Observations carry no time-of-day component.
const DateLayout = "2006-01-02"

// Observation is one validated station measurement for a single date.
// (ID, Date) is the upsert key; writing the same key twice overwrites.
type Observation struct {
	ID   string
	Date time.Time
	// Name is the station's static attribute; optional per message because
	// the loader publishes it separately.
	Name string
	TMin *int32
	TMax int32
}

// DateString returns the clustering key in wire form.
func (o Observation) DateString() string {
	return o.Date.Format(DateLayout)
}

// ColumnKind distinguishes how a column participates in the primary key.
type ColumnKind string

const (
	KindPartitionKey  ColumnKind = "partition_key"
	KindClusteringKey ColumnKind = "clustering"
	KindStatic        ColumnKind = "static"
	KindRegular       ColumnKind = "regular"
)

// Column describes one column of the logical table.
type Column struct {
	Name string
	Type string
	Kind ColumnKind
	// ClusteringOrder is set only for clustering columns ("ASC" or "DESC").
	ClusteringOrder string
}

// TableSchema is the logical definition of the stations table. It is fixed at
// process start; the query service serves it without touching the store.
type TableSchema struct {
	Keyspace string
	Table    string
	Columns  []Column
}

// Schema returns the canonical stations table definition: id partitions,
// date clusters ascending, name is static per partition.
func Schema(keyspace string) TableSchema {
	return TableSchema{
		Keyspace: keyspace,
		Table:    "stations",
		Columns: []Column{
			{Name: "id", Type: "text", Kind: KindPartitionKey},
			{Name: "date", Type: "date", Kind: KindClusteringKey, ClusteringOrder: "ASC"},
			{Name: "name", Type: "text", Kind: KindStatic},
			{Name: "tmin", Type: "int", Kind: KindRegular},
			{Name: "tmax", Type: "int", Kind: KindRegular},
		},
	}
}

// PartitionKey returns the partition key column.
func (s TableSchema) PartitionKey() Column {
	return s.columnOfKind(KindPartitionKey)
}

// ClusteringKey returns the clustering key column.
func (s TableSchema) ClusteringKey() Column {
	return s.columnOfKind(KindClusteringKey)
}

func (s TableSchema) columnOfKind(kind ColumnKind) Column {
	for _, c := range s.Columns {
		if c.Kind == kind {
			return c
		}
	}
	return Column{}
}

// CQL renders the CREATE TABLE statement for the schema. The rendered form is
// what the schema RPC returns alongside the structured columns.
func (s TableSchema) CQL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s.%s (\n", s.Keyspace, s.Table)

	var partition, clustering []Column
	for _, c := range s.Columns {
		switch c.Kind {
		case KindPartitionKey:
			partition = append(partition, c)
			fmt.Fprintf(&b, "    %s %s,\n", c.Name, c.Type)
		case KindClusteringKey:
			clustering = append(clustering, c)
			fmt.Fprintf(&b, "    %s %s,\n", c.Name, c.Type)
		case KindStatic:
			fmt.Fprintf(&b, "    %s %s static,\n", c.Name, c.Type)
		default:
			fmt.Fprintf(&b, "    %s %s,\n", c.Name, c.Type)
		}
	}

	pk := make([]string, 0, len(partition)+len(clustering))
	for _, c := range partition {
		pk = append(pk, c.Name)
	}
	for _, c := range clustering {
		pk = append(pk, c.Name)
	}
	fmt.Fprintf(&b, "    PRIMARY KEY (%s)\n)", strings.Join(pk, ", "))

	if len(clustering) > 0 {
		orders := make([]string, 0, len(clustering))
		for _, c := range clustering {
			orders = append(orders, fmt.Sprintf("%s %s", c.Name, c.ClusteringOrder))
		}
		fmt.Fprintf(&b, " WITH CLUSTERING ORDER BY (%s)", strings.Join(orders, ", "))
	}
	b.WriteString(";")
	return b.String()
}
