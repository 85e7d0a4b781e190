package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gocql/gocql"
	"go.uber.org/zap"

	"github.com/edgeflare/stationd/pkg/station"
)

// CassandraConfig configures the gocql-backed client.
type CassandraConfig struct {
	Hosts             []string      `mapstructure:"hosts"`
	Keyspace          string        `mapstructure:"keyspace"`
	ReplicationFactor int           `mapstructure:"replicationFactor"`
	ConnectTimeout    time.Duration `mapstructure:"connectTimeout"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

// Cassandra is the production Client: a gocql session pool against a
// replicated cluster, with per-query consistency derived from the Quorum
// passed to each operation. Safe for concurrent use.
type Cassandra struct {
	session  *gocql.Session
	keyspace string
	rf       int
	logger   *zap.Logger
}

// NewCassandra connects to the cluster. It does not create schema; call
// EnsureSchema before first use.
func NewCassandra(cfg CassandraConfig, logger *zap.Logger) (*Cassandra, error) {
	if len(cfg.Hosts) == 0 {
		return nil, fmt.Errorf("cassandra: no hosts configured")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cluster := gocql.NewCluster(cfg.Hosts...)
	cluster.ConnectTimeout = cfg.ConnectTimeout
	cluster.Timeout = cfg.Timeout
	// Session consistency is a fallback only; every statement sets its own.
	cluster.Consistency = gocql.One

	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("cassandra: create session: %w", err)
	}

	return &Cassandra{
		session:  session,
		keyspace: cfg.Keyspace,
		rf:       cfg.ReplicationFactor,
		logger:   logger,
	}, nil
}

// EnsureSchema creates the keyspace (SimpleStrategy at the configured
// replication factor) and the stations table if they do not exist.
func (c *Cassandra) EnsureSchema(ctx context.Context) error {
	createKeyspace := fmt.Sprintf(
		`CREATE KEYSPACE IF NOT EXISTS %s WITH replication = {'class': 'SimpleStrategy', 'replication_factor': %d}`,
		c.keyspace, c.rf)
	if err := c.session.Query(createKeyspace).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("cassandra: create keyspace: %w", err)
	}

	createTable := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.stations (
		id text,
		date date,
		name text static,
		tmin int,
		tmax int,
		PRIMARY KEY (id, date)
	) WITH CLUSTERING ORDER BY (date ASC)`, c.keyspace)
	if err := c.session.Query(createTable).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("cassandra: create table: %w", err)
	}

	c.logger.Info("store schema ready",
		zap.String("keyspace", c.keyspace),
		zap.Int("replicationFactor", c.rf))
	return nil
}

func (c *Cassandra) UpsertObservation(ctx context.Context, obs station.Observation, q Quorum) error {
	var err error
	if obs.Name != "" {
		stmt := fmt.Sprintf(
			`INSERT INTO %s.stations (id, date, name, tmin, tmax) VALUES (?, ?, ?, ?, ?)`, c.keyspace)
		err = c.session.Query(stmt, obs.ID, obs.Date, obs.Name, obs.TMin, obs.TMax).
			Consistency(c.consistency(q)).
			WithContext(ctx).
			Exec()
	} else {
		stmt := fmt.Sprintf(
			`INSERT INTO %s.stations (id, date, tmin, tmax) VALUES (?, ?, ?, ?)`, c.keyspace)
		err = c.session.Query(stmt, obs.ID, obs.Date, obs.TMin, obs.TMax).
			Consistency(c.consistency(q)).
			WithContext(ctx).
			Exec()
	}
	return c.mapError(err)
}

func (c *Cassandra) UpsertName(ctx context.Context, stationID, name string, q Quorum) error {
	stmt := fmt.Sprintf(`INSERT INTO %s.stations (id, name) VALUES (?, ?)`, c.keyspace)
	err := c.session.Query(stmt, stationID, name).
		Consistency(c.consistency(q)).
		WithContext(ctx).
		Exec()
	return c.mapError(err)
}

func (c *Cassandra) Name(ctx context.Context, stationID string, q Quorum) (string, error) {
	stmt := fmt.Sprintf(`SELECT name FROM %s.stations WHERE id = ? LIMIT 1`, c.keyspace)
	var name string
	err := c.session.Query(stmt, stationID).
		Consistency(c.consistency(q)).
		WithContext(ctx).
		Scan(&name)
	if err != nil {
		return "", c.mapError(err)
	}
	if name == "" {
		return "", ErrNotFound
	}
	return name, nil
}

func (c *Cassandra) Observations(ctx context.Context, stationID string, q Quorum) ([]station.Observation, error) {
	stmt := fmt.Sprintf(`SELECT date, name, tmin, tmax FROM %s.stations WHERE id = ?`, c.keyspace)
	iter := c.session.Query(stmt, stationID).
		Consistency(c.consistency(q)).
		WithContext(ctx).
		Iter()

	var out []station.Observation
	var (
		date time.Time
		name string
		tmin *int32
		tmax *int32
	)
	for iter.Scan(&date, &name, &tmin, &tmax) {
		// A partition holding only static data yields one row with a null
		// clustering column; it is not an observation.
		if date.IsZero() || tmax == nil {
			tmin, tmax = nil, nil
			continue
		}
		out = append(out, station.Observation{
			ID:   stationID,
			Date: date,
			Name: name,
			TMin: tmin,
			TMax: *tmax,
		})
		tmin, tmax = nil, nil
	}
	if err := iter.Close(); err != nil {
		return nil, c.mapError(err)
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func (c *Cassandra) Close() error {
	c.session.Close()
	return nil
}

// consistency maps a replica-count quorum onto a gocql consistency level.
func (c *Cassandra) consistency(q Quorum) gocql.Consistency {
	switch {
	case int(q) >= c.rf:
		return gocql.All
	case q <= 1:
		return gocql.One
	case q == 2:
		return gocql.Two
	case q == 3:
		return gocql.Three
	default:
		return gocql.Quorum
	}
}

// mapError folds driver errors into the package sentinels. Quorum misses,
// timeouts and exhausted connection pools all surface as ErrUnavailable; the
// caller decides whether that is retryable (writes) or terminal (reads).
func (c *Cassandra) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gocql.ErrNotFound) {
		return ErrNotFound
	}

	var unavailable *gocql.RequestErrUnavailable
	var readTimeout *gocql.RequestErrReadTimeout
	var writeTimeout *gocql.RequestErrWriteTimeout
	switch {
	case errors.As(err, &unavailable),
		errors.As(err, &readTimeout),
		errors.As(err, &writeTimeout),
		errors.Is(err, gocql.ErrTimeoutNoResponse),
		errors.Is(err, gocql.ErrNoConnections),
		errors.Is(err, gocql.ErrConnectionClosed),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
