package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/worldfacts/archive-cli/internal/db"
	"github.com/worldfacts/archive-cli/internal/model"
)

// PostgresStore implements Store using pgxpool. Bulk paths go through the
// COPY protocol; corpora span millions of value rows per run.
type PostgresStore struct {
	pool db.Pool
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresFromPool wraps an existing pool. Tests inject pgxmock here.
func NewPostgresFromPool(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS fields (
	id      BIGINT PRIMARY KEY,
	name    TEXT NOT NULL,
	content TEXT NOT NULL DEFAULT '',
	year    INT NOT NULL
);

CREATE TABLE IF NOT EXISTS field_name_mappings (
	original_name   TEXT PRIMARY KEY,
	canonical_name  TEXT NOT NULL,
	mapping_type    TEXT NOT NULL,
	consolidated_to TEXT NOT NULL DEFAULT '',
	is_noise        BOOLEAN NOT NULL DEFAULT FALSE,
	first_year      INT NOT NULL,
	last_year       INT NOT NULL,
	use_count       INT NOT NULL,
	notes           TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS field_values (
	id              TEXT PRIMARY KEY,
	field_id        BIGINT NOT NULL,
	sub_field       TEXT NOT NULL,
	numeric_val     DOUBLE PRECISION,
	units           TEXT NOT NULL DEFAULT '',
	text_val        TEXT NOT NULL DEFAULT '',
	date_est        TEXT NOT NULL DEFAULT '',
	rank            INT,
	source_fragment TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_fields_name ON fields(name);
CREATE INDEX IF NOT EXISTS idx_fields_year ON fields(year);
CREATE INDEX IF NOT EXISTS idx_mappings_type ON field_name_mappings(mapping_type);
CREATE INDEX IF NOT EXISTS idx_field_values_field_id ON field_values(field_id);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// ImportFields replaces the source corpus wholesale via COPY.
func (s *PostgresStore) ImportFields(ctx context.Context, fields []model.FieldRecord) (int64, error) {
	if _, err := s.pool.Exec(ctx, `TRUNCATE TABLE fields`); err != nil {
		return 0, eris.Wrap(err, "postgres: truncate fields")
	}
	rows := make([][]any, len(fields))
	for i, f := range fields {
		rows[i] = []any{f.ID, f.Name, f.Content, f.Year}
	}
	return db.CopyFrom(ctx, s.pool, "fields", []string{"id", "name", "content", "year"}, rows)
}

func (s *PostgresStore) LoadFields(ctx context.Context) ([]model.FieldRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, content, year FROM fields ORDER BY year, id`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query fields")
	}
	defer rows.Close()

	var fields []model.FieldRecord
	for rows.Next() {
		var f model.FieldRecord
		if err := rows.Scan(&f.ID, &f.Name, &f.Content, &f.Year); err != nil {
			return nil, eris.Wrap(err, "postgres: scan field")
		}
		fields = append(fields, f)
	}
	return fields, eris.Wrap(rows.Err(), "postgres: iterate fields")
}

// SaveMappings rebuilds the mapping table wholesale via COPY.
func (s *PostgresStore) SaveMappings(ctx context.Context, mappings []model.Mapping) (int64, error) {
	if _, err := s.pool.Exec(ctx, `TRUNCATE TABLE field_name_mappings`); err != nil {
		return 0, eris.Wrap(err, "postgres: truncate mappings")
	}
	rows := make([][]any, len(mappings))
	for i, m := range mappings {
		rows[i] = mappingRow(m)
	}
	return db.CopyFrom(ctx, s.pool, "field_name_mappings", mappingColumns, rows)
}

// UpsertMappings applies review overrides without touching other rows.
func (s *PostgresStore) UpsertMappings(ctx context.Context, mappings []model.Mapping) (int64, error) {
	rows := make([][]any, len(mappings))
	for i, m := range mappings {
		rows[i] = mappingRow(m)
	}
	return db.BulkUpsert(ctx, s.pool, db.UpsertConfig{
		Table:        "field_name_mappings",
		Columns:      mappingColumns,
		ConflictKeys: []string{"original_name"},
	}, rows)
}

func (s *PostgresStore) LoadMappings(ctx context.Context) ([]model.Mapping, error) {
	rows, err := s.pool.Query(ctx, `SELECT original_name, canonical_name, mapping_type,
		consolidated_to, is_noise, first_year, last_year, use_count, notes
		FROM field_name_mappings ORDER BY original_name`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: query mappings")
	}
	defer rows.Close()

	var mappings []model.Mapping
	for rows.Next() {
		var m model.Mapping
		var mt string
		if err := rows.Scan(&m.OriginalName, &m.CanonicalName, &mt, &m.ConsolidatedTo,
			&m.IsNoise, &m.FirstYear, &m.LastYear, &m.UseCount, &m.Notes); err != nil {
			return nil, eris.Wrap(err, "postgres: scan mapping")
		}
		m.Type = model.MappingType(mt)
		mappings = append(mappings, m)
	}
	return mappings, eris.Wrap(rows.Err(), "postgres: iterate mappings")
}

// ReplaceValues truncates field_values and bulk-inserts the new rows.
func (s *PostgresStore) ReplaceValues(ctx context.Context, values []model.StructuredValue) (int64, error) {
	if _, err := s.pool.Exec(ctx, `TRUNCATE TABLE field_values`); err != nil {
		return 0, eris.Wrap(err, "postgres: truncate values")
	}
	rows := make([][]any, len(values))
	for i, v := range values {
		rows[i] = valueRow(uuid.New().String(), v)
	}
	return db.CopyFrom(ctx, s.pool, "field_values", valueColumns, rows)
}

func (s *PostgresStore) LoadValues(ctx context.Context, fieldID int64) ([]model.StructuredValue, error) {
	rows, err := s.pool.Query(ctx, `SELECT field_id, sub_field, numeric_val, units,
		text_val, date_est, rank, source_fragment
		FROM field_values WHERE field_id = $1 ORDER BY sub_field`, fieldID)
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: query values for field %d", fieldID)
	}
	defer rows.Close()

	var values []model.StructuredValue
	for rows.Next() {
		var v model.StructuredValue
		if err := rows.Scan(&v.FieldID, &v.SubField, &v.Numeric, &v.Units,
			&v.Text, &v.DateEst, &v.Rank, &v.SourceFragment); err != nil {
			return nil, eris.Wrap(err, "postgres: scan value")
		}
		values = append(values, v)
	}
	return values, eris.Wrap(rows.Err(), "postgres: iterate values")
}
