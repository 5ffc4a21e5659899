package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/worldfacts/archive-cli/internal/model"
)

// sqliteBatchSize bounds statement executions per transaction chunk.
const sqliteBatchSize = 1000

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS fields (
	id      INTEGER PRIMARY KEY,
	name    TEXT NOT NULL,
	content TEXT NOT NULL DEFAULT '',
	year    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS field_name_mappings (
	original_name   TEXT PRIMARY KEY,
	canonical_name  TEXT NOT NULL,
	mapping_type    TEXT NOT NULL,
	consolidated_to TEXT NOT NULL DEFAULT '',
	is_noise        INTEGER NOT NULL DEFAULT 0,
	first_year      INTEGER NOT NULL,
	last_year       INTEGER NOT NULL,
	use_count       INTEGER NOT NULL,
	notes           TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS field_values (
	id              TEXT PRIMARY KEY,
	field_id        INTEGER NOT NULL,
	sub_field       TEXT NOT NULL,
	numeric_val     REAL,
	units           TEXT NOT NULL DEFAULT '',
	text_val        TEXT NOT NULL DEFAULT '',
	date_est        TEXT NOT NULL DEFAULT '',
	rank            INTEGER,
	source_fragment TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_fields_name ON fields(name);
CREATE INDEX IF NOT EXISTS idx_fields_year ON fields(year);
CREATE INDEX IF NOT EXISTS idx_mappings_type ON field_name_mappings(mapping_type);
CREATE INDEX IF NOT EXISTS idx_field_values_field_id ON field_values(field_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ImportFields replaces the source corpus wholesale.
func (s *SQLiteStore) ImportFields(ctx context.Context, fields []model.FieldRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: begin import")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM fields`); err != nil {
		return 0, eris.Wrap(err, "sqlite: clear fields")
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO fields (id, name, content, year) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: prepare field insert")
	}
	defer stmt.Close()

	for _, f := range fields {
		if _, err := stmt.ExecContext(ctx, f.ID, f.Name, f.Content, f.Year); err != nil {
			return 0, eris.Wrapf(err, "sqlite: insert field %d", f.ID)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, eris.Wrap(err, "sqlite: commit import")
	}
	return int64(len(fields)), nil
}

func (s *SQLiteStore) LoadFields(ctx context.Context) ([]model.FieldRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, content, year FROM fields ORDER BY year, id`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query fields")
	}
	defer rows.Close()

	var fields []model.FieldRecord
	for rows.Next() {
		var f model.FieldRecord
		if err := rows.Scan(&f.ID, &f.Name, &f.Content, &f.Year); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan field")
		}
		fields = append(fields, f)
	}
	return fields, eris.Wrap(rows.Err(), "sqlite: iterate fields")
}

// SaveMappings rebuilds the mapping table wholesale.
func (s *SQLiteStore) SaveMappings(ctx context.Context, mappings []model.Mapping) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: begin save mappings")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM field_name_mappings`); err != nil {
		return 0, eris.Wrap(err, "sqlite: clear mappings")
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO field_name_mappings
		(original_name, canonical_name, mapping_type, consolidated_to, is_noise, first_year, last_year, use_count, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: prepare mapping insert")
	}
	defer stmt.Close()

	for _, m := range mappings {
		if _, err := stmt.ExecContext(ctx, mappingRow(m)...); err != nil {
			return 0, eris.Wrapf(err, "sqlite: insert mapping %q", m.OriginalName)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, eris.Wrap(err, "sqlite: commit mappings")
	}
	return int64(len(mappings)), nil
}

// UpsertMappings applies review overrides without touching other rows.
func (s *SQLiteStore) UpsertMappings(ctx context.Context, mappings []model.Mapping) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: begin upsert mappings")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO field_name_mappings
		(original_name, canonical_name, mapping_type, consolidated_to, is_noise, first_year, last_year, use_count, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(original_name) DO UPDATE SET
			canonical_name = excluded.canonical_name,
			mapping_type = excluded.mapping_type,
			consolidated_to = excluded.consolidated_to,
			is_noise = excluded.is_noise,
			first_year = excluded.first_year,
			last_year = excluded.last_year,
			use_count = excluded.use_count,
			notes = excluded.notes`)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: prepare mapping upsert")
	}
	defer stmt.Close()

	for _, m := range mappings {
		if _, err := stmt.ExecContext(ctx, mappingRow(m)...); err != nil {
			return 0, eris.Wrapf(err, "sqlite: upsert mapping %q", m.OriginalName)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, eris.Wrap(err, "sqlite: commit mapping upsert")
	}
	return int64(len(mappings)), nil
}

func (s *SQLiteStore) LoadMappings(ctx context.Context) ([]model.Mapping, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT original_name, canonical_name, mapping_type,
		consolidated_to, is_noise, first_year, last_year, use_count, notes
		FROM field_name_mappings ORDER BY original_name`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: query mappings")
	}
	defer rows.Close()

	var mappings []model.Mapping
	for rows.Next() {
		var m model.Mapping
		var mt string
		if err := rows.Scan(&m.OriginalName, &m.CanonicalName, &mt, &m.ConsolidatedTo,
			&m.IsNoise, &m.FirstYear, &m.LastYear, &m.UseCount, &m.Notes); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan mapping")
		}
		m.Type = model.MappingType(mt)
		mappings = append(mappings, m)
	}
	return mappings, eris.Wrap(rows.Err(), "sqlite: iterate mappings")
}

// ReplaceValues truncates field_values and bulk-inserts the new rows in
// batched transactions.
func (s *SQLiteStore) ReplaceValues(ctx context.Context, values []model.StructuredValue) (int64, error) {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM field_values`); err != nil {
		return 0, eris.Wrap(err, "sqlite: clear values")
	}

	var inserted int64
	for start := 0; start < len(values); start += sqliteBatchSize {
		end := start + sqliteBatchSize
		if end > len(values) {
			end = len(values)
		}
		if err := s.insertValueBatch(ctx, values[start:end]); err != nil {
			return inserted, err
		}
		inserted += int64(end - start)
	}
	return inserted, nil
}

func (s *SQLiteStore) insertValueBatch(ctx context.Context, values []model.StructuredValue) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin value batch")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO field_values
		(id, field_id, sub_field, numeric_val, units, text_val, date_est, rank, source_fragment)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return eris.Wrap(err, "sqlite: prepare value insert")
	}
	defer stmt.Close()

	for _, v := range values {
		if _, err := stmt.ExecContext(ctx, valueRow(uuid.New().String(), v)...); err != nil {
			return eris.Wrapf(err, "sqlite: insert value field=%d sub=%s", v.FieldID, v.SubField)
		}
	}
	return eris.Wrap(tx.Commit(), "sqlite: commit value batch")
}

func (s *SQLiteStore) LoadValues(ctx context.Context, fieldID int64) ([]model.StructuredValue, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT field_id, sub_field, numeric_val, units,
		text_val, date_est, rank, source_fragment
		FROM field_values WHERE field_id = ? ORDER BY sub_field`, fieldID)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: query values for field %d", fieldID)
	}
	defer rows.Close()

	var values []model.StructuredValue
	for rows.Next() {
		var v model.StructuredValue
		var numeric sql.NullFloat64
		var rank sql.NullInt64
		if err := rows.Scan(&v.FieldID, &v.SubField, &numeric, &v.Units,
			&v.Text, &v.DateEst, &rank, &v.SourceFragment); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan value")
		}
		if numeric.Valid {
			v.Numeric = model.Float(numeric.Float64)
		}
		if rank.Valid {
			v.Rank = model.Int(int(rank.Int64))
		}
		values = append(values, v)
	}
	return values, eris.Wrap(rows.Err(), "sqlite: iterate values")
}
