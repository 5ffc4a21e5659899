// Package store persists the archive corpus and the pipeline's two outputs:
// the field-name mapping table and the structured values table. Both outputs
// are rebuilt wholesale on each run; mappings additionally support
// incremental upsert for review overrides.
package store

import (
	"context"

	"github.com/worldfacts/archive-cli/internal/model"
)

// Store is the persistence interface for the extraction pipeline.
type Store interface {
	// Source corpus
	ImportFields(ctx context.Context, fields []model.FieldRecord) (int64, error)
	LoadFields(ctx context.Context) ([]model.FieldRecord, error)

	// Name mappings
	SaveMappings(ctx context.Context, mappings []model.Mapping) (int64, error)
	UpsertMappings(ctx context.Context, mappings []model.Mapping) (int64, error)
	LoadMappings(ctx context.Context) ([]model.Mapping, error)

	// Structured values
	ReplaceValues(ctx context.Context, values []model.StructuredValue) (int64, error)
	LoadValues(ctx context.Context, fieldID int64) ([]model.StructuredValue, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// mappingColumns is the column order shared by both backends' bulk paths.
var mappingColumns = []string{
	"original_name", "canonical_name", "mapping_type", "consolidated_to",
	"is_noise", "first_year", "last_year", "use_count", "notes",
}

// valueColumns is the column order for field_values bulk inserts.
var valueColumns = []string{
	"id", "field_id", "sub_field", "numeric_val", "units", "text_val",
	"date_est", "rank", "source_fragment",
}

func mappingRow(m model.Mapping) []any {
	return []any{
		m.OriginalName, m.CanonicalName, string(m.Type), m.ConsolidatedTo,
		m.IsNoise, m.FirstYear, m.LastYear, m.UseCount, m.Notes,
	}
}

func valueRow(id string, v model.StructuredValue) []any {
	return []any{
		id, v.FieldID, v.SubField, v.Numeric, v.Units, v.Text,
		v.DateEst, v.Rank, v.SourceFragment,
	}
}
