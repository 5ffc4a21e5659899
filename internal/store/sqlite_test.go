package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldfacts/archive-cli/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func TestSQLiteFieldsRoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	fields := []model.FieldRecord{
		{ID: 1, Name: "Population", Content: "total: 1,000", Year: 2025},
		{ID: 2, Name: "Area", Content: "total: 100 sq km", Year: 1990},
	}
	n, err := s.ImportFields(ctx, fields)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := s.LoadFields(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Ordered by year, then id.
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "Area", got[0].Name)
	assert.Equal(t, int64(1), got[1].ID)

	// Import replaces, never appends.
	n, err = s.ImportFields(ctx, fields[:1])
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	got, err = s.LoadFields(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLiteMappingsRoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	mappings := []model.Mapping{
		{OriginalName: "GNP", CanonicalName: "Real GDP (purchasing power parity)", Type: model.MappingRename, FirstYear: 1990, LastYear: 1998, UseCount: 2000},
		{OriginalName: "UK", CanonicalName: "UK", Type: model.MappingNoise, IsNoise: true, FirstYear: 1994, LastYear: 1994, UseCount: 2},
	}
	n, err := s.SaveMappings(ctx, mappings)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, err := s.LoadMappings(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, mappings[0], got[0])
	assert.True(t, got[1].IsNoise)
}

func TestSQLiteUpsertMappingsOverrides(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	_, err := s.SaveMappings(ctx, []model.Mapping{
		{OriginalName: "Mystery", CanonicalName: "Mystery", Type: model.MappingManual, FirstYear: 2000, LastYear: 2005, UseCount: 40},
		{OriginalName: "Population", CanonicalName: "Population", Type: model.MappingIdentity, FirstYear: 1990, LastYear: 2025, UseCount: 9000},
	})
	require.NoError(t, err)

	_, err = s.UpsertMappings(ctx, []model.Mapping{
		{OriginalName: "Mystery", CanonicalName: "Economic overview", Type: model.MappingRename, FirstYear: 2000, LastYear: 2005, UseCount: 40, Notes: "reviewed"},
	})
	require.NoError(t, err)

	got, err := s.LoadMappings(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2, "upsert must not drop unrelated rows")
	assert.Equal(t, "Economic overview", got[0].CanonicalName)
	assert.Equal(t, model.MappingRename, got[0].Type)
	assert.Equal(t, "reviewed", got[0].Notes)
	assert.Equal(t, "Population", got[1].OriginalName)
}

func TestSQLiteValuesRoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	values := []model.StructuredValue{
		{FieldID: 1, SubField: "total", Numeric: model.Float(7741220), Units: "sq km", DateEst: "2024 est.", Rank: model.Int(6), SourceFragment: "total: 7,741,220 sq km"},
		{FieldID: 1, SubField: "comparative", Text: "slightly smaller than the US"},
		{FieldID: 2, SubField: "value", Text: "temperate"},
	}
	n, err := s.ReplaceValues(ctx, values)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	got, err := s.LoadValues(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Ordered by sub_field.
	assert.Equal(t, "comparative", got[0].SubField)
	assert.Nil(t, got[0].Numeric)
	assert.Nil(t, got[0].Rank)
	assert.Equal(t, "slightly smaller than the US", got[0].Text)

	assert.Equal(t, "total", got[1].SubField)
	require.NotNil(t, got[1].Numeric)
	assert.InDelta(t, 7741220, *got[1].Numeric, 1)
	require.NotNil(t, got[1].Rank)
	assert.Equal(t, 6, *got[1].Rank)
	assert.Equal(t, "2024 est.", got[1].DateEst)

	// Replace truncates previous rows.
	n, err = s.ReplaceValues(ctx, values[:1])
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	remaining, err := s.LoadValues(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
