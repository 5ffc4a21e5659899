package store

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldfacts/archive-cli/internal/model"
)

func newMockStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresFromPool(mock), mock
}

func TestPostgresMigrate(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS fields").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSaveMappingsTruncatesThenCopies(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("TRUNCATE TABLE field_name_mappings").
		WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
	mock.ExpectCopyFrom(pgx.Identifier{"field_name_mappings"}, mappingColumns).
		WillReturnResult(2)

	n, err := s.SaveMappings(context.Background(), []model.Mapping{
		{OriginalName: "GNP", CanonicalName: "Real GDP (purchasing power parity)", Type: model.MappingRename},
		{OriginalName: "UK", CanonicalName: "UK", Type: model.MappingNoise, IsNoise: true},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReplaceValues(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("TRUNCATE TABLE field_values").
		WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
	mock.ExpectCopyFrom(pgx.Identifier{"field_values"}, valueColumns).
		WillReturnResult(1)

	n, err := s.ReplaceValues(context.Background(), []model.StructuredValue{
		{FieldID: 1, SubField: "total", Numeric: model.Float(100), Units: "sq km"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReplaceValuesTruncateFailure(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("TRUNCATE TABLE field_values").
		WillReturnError(assert.AnError)

	_, err := s.ReplaceValues(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "truncate values")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLoadMappings(t *testing.T) {
	s, mock := newMockStore(t)
	rows := pgxmock.NewRows([]string{
		"original_name", "canonical_name", "mapping_type", "consolidated_to",
		"is_noise", "first_year", "last_year", "use_count", "notes",
	}).
		AddRow("Highways", "Roadways", "rename", "", false, 1990, 2015, 4000, "").
		AddRow("UK", "UK", "noise", "", true, 1994, 1994, 2, "")
	mock.ExpectQuery("SELECT original_name, canonical_name, mapping_type").
		WillReturnRows(rows)

	got, err := s.LoadMappings(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Roadways", got[0].CanonicalName)
	assert.Equal(t, model.MappingRename, got[0].Type)
	assert.True(t, got[1].IsNoise)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLoadValues(t *testing.T) {
	s, mock := newMockStore(t)
	rows := pgxmock.NewRows([]string{
		"field_id", "sub_field", "numeric_val", "units",
		"text_val", "date_est", "rank", "source_fragment",
	}).
		AddRow(int64(1), "comparative", (*float64)(nil), "", "about half of X", "", (*int)(nil), "comparative: about half of X").
		AddRow(int64(1), "total", model.Float(100), "sq km", "", "2024 est.", model.Int(6), "total: 100 sq km")
	mock.ExpectQuery("SELECT field_id, sub_field, numeric_val").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	got, err := s.LoadValues(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].Numeric)
	assert.Equal(t, "about half of X", got[0].Text)
	require.NotNil(t, got[1].Numeric)
	assert.InDelta(t, 100, *got[1].Numeric, 1e-9)
	require.NotNil(t, got[1].Rank)
	assert.Equal(t, 6, *got[1].Rank)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLoadFields(t *testing.T) {
	s, mock := newMockStore(t)
	rows := pgxmock.NewRows([]string{"id", "name", "content", "year"}).
		AddRow(int64(2), "Area", "total: 100 sq km", 1990).
		AddRow(int64(1), "Population", "total: 1,000", 2025)
	mock.ExpectQuery("SELECT id, name, content, year FROM fields").
		WillReturnRows(rows)

	got, err := s.LoadFields(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Area", got[0].Name)
	assert.Equal(t, 2025, got[1].Year)
	assert.NoError(t, mock.ExpectationsWereMet())
}
