package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkUpsert_EmptyRows(t *testing.T) {
	n, err := BulkUpsert(nil, nil, UpsertConfig{
		Table:        "field_name_mappings",
		Columns:      []string{"original_name", "canonical_name"},
		ConflictKeys: []string{"original_name"},
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestBulkUpsert_NoColumns(t *testing.T) {
	_, err := BulkUpsert(nil, nil, UpsertConfig{
		Table:        "field_name_mappings",
		ConflictKeys: []string{"original_name"},
	}, [][]any{{"GNP", "Real GDP (purchasing power parity)"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no columns specified")
}

func TestBulkUpsert_NoConflictKeys(t *testing.T) {
	_, err := BulkUpsert(nil, nil, UpsertConfig{
		Table:   "field_name_mappings",
		Columns: []string{"original_name", "canonical_name"},
	}, [][]any{{"GNP", "Real GDP (purchasing power parity)"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no conflict keys specified")
}

func TestSanitizeTable(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"field_values", `"field_values"`},
		{"archive.field_values", `"archive"."field_values"`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeTable(tt.input))
		})
	}
}

func TestQuoteAndJoin(t *testing.T) {
	result := quoteAndJoin([]string{"field_id", "sub_field", "numeric_val"})
	assert.Equal(t, `"field_id", "sub_field", "numeric_val"`, result)
}
