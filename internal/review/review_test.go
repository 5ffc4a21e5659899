package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldfacts/archive-cli/internal/model"
)

func TestBuildEntries(t *testing.T) {
	mappings := []model.Mapping{
		{OriginalName: "Population", Type: model.MappingIdentity, UseCount: 9000},
		{OriginalName: "Enviroment", Type: model.MappingManual, UseCount: 12, FirstYear: 1996, LastYear: 1999},
		{OriginalName: "Labor forc", Type: model.MappingManual, UseCount: 40, FirstYear: 1992, LastYear: 1994},
	}
	modern := []string{"Environment", "Labor force", "Population"}

	entries := BuildEntries(mappings, modern)
	require.Len(t, entries, 2, "only manual mappings need review")

	// Heaviest use first.
	assert.Equal(t, "Labor forc", entries[0].OriginalName)
	require.NotEmpty(t, entries[0].Suggestions)
	assert.Equal(t, "Labor force", entries[0].Suggestions[0].CanonicalName)

	assert.Equal(t, "Enviroment", entries[1].OriginalName)
	require.NotEmpty(t, entries[1].Suggestions)
	assert.Equal(t, "Environment", entries[1].Suggestions[0].CanonicalName)
	assert.Greater(t, entries[1].Suggestions[0].Similarity, 0.9)
}

func TestBuildEntriesNoCloseMatch(t *testing.T) {
	mappings := []model.Mapping{
		{OriginalName: "Zqx Wvu", Type: model.MappingManual, UseCount: 1},
	}
	entries := BuildEntries(mappings, []string{"Population", "Area"})
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Suggestions)
}

func TestMarshalAndApplyOverridesRoundTrip(t *testing.T) {
	entries := []Entry{
		{OriginalName: "Enviroment", UseCount: 12, FirstYear: 1996, LastYear: 1999, AssignTo: "Environment"},
		{OriginalName: "xx yy", UseCount: 2, FirstYear: 1994, LastYear: 1994, MarkNoise: true},
		{OriginalName: "Undecided", UseCount: 5},
	}
	data, err := MarshalEntries(entries)
	require.NoError(t, err)

	overrides, err := ApplyOverrides(data)
	require.NoError(t, err)
	require.Len(t, overrides, 2, "undecided entries are skipped")

	assert.Equal(t, "Environment", overrides[0].CanonicalName)
	assert.Equal(t, model.MappingManual, overrides[0].Type)
	assert.Equal(t, "manual review", overrides[0].Notes)

	assert.True(t, overrides[1].IsNoise)
	assert.Equal(t, model.MappingNoise, overrides[1].Type)
	assert.Equal(t, "xx yy", overrides[1].CanonicalName)
}

func TestApplyOverridesRejectsMissingName(t *testing.T) {
	_, err := ApplyOverrides([]byte("- assign_to: Population\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing original_name")
}

func TestApplyOverridesBadYAML(t *testing.T) {
	_, err := ApplyOverrides([]byte("{not yaml"))
	require.Error(t, err)
}
