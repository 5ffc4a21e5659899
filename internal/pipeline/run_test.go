package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldfacts/archive-cli/internal/model"
)

func TestAggregateStats(t *testing.T) {
	fields := []model.FieldRecord{
		{ID: 1, Name: "Population", Year: 1990, Content: "x"},
		{ID: 2, Name: "Population", Year: 2025, Content: "x"},
		{ID: 3, Name: "Population", Year: 2001, Content: "x"},
		{ID: 4, Name: "Highways", Year: 1995, Content: "x"},
	}

	stats := AggregateStats(fields)
	require.Len(t, stats, 2)
	assert.Equal(t, model.NameStats{FirstYear: 1990, LastYear: 2025, UseCount: 3}, stats["Population"])
	assert.Equal(t, model.NameStats{FirstYear: 1995, LastYear: 1995, UseCount: 1}, stats["Highways"])
}

func TestModernVocabulary(t *testing.T) {
	fields := []model.FieldRecord{
		{Name: "Population", Year: 2025},
		{Name: "Area", Year: 2024},
		{Name: "Highways", Year: 2015},
	}

	modern := ModernVocabulary(fields, 2)
	assert.Contains(t, modern, "Population")
	assert.Contains(t, modern, "Area")
	assert.NotContains(t, modern, "Highways")

	wide := ModernVocabulary(fields, 15)
	assert.Contains(t, wide, "Highways")
}

func TestPipelineRun(t *testing.T) {
	fields := []model.FieldRecord{
		{ID: 1, Name: "Population", Year: 2025, Content: "total: 1,000,000 (2025 est.) male: 510,000 female: 490,000"},
		{ID: 2, Name: "Highways", Year: 1995, Content: "30,000 km total"},
		{ID: 3, Name: "Climate", Year: 2025, Content: "temperate; rainy winters"},
		{ID: 4, Name: "Climate", Year: 1995, Content: ""},
		{ID: 5, Name: "UK", Year: 1994, Content: "see United Kingdom"},
	}

	p := New(DefaultOptions())
	result, err := p.Run(context.Background(), fields)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Stats.FieldsProcessed)
	assert.Equal(t, 1, result.Stats.FieldsSkipped)
	assert.Equal(t, 0, result.Stats.FieldsDegraded)
	assert.Equal(t, len(result.Values), result.Stats.ValuesEmitted)

	byName := make(map[string]model.Mapping)
	for _, m := range result.Mappings {
		byName[m.OriginalName] = m
	}
	assert.Equal(t, model.MappingIdentity, byName["Population"].Type)
	assert.Equal(t, model.MappingRename, byName["Highways"].Type)
	assert.Equal(t, "Roadways", byName["Highways"].CanonicalName)
	assert.Equal(t, model.MappingNoise, byName["UK"].Type)

	// Population routed to the specialized extractor.
	var popSubs []string
	for _, v := range result.Values {
		if v.FieldID == 1 {
			popSubs = append(popSubs, v.SubField)
		}
	}
	assert.ElementsMatch(t, []string{"total", "male", "female"}, popSubs)

	// Noise fields still produce a value under the generic fallback.
	var noiseRows []model.StructuredValue
	for _, v := range result.Values {
		if v.FieldID == 5 {
			noiseRows = append(noiseRows, v)
		}
	}
	require.Len(t, noiseRows, 1)
	assert.Equal(t, "see United Kingdom", noiseRows[0].Text)

	// Every emitted value is well-formed.
	for _, v := range result.Values {
		assert.NoError(t, v.Validate())
	}
}

func TestPipelineRunDeterministic(t *testing.T) {
	fields := []model.FieldRecord{
		{ID: 3, Name: "Climate", Year: 2025, Content: "arid"},
		{ID: 1, Name: "Terrain", Year: 2025, Content: "mostly flat"},
		{ID: 2, Name: "Climate", Year: 2024, Content: "tropical"},
	}

	p := New(Options{Workers: 8, ModernSpan: 2, Thresholds: DefaultOptions().Thresholds})
	first, err := p.Run(context.Background(), fields)
	require.NoError(t, err)
	second, err := p.Run(context.Background(), fields)
	require.NoError(t, err)

	assert.Equal(t, first.Values, second.Values)
	assert.Equal(t, first.Mappings, second.Mappings)

	// Values follow input field order, not goroutine completion order.
	require.Len(t, first.Values, 3)
	assert.Equal(t, int64(3), first.Values[0].FieldID)
	assert.Equal(t, int64(1), first.Values[1].FieldID)
	assert.Equal(t, int64(2), first.Values[2].FieldID)
}

func TestPipelineRunEmptyCorpus(t *testing.T) {
	p := New(DefaultOptions())
	_, err := p.Run(context.Background(), nil)
	require.Error(t, err)
}

func TestSortValues(t *testing.T) {
	values := []model.StructuredValue{
		{FieldID: 2, SubField: "a", Text: "x"},
		{FieldID: 1, SubField: "b", Text: "x"},
		{FieldID: 1, SubField: "a", Text: "x"},
	}
	SortValues(values)
	assert.Equal(t, int64(1), values[0].FieldID)
	assert.Equal(t, "b", values[0].SubField, "per-field order is preserved")
	assert.Equal(t, int64(2), values[2].FieldID)
}

func TestFormatReport(t *testing.T) {
	result := &Result{
		Mappings: []model.Mapping{
			{OriginalName: "Mystery Field", Type: model.MappingManual, UseCount: 42, FirstYear: 2001, LastYear: 2010},
		},
		Stats: RunStats{
			NamesResolved:   1200,
			FieldsProcessed: 1500000,
			ValuesEmitted:   4200000,
			ByMappingType: map[model.MappingType]int{
				model.MappingIdentity: 900,
				model.MappingManual:   300,
			},
		},
	}

	report := FormatReport(result)
	assert.Contains(t, report, "Fields processed: 1,500,000")
	assert.Contains(t, report, "Values emitted: 4,200,000")
	assert.Contains(t, report, "Expansion ratio: 2.8x")
	assert.Contains(t, report, "identity: 900")
	assert.Contains(t, report, "Mystery Field (42 uses, 2001-2010)")
	assert.NotContains(t, report, "2,001", "years are labels, never digit-grouped")
}
