package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldfacts/archive-cli/internal/model"
)

func testResolver(modern ...string) *Resolver {
	m := make(map[string]struct{}, len(modern))
	for _, name := range modern {
		m[name] = struct{}{}
	}
	return NewResolver(m, DefaultThresholds())
}

func TestNormalizeDashes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single dash no space", "Economy-overview", "Economy - overview"},
		{"double dash", "Economy--overview", "Economy - overview"},
		{"already spaced", "Economy - overview", ""},
		{"no dash", "Population", ""},
		{"space before dash", "Economy -overview", ""},
		{"multiple dashes splits at first", "GDP-real-growth", "GDP - real-growth"},
		{"trailing dash", "Economy-", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeDashes(tt.in))
		})
	}
}

func TestResolveIdentity(t *testing.T) {
	r := testResolver("Population", "Area")

	m := r.Resolve("Population", model.NameStats{FirstYear: 1990, LastYear: 2025, UseCount: 9000})
	assert.Equal(t, model.MappingIdentity, m.Type)
	assert.Equal(t, "Population", m.CanonicalName)
	assert.False(t, m.IsNoise)
}

func TestResolveIdentitySkipsRenamedNames(t *testing.T) {
	// "GDP" appears in the rename table; even if it showed up in a modern
	// year it must resolve through the rename, not identity.
	r := testResolver("GDP")

	m := r.Resolve("GDP", model.NameStats{FirstYear: 1990, LastYear: 2024, UseCount: 500})
	assert.Equal(t, model.MappingRename, m.Type)
	assert.Equal(t, "Real GDP (purchasing power parity)", m.CanonicalName)
}

func TestResolveDashCascade(t *testing.T) {
	r := testResolver("Economic overview", "Diplomatic representation in the US")

	// Dash form resolves through the rename table.
	m := r.Resolve("Economy-overview", model.NameStats{FirstYear: 1998, LastYear: 1998, UseCount: 200})
	assert.Equal(t, model.MappingDashFormat, m.Type)
	assert.Equal(t, "Economic overview", m.CanonicalName)
	assert.Contains(t, m.Notes, "dash -> Economy - overview")

	// Dash form that lands directly on a modern name.
	r2 := testResolver("Area - comparative")
	m = r2.Resolve("Area--comparative", model.NameStats{FirstYear: 1999, LastYear: 1999, UseCount: 250})
	assert.Equal(t, model.MappingDashFormat, m.Type)
	assert.Equal(t, "Area - comparative", m.CanonicalName)

	// Dash form that lands on a consolidation entry.
	m = r2.Resolve("Oil--production", model.NameStats{FirstYear: 1999, LastYear: 1999, UseCount: 220})
	assert.Equal(t, model.MappingDashFormat, m.Type)
	assert.Equal(t, "Oil - production", m.CanonicalName)
	assert.Equal(t, "Petroleum", m.ConsolidatedTo)
}

func TestResolveRename(t *testing.T) {
	r := testResolver("Roadways")

	m := r.Resolve("Highways", model.NameStats{FirstYear: 1990, LastYear: 2015, UseCount: 4000})
	assert.Equal(t, model.MappingRename, m.Type)
	assert.Equal(t, "Roadways", m.CanonicalName)
}

func TestResolveConsolidationPreservesOriginal(t *testing.T) {
	r := testResolver()

	m := r.Resolve("Oil - production", model.NameStats{FirstYear: 1993, LastYear: 2012, UseCount: 3000})
	assert.Equal(t, model.MappingConsolidation, m.Type)
	assert.Equal(t, "Oil - production", m.CanonicalName)
	assert.Equal(t, "Petroleum", m.ConsolidatedTo)
	assert.False(t, m.IsNoise)
}

func TestResolveGovBody(t *testing.T) {
	r := testResolver()

	m := r.Resolve("Bundestag", model.NameStats{FirstYear: 1994, LastYear: 1998, UseCount: 5})
	assert.Equal(t, model.MappingCountrySpecific, m.Type)
	assert.Equal(t, "Legislative branch", m.CanonicalName)

	// Too recent: the keyword rule only applies to the legacy era.
	m = r.Resolve("Bundestag", model.NameStats{FirstYear: 1994, LastYear: 2010, UseCount: 5})
	assert.NotEqual(t, "Legislative branch", m.CanonicalName)

	// Too common: high-use names are real fields, not one-country bodies.
	m = r.Resolve("National Assembly", model.NameStats{FirstYear: 1994, LastYear: 1998, UseCount: 150})
	assert.NotEqual(t, "Legislative branch", m.CanonicalName)
}

func TestResolveRegionalAndReference(t *testing.T) {
	r := testResolver()

	m := r.Resolve("Republika Srpska", model.NameStats{FirstYear: 1996, LastYear: 2000, UseCount: 30})
	assert.Equal(t, model.MappingCountrySpecific, m.Type)
	assert.Equal(t, "Republika Srpska", m.CanonicalName)
	assert.Equal(t, "regional sub-entry", m.Notes)

	m = r.Resolve("Weights and measures", model.NameStats{FirstYear: 1992, LastYear: 2000, UseCount: 9})
	assert.Equal(t, model.MappingCountrySpecific, m.Type)
	assert.Equal(t, "reference entry", m.Notes)
}

func TestResolveNoise(t *testing.T) {
	r := testResolver()
	legacy := model.NameStats{FirstYear: 1994, LastYear: 1994, UseCount: 2}

	tests := []struct {
		name  string
		field string
		stats model.NameStats
	}{
		{"two-char uppercase low count", "UK", legacy},
		{"abbreviation with period", "avdp.", legacy},
		{"four-char country code", "FSM", model.NameStats{FirstYear: 1995, LastYear: 2003, UseCount: 3}},
		{"lowercase fragment", "total population growth", model.NameStats{FirstYear: 2004, LastYear: 2008, UseCount: 4}},
		{"noise phrase", "Government consists mainly of elders", model.NameStats{FirstYear: 1993, LastYear: 2005, UseCount: 40}},
		{"runway artifact", "with runways over 3,659 m", legacy},
		{"antarctic article", "Article 5 of the Treaty", model.NameStats{FirstYear: 1994, LastYear: 2005, UseCount: 20}},
		{"province list", "Anhui, Fujian, Gansu, Guangdong, Guizhou, Hebei provinces", model.NameStats{FirstYear: 1994, LastYear: 2010, UseCount: 2}},
		{"1994 sub-field label", "chief of mission", model.NameStats{FirstYear: 1994, LastYear: 2010, UseCount: 900}},
		{"party fragment", "Democratic Bloc", model.NameStats{FirstYear: 1992, LastYear: 1996, UseCount: 4}},
		{"legacy catch-all", "Cushions", model.NameStats{FirstYear: 1991, LastYear: 1993, UseCount: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := r.Resolve(tt.field, tt.stats)
			assert.Equal(t, model.MappingNoise, m.Type)
			assert.True(t, m.IsNoise)
			assert.Equal(t, tt.field, m.CanonicalName)
		})
	}
}

func TestResolveManualFallback(t *testing.T) {
	r := testResolver()

	m := r.Resolve("Completely Unknown Field Name", model.NameStats{FirstYear: 2005, LastYear: 2012, UseCount: 60})
	assert.Equal(t, model.MappingManual, m.Type)
	assert.Equal(t, "Completely Unknown Field Name", m.CanonicalName)
	assert.False(t, m.IsNoise)
}

func TestBuildMappingsDeterministic(t *testing.T) {
	r := testResolver("Population")
	stats := map[string]model.NameStats{
		"Population":       {FirstYear: 1990, LastYear: 2025, UseCount: 9000},
		"Highways":         {FirstYear: 1990, LastYear: 2015, UseCount: 4000},
		"Oil - production": {FirstYear: 1993, LastYear: 2012, UseCount: 3000},
		"UK":               {FirstYear: 1994, LastYear: 1994, UseCount: 2},
	}

	first := r.BuildMappings(stats)
	second := r.BuildMappings(stats)
	require.Equal(t, first, second)

	require.Len(t, first, 4)
	// Sorted by original name.
	assert.Equal(t, "Highways", first[0].OriginalName)
	assert.Equal(t, "Oil - production", first[1].OriginalName)
	assert.Equal(t, "Population", first[2].OriginalName)
	assert.Equal(t, "UK", first[3].OriginalName)

	// One mapping per distinct name.
	seen := make(map[string]bool)
	for _, m := range first {
		assert.False(t, seen[m.OriginalName])
		seen[m.OriginalName] = true
	}
}
