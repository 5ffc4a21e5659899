// Package canonical maps historical field-name spellings to a stable
// canonical vocabulary via an ordered rule cascade. The first matching rule
// wins; the mapping is a pure function of the name and its usage statistics.
package canonical

import (
	"fmt"
	"sort"
	"strings"

	"github.com/worldfacts/archive-cli/internal/model"
)

// Resolver applies the canonicalization rule cascade. It is built once per
// batch with the modern vocabulary (names observed in the corpus's most
// recent editions) and is read-only afterwards.
type Resolver struct {
	modern     map[string]struct{}
	thresholds Thresholds
}

// NewResolver builds a Resolver over the given modern vocabulary.
func NewResolver(modern map[string]struct{}, thresholds Thresholds) *Resolver {
	return &Resolver{modern: modern, thresholds: thresholds}
}

// normalizeDashes converts a missing-space dash pattern ("Economy-overview",
// "Economy--overview") to "Economy - overview". The split happens at the
// first "--", or at the first single "-" not preceded by a space. Returns ""
// when the name has no such pattern.
func normalizeDashes(name string) string {
	for i := 1; i < len(name)-1; i++ {
		if name[i] != '-' {
			continue
		}
		var left, right string
		switch {
		case name[i+1] == '-':
			if i+2 >= len(name) {
				continue
			}
			left, right = name[:i], name[i+2:]
		case name[i-1] != ' ':
			left, right = name[:i], name[i+1:]
		default:
			continue
		}
		left = strings.TrimSpace(left)
		right = strings.TrimSpace(right)
		if left == "" || right == "" {
			continue
		}
		return left + " - " + right
	}
	return ""
}

// Resolve applies the mapping rules in priority order. First match wins.
func (r *Resolver) Resolve(name string, stats model.NameStats) model.Mapping {
	base := model.Mapping{
		OriginalName:  name,
		CanonicalName: name,
		FirstYear:     stats.FirstYear,
		LastYear:      stats.LastYear,
		UseCount:      stats.UseCount,
	}

	// Rule 1: identity -- field exists in the modern vocabulary and is not
	// itself a documented rename source.
	_, isModern := r.modern[name]
	_, isRenamed := knownRenames[name]
	if isModern && !isRenamed {
		base.Type = model.MappingIdentity
		return base
	}

	// Rule 2: dash normalization, then re-check rename -> modern ->
	// consolidation on the reformatted string.
	if normalized := normalizeDashes(name); normalized != "" {
		if canon, ok := knownRenames[normalized]; ok {
			base.CanonicalName = canon
			base.Type = model.MappingDashFormat
			base.Notes = fmt.Sprintf("dash -> %s -> %s", normalized, canon)
			return base
		}
		if _, ok := r.modern[normalized]; ok {
			base.CanonicalName = normalized
			base.Type = model.MappingDashFormat
			base.Notes = fmt.Sprintf("dash -> %s", normalized)
			return base
		}
		if parent, ok := consolidations[normalized]; ok {
			base.CanonicalName = normalized
			base.Type = model.MappingDashFormat
			base.ConsolidatedTo = parent
			base.Notes = fmt.Sprintf("dash -> %s (consolidated)", normalized)
			return base
		}
	}

	// Rule 3: known renames.
	if canon, ok := knownRenames[name]; ok {
		base.CanonicalName = canon
		base.Type = model.MappingRename
		return base
	}

	// Rule 4: consolidation (sub-fields merged into a parent aggregate).
	if parent, ok := consolidations[name]; ok {
		base.Type = model.MappingConsolidation
		base.ConsolidatedTo = parent
		return base
	}

	// Rule 5: country-specific government bodies.
	if r.isGovBody(name, stats) {
		base.CanonicalName = "Legislative branch"
		base.Type = model.MappingCountrySpecific
		return base
	}

	// Rule 5b: regional sub-entries (partition-era splits).
	if _, ok := regionalEntries[name]; ok {
		base.Type = model.MappingCountrySpecific
		base.Notes = "regional sub-entry"
		return base
	}

	// Rule 5c: reference entries (appendixes, glossary, legends).
	if _, ok := referenceEntries[name]; ok {
		base.Type = model.MappingCountrySpecific
		base.Notes = "reference entry"
		return base
	}

	// Rule 6: noise / parser artifacts.
	if r.isNoise(name, stats) {
		base.Type = model.MappingNoise
		base.IsNoise = true
		return base
	}

	// Rule 7: unmapped -- keep original, flag for review.
	base.Type = model.MappingManual
	return base
}

// BuildMappings resolves every distinct name, returning mappings sorted by
// original name for deterministic output.
func (r *Resolver) BuildMappings(stats map[string]model.NameStats) []model.Mapping {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	mappings := make([]model.Mapping, 0, len(names))
	for _, name := range names {
		mappings = append(mappings, r.Resolve(name, stats[name]))
	}
	return mappings
}

// ModernNames returns the resolver's modern vocabulary (for reports).
func (r *Resolver) ModernNames() []string {
	names := make([]string, 0, len(r.modern))
	for name := range r.modern {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
