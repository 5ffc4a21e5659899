// Package pipeline orchestrates the two-stage run over a field corpus: name
// canonicalization from aggregate usage statistics, then per-field value
// extraction through the dispatcher.
package pipeline

import (
	"github.com/worldfacts/archive-cli/internal/model"
)

// AggregateStats folds per-field records into per-name usage statistics:
// first/last year observed and total occurrence count.
func AggregateStats(fields []model.FieldRecord) map[string]model.NameStats {
	stats := make(map[string]model.NameStats)
	for _, f := range fields {
		s, ok := stats[f.Name]
		if !ok {
			s = model.NameStats{FirstYear: f.Year, LastYear: f.Year}
		}
		if f.Year < s.FirstYear {
			s.FirstYear = f.Year
		}
		if f.Year > s.LastYear {
			s.LastYear = f.Year
		}
		s.UseCount++
		stats[f.Name] = s
	}
	return stats
}

// ModernVocabulary returns the set of field names observed within the most
// recent span of editions (the corpus's max year back through max-span+1).
// These names anchor the identity rule of the canonicalizer.
func ModernVocabulary(fields []model.FieldRecord, span int) map[string]struct{} {
	if span < 1 {
		span = 1
	}
	maxYear := 0
	for _, f := range fields {
		if f.Year > maxYear {
			maxYear = f.Year
		}
	}

	modern := make(map[string]struct{})
	for _, f := range fields {
		if f.Year > maxYear-span {
			modern[f.Name] = struct{}{}
		}
	}
	return modern
}
