package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/worldfacts/archive-cli/internal/model"
)

// mappingTypeOrder fixes the report's breakdown ordering.
var mappingTypeOrder = []model.MappingType{
	model.MappingIdentity,
	model.MappingDashFormat,
	model.MappingRename,
	model.MappingConsolidation,
	model.MappingCountrySpecific,
	model.MappingNoise,
	model.MappingManual,
}

// FormatReport renders a human-readable run report. Counts use grouped
// digits since corpora span millions of field rows.
func FormatReport(result *Result) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	b.WriteString("# Archive Extraction Report\n\n")

	b.WriteString("## Summary\n")
	p.Fprintf(&b, "- Distinct names resolved: %d\n", result.Stats.NamesResolved)
	p.Fprintf(&b, "- Fields processed: %d\n", result.Stats.FieldsProcessed)
	p.Fprintf(&b, "- Fields skipped (empty): %d\n", result.Stats.FieldsSkipped)
	p.Fprintf(&b, "- Fields degraded: %d\n", result.Stats.FieldsDegraded)
	p.Fprintf(&b, "- Values emitted: %d\n", result.Stats.ValuesEmitted)
	if result.Stats.FieldsProcessed > 0 {
		ratio := float64(result.Stats.ValuesEmitted) / float64(result.Stats.FieldsProcessed)
		fmt.Fprintf(&b, "- Expansion ratio: %.1fx\n", ratio)
	}
	b.WriteString("\n")

	b.WriteString("## Mapping Breakdown\n")
	for _, mt := range mappingTypeOrder {
		if n, ok := result.Stats.ByMappingType[mt]; ok {
			p.Fprintf(&b, "- %s: %d\n", mt, n)
		}
	}
	b.WriteString("\n")

	// Names left to manual review, most heavily used first.
	var manual []model.Mapping
	for _, m := range result.Mappings {
		if m.Type == model.MappingManual {
			manual = append(manual, m)
		}
	}
	sort.SliceStable(manual, func(i, j int) bool {
		return manual[i].UseCount > manual[j].UseCount
	})
	b.WriteString("## Pending Manual Review\n")
	if len(manual) == 0 {
		b.WriteString("None.\n")
	} else {
		const topN = 25
		for i, m := range manual {
			if i == topN {
				p.Fprintf(&b, "... and %d more\n", len(manual)-topN)
				break
			}
			// Years are labels, not quantities: no digit grouping.
			fmt.Fprintf(&b, "- %s (%d uses, %d-%d)\n", m.OriginalName, m.UseCount, m.FirstYear, m.LastYear)
		}
	}
	return b.String()
}
