package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/worldfacts/archive-cli/internal/model"
)

var (
	genericLabelRe   = regexp.MustCompile(`^([a-zA-Z][a-zA-Z\s\-/()]{1,60}):\s*(.+)`)
	genericNumericRe = regexp.MustCompile(`^(-?[\d,]+\.?\d*)\s*(.*)`)
	genericUnitsRe   = regexp.MustCompile(`^(%|sq\s*km|km|nm|m|years?|kW|kWh|bbl/day|liters|metric tonn?es?|USD|deaths|births)`)
	genericDollarRe  = regexp.MustCompile(`(?i)\$([\d.,]+)\s*(trillion|billion|million)?`)
	genericPctRe     = regexp.MustCompile(`([\d.]+)%`)
)

// ExtractGeneric is the fallback for fields with no specialized extractor.
// It splits pipe-delimited segments, mines "label: value" pairs into numeric,
// dollar, percentage or text rows, and guarantees at least one row for any
// non-empty content.
func ExtractGeneric(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	rank := ExtractRank(content)
	content = NormalizeContent(content)
	dateEst := ExtractEstimate(content)

	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	var parts []string
	if strings.Contains(content, " | ") {
		for _, p := range strings.Split(content, " | ") {
			parts = append(parts, strings.TrimSpace(p))
		}
	} else {
		parts = []string{content}
	}

	// Duplicate labels across segments get a numeric suffix so every row
	// keeps a distinct sub-field key.
	used := make(map[string]int)
	subKey := func(label string) string {
		used[label]++
		if used[label] == 1 {
			return label
		}
		return fmt.Sprintf("%s_%d", label, used[label])
	}

	for _, part := range parts {
		m := genericLabelRe.FindStringSubmatch(part)
		if m == nil {
			if len(rows) == 0 {
				if nm := genericNumericRe.FindStringSubmatch(strings.TrimSpace(part)); nm != nil {
					if num := ParseNumber(nm[1]); num != nil {
						rows = append(rows, model.StructuredValue{
							FieldID: fieldID, SubField: "value", Numeric: num,
							DateEst: dateEst, Rank: rank, SourceFragment: Fragment(part),
						})
					}
				}
			}
			continue
		}

		label := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(m[1])), " ", "_")
		valText := strings.TrimSpace(m[2])

		if nm := genericNumericRe.FindStringSubmatch(valText); nm != nil {
			if num := ParseNumber(nm[1]); num != nil {
				var units string
				if um := genericUnitsRe.FindStringSubmatch(strings.TrimSpace(nm[2])); um != nil {
					units = um[1]
				}
				rows = append(rows, model.StructuredValue{
					FieldID: fieldID, SubField: subKey(label), Numeric: num, Units: units,
					DateEst: ExtractEstimate(valText), SourceFragment: Fragment(part),
				})
				continue
			}
		}

		if dm := genericDollarRe.FindStringSubmatch(valText); dm != nil {
			if num := ParseNumber(dm[1]); num != nil {
				rows = append(rows, model.StructuredValue{
					FieldID: fieldID, SubField: subKey(label),
					Numeric: model.Float(ScaleMagnitude(*num, dm[2])), Units: "USD",
					DateEst: ExtractEstimate(valText), SourceFragment: Fragment(part),
				})
				continue
			}
		}
		if pm := genericPctRe.FindStringSubmatch(valText); pm != nil {
			if num := ParseNumber(pm[1]); num != nil {
				rows = append(rows, model.StructuredValue{
					FieldID: fieldID, SubField: subKey(label), Numeric: num, Units: "%",
					DateEst: ExtractEstimate(valText), SourceFragment: Fragment(part),
				})
				continue
			}
		}

		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: subKey(label), Text: valText,
			SourceFragment: Fragment(part),
		})
	}

	// Floor: any non-empty content yields at least an opaque text row.
	if len(rows) == 0 {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "value", Text: Fragment(content),
			DateEst: dateEst, Rank: rank, SourceFragment: Fragment(content),
		})
	}
	return rows, nil
}
