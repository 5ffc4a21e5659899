package extract

import (
	"regexp"
	"strings"

	"github.com/worldfacts/archive-cli/internal/model"
)

var electricityPatterns = []struct {
	sub string
	re  *regexp.Regexp
}{
	{"installed_generating_capacity", regexp.MustCompile(`(?i)(?:installed\s+generating\s+)?capacity\s*:\s*([\d.,]+)\s*(billion|million|thousand)?\s*(kW)`)},
	{"consumption", regexp.MustCompile(`(?i)consumption\s*:\s*([\d.,]+)\s*(trillion|billion|million)?\s*(kWh)`)},
	{"exports", regexp.MustCompile(`(?i)exports\s*:\s*([\d.,]+)\s*(trillion|billion|million)?\s*(kWh)`)},
	{"imports", regexp.MustCompile(`(?i)imports\s*:\s*([\d.,]+)\s*(trillion|billion|million)?\s*(kWh)`)},
	{"production", regexp.MustCompile(`(?i)production\s*:\s*([\d.,]+)\s*(trillion|billion|million)?\s*(kWh)`)},
}

var (
	electricityLegacyKWRe  = regexp.MustCompile(`([\d,]+)\s*(?:million\s+)?kW\s+capacity`)
	electricityLegacyKWhRe = regexp.MustCompile(`([\d,]+)\s*(?:billion|million)?\s*kWh\s*(?:produced|production)`)
)

// extractElectricity handles labeled capacity/consumption/exports/imports/
// production figures, with a fallback for the legacy
// "N kW capacity; M million kWh produced" shape.
func extractElectricity(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	content = NormalizeContent(content)

	for _, ep := range electricityPatterns {
		m := ep.re.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		v := ParseNumber(m[1])
		if v == nil {
			continue
		}
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: ep.sub,
			Numeric: model.Float(ScaleMagnitude(*v, m[2])), Units: m[3],
			DateEst: ExtractEstimate(content), SourceFragment: Fragment(m[0]),
		})
	}
	if len(rows) > 0 {
		return rows, nil
	}

	if m := electricityLegacyKWRe.FindStringSubmatch(content); m != nil {
		if v := ParseNumber(m[1]); v != nil {
			rows = append(rows, model.StructuredValue{
				FieldID: fieldID, SubField: "installed_generating_capacity",
				Numeric: v, Units: "kW", SourceFragment: Fragment(m[0]),
			})
		}
	}
	if loc := electricityLegacyKWhRe.FindStringSubmatchIndex(content); loc != nil {
		m := electricityLegacyKWhRe.FindStringSubmatch(content)
		if v := ParseNumber(m[1]); v != nil {
			// The magnitude word may sit between the number and "kWh", or
			// earlier in the sentence.
			prefix := content[:loc[1]]
			switch {
			case strings.Contains(prefix, "billion"):
				*v *= 1e9
			case strings.Contains(prefix, "million"):
				*v *= 1e6
			}
			rows = append(rows, model.StructuredValue{
				FieldID: fieldID, SubField: "production",
				Numeric: v, Units: "kWh", SourceFragment: Fragment(m[0]),
			})
		}
	}
	return rows, nil
}
