package extract

import (
	"math"
	"regexp"
	"strings"

	"github.com/worldfacts/archive-cli/internal/model"
)

// areaLabels are tried in order; the longer "... area" spellings come first
// so their bare forms don't shadow them.
var areaLabels = []struct {
	label string
	re    *regexp.Regexp
}{
	{"total area", regexp.MustCompile(`(?i)total area\s*:?\s*([\d,]+)\s*(?:sq\s*km|km2)`)},
	{"total", regexp.MustCompile(`(?i)total\s*:?\s*([\d,]+)\s*(?:sq\s*km|km2)`)},
	{"land area", regexp.MustCompile(`(?i)land area\s*:?\s*([\d,]+)\s*(?:sq\s*km|km2)`)},
	{"land", regexp.MustCompile(`(?i)land\s*:?\s*([\d,]+)\s*(?:sq\s*km|km2)`)},
	{"water", regexp.MustCompile(`(?i)water\s*:?\s*([\d,]+)\s*(?:sq\s*km|km2)`)},
}

var (
	areaComparativeRe = regexp.MustCompile(`(?i)comparative\s*(?:area)?\s*:?\s*(.+?)\s*(?:note|$)`)
	noteRe            = regexp.MustCompile(`(?i)note\s*:?\s*(.+)`)
)

// extractArea handles Area-like fields: total/land/water in sq km, a
// comparative free-text note, and a trailing note. Rank attaches to total
// only.
func extractArea(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	rank := ExtractRank(content)
	content = NormalizeContent(content)

	seen := make(map[string]bool)
	for _, al := range areaLabels {
		m := al.re.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		sub := strings.TrimSuffix(al.label, " area")
		if seen[sub] {
			continue
		}
		seen[sub] = true
		row := model.StructuredValue{
			FieldID:        fieldID,
			SubField:       sub,
			Numeric:        ParseNumber(m[1]),
			Units:          "sq km",
			DateEst:        ExtractEstimate(content),
			SourceFragment: Fragment(m[0]),
		}
		if sub == "total" {
			row.Rank = rank
		}
		if row.Numeric != nil {
			rows = append(rows, row)
		}
	}

	if m := areaComparativeRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID:        fieldID,
			SubField:       "comparative",
			Text:           strings.TrimSpace(m[1]),
			SourceFragment: Fragment(m[0]),
		})
	}
	if m := noteRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID:        fieldID,
			SubField:       "note",
			Text:           strings.TrimSpace(m[1]),
			SourceFragment: Fragment(m[0]),
		})
	}
	return rows, nil
}

var (
	elevationMeanRe    = regexp.MustCompile(`(?i)mean elevation\s*:?\s*([\d,]+)\s*m`)
	elevationHighestRe = regexp.MustCompile(`(?i)highest point\s*:?\s*(.+?)\s+(-?[\d,]+)\s*m`)
	elevationLowestRe  = regexp.MustCompile(`(?i)lowest point\s*:?\s*(.+?)\s+(-?[\d,]+)\s*m`)
)

// extractElevation handles mean/highest/lowest elevation with point names.
func extractElevation(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	content = NormalizeContent(content)

	if m := elevationMeanRe.FindStringSubmatch(content); m != nil {
		if v := ParseNumber(m[1]); v != nil {
			rows = append(rows, model.StructuredValue{
				FieldID: fieldID, SubField: "mean", Numeric: v, Units: "m",
				SourceFragment: Fragment(m[0]),
			})
		}
	}
	if m := elevationHighestRe.FindStringSubmatch(content); m != nil {
		if v := ParseNumber(m[2]); v != nil {
			rows = append(rows, model.StructuredValue{
				FieldID: fieldID, SubField: "highest", Numeric: v, Units: "m",
				Text: strings.TrimSpace(m[1]), SourceFragment: Fragment(m[0]),
			})
		}
	}
	if m := elevationLowestRe.FindStringSubmatch(content); m != nil {
		if v := ParseNumber(m[2]); v != nil {
			rows = append(rows, model.StructuredValue{
				FieldID: fieldID, SubField: "lowest", Numeric: v, Units: "m",
				Text: strings.TrimSpace(m[1]), SourceFragment: Fragment(m[0]),
			})
		}
	}
	return rows, nil
}

var gpsRe = regexp.MustCompile(`(\d+)\s+(\d+)\s*([NS])\s*,?\s*(\d+)\s+(\d+)\s*([EW])`)

// extractGPS parses "35 50 N, 105 00 E" style coordinates into signed
// decimal degrees (4 decimal places).
func extractGPS(fieldID int64, content string) ([]model.StructuredValue, error) {
	content = NormalizeContent(content)
	m := gpsRe.FindStringSubmatch(content)
	if m == nil {
		return nil, nil
	}

	lat := *ParseNumber(m[1]) + *ParseNumber(m[2])/60
	if m[3] == "S" {
		lat = -lat
	}
	lon := *ParseNumber(m[4]) + *ParseNumber(m[5])/60
	if m[6] == "W" {
		lon = -lon
	}

	return []model.StructuredValue{
		{FieldID: fieldID, SubField: "latitude", Numeric: model.Float(round4(lat)), Units: "degrees", SourceFragment: Fragment(m[0])},
		{FieldID: fieldID, SubField: "longitude", Numeric: model.Float(round4(lon)), Units: "degrees", SourceFragment: Fragment(m[0])},
	}, nil
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

var singleWithUnitsRe = regexp.MustCompile(`([\d,]+)\s*(sq\s*km|km2|km|nm|m|hectares)`)

// extractSingleWithUnits handles Coastline and similar single number + unit
// fields.
func extractSingleWithUnits(fieldID int64, content string) ([]model.StructuredValue, error) {
	rank := ExtractRank(content)
	content = NormalizeContent(content)

	m := singleWithUnitsRe.FindStringSubmatch(content)
	if m == nil {
		return nil, nil
	}
	v := ParseNumber(m[1])
	if v == nil {
		return nil, nil
	}
	unit := m[2]
	if unit == "km2" {
		unit = "sq km"
	}
	return []model.StructuredValue{{
		FieldID: fieldID, SubField: "value", Numeric: v, Units: unit,
		DateEst: ExtractEstimate(content), Rank: rank,
		SourceFragment: Fragment(m[0]),
	}}, nil
}

var landUseLabels = []string{
	"agricultural land", "arable land", "permanent crops",
	"permanent pasture", "forest", "other",
}

var landUseRes = compileLabeledPct(landUseLabels)

// extractLandUse handles labeled land-use percentages.
func extractLandUse(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	content = NormalizeContent(content)
	dateEst := ExtractEstimate(content)

	for i, label := range landUseLabels {
		m := landUseRes[i].FindStringSubmatch(content)
		if m == nil {
			continue
		}
		if v := ParseNumber(m[1]); v != nil {
			rows = append(rows, model.StructuredValue{
				FieldID:        fieldID,
				SubField:       strings.ReplaceAll(label, " ", "_"),
				Numeric:        v,
				Units:          "%",
				DateEst:        dateEst,
				SourceFragment: Fragment(m[0]),
			})
		}
	}
	return rows, nil
}

// compileLabeledPct builds one "<label>: N%" regex per label.
func compileLabeledPct(labels []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(labels))
	for i, label := range labels {
		res[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `\s*:?\s*([\d.]+)%`)
	}
	return res
}

var maritimeLabels = []struct {
	label string
	sub   string
}{
	{"territorial sea", "territorial_sea"},
	{"contiguous zone", "contiguous_zone"},
	{"exclusive economic zone", "exclusive_economic_zone"},
	{"exclusive fishing zone", "exclusive_fishing_zone"},
	{"continental shelf", "continental_shelf"},
}

var maritimeRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(maritimeLabels))
	for i, ml := range maritimeLabels {
		res[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(ml.label) + `\s*:?\s*([\d,]+)\s*(nm|m)`)
	}
	return res
}()

// extractMaritimeClaims handles the consolidated maritime claim distances
// (nautical miles, or meters for depth-based continental shelf claims).
func extractMaritimeClaims(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	content = NormalizeContent(content)

	for i, ml := range maritimeLabels {
		m := maritimeRes[i].FindStringSubmatch(content)
		if m == nil {
			continue
		}
		if v := ParseNumber(m[1]); v != nil {
			rows = append(rows, model.StructuredValue{
				FieldID:        fieldID,
				SubField:       ml.sub,
				Numeric:        v,
				Units:          m[2],
				SourceFragment: Fragment(m[0]),
			})
		}
	}
	return rows, nil
}
