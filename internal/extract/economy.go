package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/worldfacts/archive-cli/internal/model"
)

var (
	dollarOccurrenceRe = regexp.MustCompile(`(?i)\$([\d.,]+)\s*(trillion|billion|million)?\s*(?:\((\d{4})\s*est\.?\))?`)
	trailingNoteRe     = regexp.MustCompile(`(?i)note\s*:\s*(.+?)$`)
)

// dollarSeries emits one row per "$N magnitude (YYYY est.)" occurrence, in
// left-to-right order. Year-tagged occurrences key as value_<year>; untagged
// ones key as value (first) or value_<n>. Rank attaches to the first
// occurrence only.
func dollarSeries(fieldID int64, content string, rank *int) []model.StructuredValue {
	var rows []model.StructuredValue
	for i, m := range dollarOccurrenceRe.FindAllStringSubmatch(content, -1) {
		v := ParseNumber(m[1])
		if v == nil {
			continue
		}
		val := ScaleMagnitude(*v, m[2])

		year := m[3]
		var sub, dateEst string
		switch {
		case year != "":
			sub = "value_" + year
			dateEst = year + " est."
		case i == 0:
			sub = "value"
		default:
			sub = fmt.Sprintf("value_%d", i)
		}

		row := model.StructuredValue{
			FieldID: fieldID, SubField: sub, Numeric: model.Float(val), Units: "USD",
			DateEst: dateEst, SourceFragment: Fragment(m[0]),
		}
		if i == 0 {
			row.Rank = rank
		}
		rows = append(rows, row)
	}
	return rows
}

// extractDollarSeries handles GDP variants, current account balance,
// reserves and external debt: multi-year dollar amounts plus a trailing note.
func extractDollarSeries(fieldID int64, content string) ([]model.StructuredValue, error) {
	rank := ExtractRank(content)
	content = NormalizeContent(content)

	rows := dollarSeries(fieldID, content, rank)
	if m := trailingNoteRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "note", Text: strings.TrimSpace(m[1]),
			SourceFragment: Fragment(m[0]),
		})
	}
	return rows, nil
}

var percentOccurrenceRe = regexp.MustCompile(`(-?[\d.]+)%\s*(?:\((\d{4})\s*est\.?\))?`)

// extractPercentSeries handles unemployment, inflation, growth rates and
// public debt: multi-year percentages plus a trailing note.
func extractPercentSeries(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	rank := ExtractRank(content)
	content = NormalizeContent(content)

	for i, m := range percentOccurrenceRe.FindAllStringSubmatch(content, -1) {
		pct := ParseNumber(m[1])
		if pct == nil {
			continue
		}
		year := m[2]
		var sub, dateEst string
		switch {
		case year != "":
			sub = "value_" + year
			dateEst = year + " est."
		case i == 0:
			sub = "value"
		default:
			sub = fmt.Sprintf("value_%d", i)
		}
		row := model.StructuredValue{
			FieldID: fieldID, SubField: sub, Numeric: pct, Units: "%",
			DateEst: dateEst, SourceFragment: Fragment(m[0]),
		}
		if i == 0 {
			row.Rank = rank
		}
		rows = append(rows, row)
	}

	if m := trailingNoteRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "note", Text: strings.TrimSpace(m[1]),
			SourceFragment: Fragment(m[0]),
		})
	}
	return rows, nil
}

var pctGDPOccurrenceRe = regexp.MustCompile(`([\d.]+)%\s*(?:of\s*G[DN]P)?\s*(?:\((\d{4})\s*est\.?\))?`)

// extractPctOfGDPSeries handles military expenditures: multi-year
// percent-of-GDP values.
func extractPctOfGDPSeries(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	rank := ExtractRank(content)
	content = NormalizeContent(content)

	for i, m := range pctGDPOccurrenceRe.FindAllStringSubmatch(content, -1) {
		pct := ParseNumber(m[1])
		if pct == nil {
			continue
		}
		year := m[2]
		var sub, dateEst string
		switch {
		case year != "":
			sub = "pct_gdp_" + year
			dateEst = year + " est."
		case i == 0:
			sub = "pct_gdp"
		default:
			sub = fmt.Sprintf("pct_gdp_%d", i)
		}
		row := model.StructuredValue{
			FieldID: fieldID, SubField: sub, Numeric: pct, Units: "% of GDP",
			DateEst: dateEst, SourceFragment: Fragment(m[0]),
		}
		if i == 0 {
			row.Rank = rank
		}
		rows = append(rows, row)
	}
	return rows, nil
}

var (
	tradeCommoditiesRe = regexp.MustCompile(`(?i)commodities\s*[-:]\s*(.+?)(?:\s*partners|\s*note|\s*$)`)
	tradePartnersRe    = regexp.MustCompile(`(?i)partners\s*[-:]\s*(.+?)(?:\s*note|\s*$)`)
	tradePartnerPctRe  = regexp.MustCompile(`([A-Z][\w\s,.'-]+?)\s+([\d.]+)%`)
)

// extractTrade handles Exports and Imports: the dollar series plus
// commodities, the partner list, and per-partner percentage shares.
func extractTrade(fieldID int64, content string) ([]model.StructuredValue, error) {
	rank := ExtractRank(content)
	content = NormalizeContent(content)

	rows := dollarSeries(fieldID, content, rank)

	if m := tradeCommoditiesRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "commodities", Text: strings.TrimSpace(m[1]),
			SourceFragment: Fragment(m[0]),
		})
	}

	if m := tradePartnersRe.FindStringSubmatch(content); m != nil {
		partnerText := strings.TrimSpace(m[1])
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "partners", Text: partnerText,
			SourceFragment: Fragment(m[0]),
		})
		seen := make(map[string]bool)
		for _, pm := range tradePartnerPctRe.FindAllStringSubmatch(partnerText, -1) {
			name := strings.TrimRight(strings.TrimSpace(pm[1]), ",")
			pct := ParseNumber(pm[2])
			if pct == nil || *pct <= 0 || len(name) >= 50 {
				continue
			}
			sub := "partner_" + strings.ReplaceAll(strings.ToLower(name), " ", "_")
			if seen[sub] {
				continue
			}
			seen[sub] = true
			rows = append(rows, model.StructuredValue{
				FieldID: fieldID, SubField: sub, Numeric: pct, Units: "%",
				SourceFragment: Fragment(pm[0]),
			})
		}
	}
	return rows, nil
}

var budgetRes = map[string]*regexp.Regexp{
	"revenues":     regexp.MustCompile(`(?i)revenues\s*:?\s*\$?([\d.,]+)\s*(trillion|billion|million)?`),
	"expenditures": regexp.MustCompile(`(?i)expenditures\s*:?\s*\$?([\d.,]+)\s*(trillion|billion|million)?`),
}

// extractBudget handles government revenues and expenditures in dollars.
func extractBudget(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	content = NormalizeContent(content)
	dateEst := ExtractEstimate(content)

	for _, sub := range []string{"revenues", "expenditures"} {
		m := budgetRes[sub].FindStringSubmatch(content)
		if m == nil {
			continue
		}
		v := ParseNumber(m[1])
		if v == nil {
			continue
		}
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: sub, Numeric: model.Float(ScaleMagnitude(*v, m[2])),
			Units: "USD", DateEst: dateEst, SourceFragment: Fragment(m[0]),
		})
	}
	return rows, nil
}
