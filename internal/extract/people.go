package extract

import (
	"math"
	"regexp"
	"strings"

	"github.com/worldfacts/archive-cli/internal/model"
)

var (
	popTotalRe      = regexp.MustCompile(`total\s*:\s*([\d,]+)`)
	popMaleRe       = regexp.MustCompile(`male\s*:\s*([\d,]+)`)
	popFemaleRe     = regexp.MustCompile(`female\s*:\s*([\d,]+)`)
	popLegacyRe     = regexp.MustCompile(`([\d,]{5,})`)
	popGrowthRateRe = regexp.MustCompile(`growth rate\s*(-?[\d.]+)%`)
)

// extractPopulation handles both the modern labeled format
// ("total: N ... male: N female: N") and the legacy bare-count format
// ("123,642,461 (July 1990), growth rate 0.4%").
func extractPopulation(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	rank := ExtractRank(content)
	content = NormalizeContent(content)
	dateEst := ExtractEstimate(content)

	if m := popTotalRe.FindStringSubmatch(content); m != nil {
		if num := ParseNumber(m[1]); num != nil {
			rows = append(rows, model.StructuredValue{
				FieldID: fieldID, SubField: "total", Numeric: num,
				DateEst: dateEst, Rank: rank, SourceFragment: Fragment(m[0]),
			})
		}
		if m2 := popMaleRe.FindStringSubmatch(content); m2 != nil {
			if num := ParseNumber(m2[1]); num != nil {
				rows = append(rows, model.StructuredValue{
					FieldID: fieldID, SubField: "male", Numeric: num,
					SourceFragment: Fragment(m2[0]),
				})
			}
		}
		if m2 := popFemaleRe.FindStringSubmatch(content); m2 != nil {
			if num := ParseNumber(m2[1]); num != nil {
				rows = append(rows, model.StructuredValue{
					FieldID: fieldID, SubField: "female", Numeric: num,
					SourceFragment: Fragment(m2[0]),
				})
			}
		}
		return rows, nil
	}

	if m := popLegacyRe.FindStringSubmatch(content); m != nil {
		if num := ParseNumber(m[1]); num != nil {
			rows = append(rows, model.StructuredValue{
				FieldID: fieldID, SubField: "total", Numeric: num,
				DateEst: dateEst, Rank: rank, SourceFragment: Fragment(m[0]),
			})
		}
	}
	if m := popGrowthRateRe.FindStringSubmatch(content); m != nil {
		if num := ParseNumber(m[1]); num != nil {
			rows = append(rows, model.StructuredValue{
				FieldID: fieldID, SubField: "growth_rate", Numeric: num,
				Units: "%", SourceFragment: Fragment(m[0]),
			})
		}
	}
	return rows, nil
}

var (
	lifeExpTotalRe  = regexp.MustCompile(`total population:\s*([\d.]+)`)
	lifeExpMaleRe   = regexp.MustCompile(`male:\s*([\d.]+)\s*years`)
	lifeExpFemaleRe = regexp.MustCompile(`female:\s*([\d.]+)\s*years`)
	lifeExpLegacyRe = regexp.MustCompile(`([\d.]+)\s*years?\s*male\b.*?([\d.]+)\s*years?\s*female`)
	lifeExpBareRe   = regexp.MustCompile(`^([\d.]+)\s*years?`)
)

// extractLifeExpectancy handles total_population/male/female in years.
// Legacy "76 years male, 82 years female" entries have no stated total, so
// the average of the two is synthesized, rounded to one decimal.
func extractLifeExpectancy(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	rank := ExtractRank(content)
	content = NormalizeContent(content)
	dateEst := ExtractEstimate(content)

	if m := lifeExpTotalRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "total_population", Numeric: ParseNumber(m[1]),
			Units: "years", DateEst: dateEst, Rank: rank, SourceFragment: Fragment(m[0]),
		})
	}
	if m := lifeExpMaleRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "male", Numeric: ParseNumber(m[1]),
			Units: "years", SourceFragment: Fragment(m[0]),
		})
	}
	if m := lifeExpFemaleRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "female", Numeric: ParseNumber(m[1]),
			Units: "years", SourceFragment: Fragment(m[0]),
		})
	}
	if len(rows) > 0 {
		return rows, nil
	}

	if m := lifeExpLegacyRe.FindStringSubmatch(content); m != nil {
		maleV, femaleV := ParseNumber(m[1]), ParseNumber(m[2])
		if maleV != nil && femaleV != nil {
			avg := math.Round((*maleV+*femaleV)/2*10) / 10
			rows = append(rows,
				model.StructuredValue{FieldID: fieldID, SubField: "male", Numeric: maleV, Units: "years", SourceFragment: Fragment(m[0])},
				model.StructuredValue{FieldID: fieldID, SubField: "female", Numeric: femaleV, Units: "years", SourceFragment: Fragment(m[0])},
				model.StructuredValue{FieldID: fieldID, SubField: "total_population", Numeric: model.Float(avg), Units: "years", DateEst: dateEst, Rank: rank, SourceFragment: Fragment(m[0])},
			)
			return rows, nil
		}
	}
	if m := lifeExpBareRe.FindStringSubmatch(strings.TrimSpace(content)); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "total_population", Numeric: ParseNumber(m[1]),
			Units: "years", DateEst: dateEst, Rank: rank, SourceFragment: Fragment(m[0]),
		})
	}
	return rows, nil
}

var (
	// Brackets with optional male/female counts, covering both
	// "(male 31,618,532/female 30,254,223)" and year-first orderings like
	// "18.72% (2024 est.) (male 2,457,418; female 2,309,706)".
	ageStructureRe = regexp.MustCompile(
		`(\d+[-–]\d+\s*years?|65\s*years?\s*and\s*over)\s*:\s*([\d.]+)%` +
			`(?:\s*\(?\s*(?:male\s*([\d,]+)\s*[/;]\s*female\s*([\d,]+)|\(\d{4}\s*est\.\))\s*\(?` +
			`(?:\s*\(male\s*([\d,]+)[/;]\s*female\s*([\d,]+)\))?)?`)
	ageStructurePctRe = regexp.MustCompile(
		`(\d+[-–]\d+\s*years?|65\s*years?\s*and\s*over)\s*:\s*([\d.]+)%`)
)

// extractAgeStructure emits one percentage row per age bracket, plus
// male/female count rows when the edition carries them.
func extractAgeStructure(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	content = NormalizeContent(content)
	dateEst := ExtractEstimate(content)

	for _, m := range ageStructureRe.FindAllStringSubmatch(content, -1) {
		bracket := ageBracketKey(m[1])
		pct := ParseNumber(m[2])
		if pct == nil {
			continue
		}
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: bracket + "_pct", Numeric: pct, Units: "%",
			DateEst: dateEst, SourceFragment: Fragment(m[0]),
		})
		maleV, femaleV := m[3], m[4]
		if maleV == "" {
			maleV, femaleV = m[5], m[6]
		}
		if maleV != "" {
			rows = append(rows, model.StructuredValue{
				FieldID: fieldID, SubField: bracket + "_male", Numeric: ParseNumber(maleV),
				SourceFragment: Fragment(m[0]),
			})
		}
		if femaleV != "" {
			rows = append(rows, model.StructuredValue{
				FieldID: fieldID, SubField: bracket + "_female", Numeric: ParseNumber(femaleV),
				SourceFragment: Fragment(m[0]),
			})
		}
	}
	if len(rows) > 0 {
		return rows, nil
	}

	// Percentage-only fallback for editions without counts.
	for _, m := range ageStructurePctRe.FindAllStringSubmatch(content, -1) {
		if pct := ParseNumber(m[2]); pct != nil {
			rows = append(rows, model.StructuredValue{
				FieldID: fieldID, SubField: ageBracketKey(m[1]) + "_pct", Numeric: pct, Units: "%",
				DateEst: dateEst, SourceFragment: Fragment(m[0]),
			})
		}
	}
	return rows, nil
}

func ageBracketKey(bracket string) string {
	bracket = strings.ReplaceAll(strings.TrimSpace(bracket), "–", "-")
	return strings.ReplaceAll(bracket, " ", "_")
}

var (
	medianAgeTotalRe  = regexp.MustCompile(`total\s*:\s*([\d.]+)\s*years`)
	medianAgeMaleRe   = regexp.MustCompile(`male\s*:\s*([\d.]+)\s*years`)
	medianAgeFemaleRe = regexp.MustCompile(`female\s*:\s*([\d.]+)\s*years`)
)

func extractMedianAge(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	rank := ExtractRank(content)
	content = NormalizeContent(content)
	dateEst := ExtractEstimate(content)

	if m := medianAgeTotalRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "total", Numeric: ParseNumber(m[1]), Units: "years",
			DateEst: dateEst, Rank: rank, SourceFragment: Fragment(m[0]),
		})
	}
	if m := medianAgeMaleRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "male", Numeric: ParseNumber(m[1]), Units: "years",
			SourceFragment: Fragment(m[0]),
		})
	}
	if m := medianAgeFemaleRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "female", Numeric: ParseNumber(m[1]), Units: "years",
			SourceFragment: Fragment(m[0]),
		})
	}
	return rows, nil
}

var (
	perThousandRe     = regexp.MustCompile(`([\d.]+)\s*(?:births|deaths)\s*/\s*1,000`)
	perThousandBareRe = regexp.MustCompile(`^([\d.]+)`)
)

// extractPerThousandRate handles Birth rate and Death rate: one value per
// 1,000 population. Legacy editions carry just the bare number.
func extractPerThousandRate(fieldID int64, content string) ([]model.StructuredValue, error) {
	rank := ExtractRank(content)
	content = NormalizeContent(content)
	dateEst := ExtractEstimate(content)

	m := perThousandRe.FindStringSubmatch(content)
	if m == nil {
		trimmed := strings.TrimSpace(content)
		if trimmed == "" {
			return nil, nil
		}
		m = perThousandBareRe.FindStringSubmatch(trimmed)
		if m == nil {
			return nil, nil
		}
	}
	v := ParseNumber(m[1])
	if v == nil {
		return nil, nil
	}
	return []model.StructuredValue{{
		FieldID: fieldID, SubField: "value", Numeric: v, Units: "per 1,000",
		DateEst: dateEst, Rank: rank, SourceFragment: Fragment(m[0]),
	}}, nil
}

var (
	infantTotalRe  = regexp.MustCompile(`total:\s*([\d.]+)\s*deaths`)
	infantMaleRe   = regexp.MustCompile(`male:\s*([\d.]+)\s*deaths`)
	infantFemaleRe = regexp.MustCompile(`female:\s*([\d.]+)\s*deaths`)
	infantLegacyRe = regexp.MustCompile(`([\d.]+)\s*(?:deaths|per)`)
)

const infantMortalityUnits = "deaths/1,000 live births"

func extractInfantMortality(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	rank := ExtractRank(content)
	content = NormalizeContent(content)
	dateEst := ExtractEstimate(content)

	if m := infantTotalRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "total", Numeric: ParseNumber(m[1]),
			Units: infantMortalityUnits, DateEst: dateEst, Rank: rank,
			SourceFragment: Fragment(m[0]),
		})
	}
	if m := infantMaleRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "male", Numeric: ParseNumber(m[1]),
			Units: infantMortalityUnits, SourceFragment: Fragment(m[0]),
		})
	}
	if m := infantFemaleRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "female", Numeric: ParseNumber(m[1]),
			Units: infantMortalityUnits, SourceFragment: Fragment(m[0]),
		})
	}
	if len(rows) > 0 {
		return rows, nil
	}

	if m := infantLegacyRe.FindStringSubmatch(content); m != nil {
		if v := ParseNumber(m[1]); v != nil {
			rows = append(rows, model.StructuredValue{
				FieldID: fieldID, SubField: "total", Numeric: v,
				Units: infantMortalityUnits, DateEst: dateEst, Rank: rank,
				SourceFragment: Fragment(m[0]),
			})
		}
	}
	return rows, nil
}

var (
	singleValueRe     = regexp.MustCompile(`([\d.]+)\s*(children born/woman|%|years?|births)`)
	singleValueBareRe = regexp.MustCompile(`^([\d.]+)`)
)

// extractSingleValue handles Total fertility rate and similar one-number
// fields with a recognizable unit suffix.
func extractSingleValue(fieldID int64, content string) ([]model.StructuredValue, error) {
	rank := ExtractRank(content)
	content = NormalizeContent(content)
	dateEst := ExtractEstimate(content)

	if m := singleValueRe.FindStringSubmatch(content); m != nil {
		if v := ParseNumber(m[1]); v != nil {
			return []model.StructuredValue{{
				FieldID: fieldID, SubField: "value", Numeric: v,
				Units: strings.TrimSpace(m[2]), DateEst: dateEst, Rank: rank,
				SourceFragment: Fragment(m[0]),
			}}, nil
		}
	}
	if m := singleValueBareRe.FindStringSubmatch(strings.TrimSpace(content)); m != nil {
		if v := ParseNumber(m[1]); v != nil {
			return []model.StructuredValue{{
				FieldID: fieldID, SubField: "value", Numeric: v,
				DateEst: dateEst, Rank: rank, SourceFragment: Fragment(m[0]),
			}}, nil
		}
	}
	return nil, nil
}

var dependencyLabels = []struct {
	label string
	sub   string
}{
	{"total dependency ratio", "total"},
	{"youth dependency ratio", "youth"},
	{"elderly dependency ratio", "elderly"},
	{"potential support ratio", "potential_support_ratio"},
}

var dependencyRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(dependencyLabels))
	for i, dl := range dependencyLabels {
		res[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(dl.label) + `\s*:?\s*([\d.]+)`)
	}
	return res
}()

func extractDependencyRatios(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	content = NormalizeContent(content)
	dateEst := ExtractEstimate(content)

	for i, dl := range dependencyLabels {
		m := dependencyRes[i].FindStringSubmatch(content)
		if m == nil {
			continue
		}
		if v := ParseNumber(m[1]); v != nil {
			rows = append(rows, model.StructuredValue{
				FieldID: fieldID, SubField: dl.sub, Numeric: v,
				DateEst: dateEst, SourceFragment: Fragment(m[0]),
			})
		}
	}
	return rows, nil
}

var (
	urbanPopRe  = regexp.MustCompile(`(?i)urban population\s*:\s*([\d.]+)%`)
	urbanRateRe = regexp.MustCompile(`(?i)rate of urbanization\s*:\s*([\d.]+)%`)
)

func extractUrbanization(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	content = NormalizeContent(content)
	dateEst := ExtractEstimate(content)

	if m := urbanPopRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "urban_population", Numeric: ParseNumber(m[1]),
			Units: "%", DateEst: dateEst, SourceFragment: Fragment(m[0]),
		})
	}
	if m := urbanRateRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "rate_of_urbanization", Numeric: ParseNumber(m[1]),
			Units: "%", SourceFragment: Fragment(m[0]),
		})
	}
	return rows, nil
}

var sexRatioRe = regexp.MustCompile(
	`(?i)(at birth|under 15 years|0-14 years|15-24 years|25-54 years|55-64 years|15-64 years|65 years and over|total population)\s*:\s*([\d.]+)\s*male\(s\)/female`)

// extractSexRatio emits one ratio row per labeled age bracket.
func extractSexRatio(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	content = NormalizeContent(content)
	dateEst := ExtractEstimate(content)

	for _, m := range sexRatioRe.FindAllStringSubmatch(content, -1) {
		v := ParseNumber(m[2])
		if v == nil {
			continue
		}
		sub := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(m[1])), " ", "_")
		row := model.StructuredValue{
			FieldID: fieldID, SubField: sub, Numeric: v, Units: "male(s)/female",
			SourceFragment: Fragment(m[0]),
		}
		if sub == "total_population" {
			row.DateEst = dateEst
		}
		rows = append(rows, row)
	}
	return rows, nil
}

var (
	literacyDefRe    = regexp.MustCompile(`(?i)definition\s*:\s*(.+?)(?:\s*total population|\s*male|\s*$)`)
	literacyTotalRe  = regexp.MustCompile(`(?i)total population\s*:\s*([\d.]+)%`)
	literacyMaleRe   = regexp.MustCompile(`(?i)male\s*:\s*([\d.]+)%`)
	literacyFemaleRe = regexp.MustCompile(`(?i)female\s*:\s*([\d.]+)%`)
)

// extractLiteracy handles the definition text plus total/male/female rates.
func extractLiteracy(fieldID int64, content string) ([]model.StructuredValue, error) {
	var rows []model.StructuredValue
	rank := ExtractRank(content)
	content = NormalizeContent(content)
	dateEst := ExtractEstimate(content)

	if m := literacyDefRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "definition", Text: strings.TrimSpace(m[1]),
			SourceFragment: Fragment(m[0]),
		})
	}
	if m := literacyTotalRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "total_population", Numeric: ParseNumber(m[1]),
			Units: "%", DateEst: dateEst, Rank: rank, SourceFragment: Fragment(m[0]),
		})
	}
	if m := literacyMaleRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "male", Numeric: ParseNumber(m[1]),
			Units: "%", SourceFragment: Fragment(m[0]),
		})
	}
	if m := literacyFemaleRe.FindStringSubmatch(content); m != nil {
		rows = append(rows, model.StructuredValue{
			FieldID: fieldID, SubField: "female", Numeric: ParseNumber(m[1]),
			Units: "%", SourceFragment: Fragment(m[0]),
		})
	}
	return rows, nil
}
