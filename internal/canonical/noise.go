package canonical

import (
	"regexp"
	"strings"

	"github.com/worldfacts/archive-cli/internal/model"
)

// Thresholds are the empirically tuned cutoffs for the noise and
// government-body heuristics. The defaults reproduce the original manual
// review of the corpus; they are configuration, not rules to be improved.
type Thresholds struct {
	LegacyLastYear     int `mapstructure:"legacy_last_year"`     // era boundary for legacy-only heuristics
	LegacyFirstYear    int `mapstructure:"legacy_first_year"`    // lowercase-fragment era boundary
	GovBodyMaxUseCount int `mapstructure:"gov_body_max_uses"`    // rule 5 cutoff
	LowUseCount        int `mapstructure:"low_use_count"`        // generic low-usage cutoff
	VeryLowUseCount    int `mapstructure:"very_low_use_count"`   // long-fragment cutoff
	TinyUseCount       int `mapstructure:"tiny_use_count"`       // country-code / catch-all cutoff
}

// DefaultThresholds returns the hand-tuned values from the original corpus
// review.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LegacyLastYear:     2001,
		LegacyFirstYear:    1998,
		GovBodyMaxUseCount: 100,
		LowUseCount:        10,
		VeryLowUseCount:    3,
		TinyUseCount:       5,
	}
}

// noisePhrases are substrings that only ever occur in sentence fragments the
// legacy HTML parsers emitted as field names.
var noisePhrases = []string{
	"consists mainly of", "includes the following", "seat distribution",
	"coalition of", "made up of", "as follows", "countries have figures",
	"underdeveloped countries", "undeveloped countries", "search for",
	"mailing address", "were held at", "mutually supportive",
	"types of finished intelligence", "may be categorized",
	"pending acceptable definition", "one additional caution",
	"real output has remained", "party ruling coalition",
	"anti-market and", "union, two german", "factbook that may",
	"acceptable definition of the boundaries",
	"comments and queries are welcome",
}

// subFieldLabels are 1994-era sub-field labels that surfaced as standalone
// field names because of how that edition's markup was parsed.
var subFieldLabels = map[string]struct{}{
	"adjective": {}, "arable land": {}, "by occupation": {}, "cabinet": {},
	"capacity": {}, "chancery": {}, "chief of mission": {}, "chief of state": {},
	"chief of state and head of government": {},
	"commodities": {}, "consulate(s)": {}, "consulate(s) general": {},
	"consumption per capita": {}, "conventional long form": {},
	"conventional short form": {}, "donor": {}, "eastern": {}, "embassy": {},
	"expenditures": {}, "female": {}, "forest and woodland": {}, "former": {},
	"international agreements": {}, "local long form": {}, "local short form": {},
	"male": {}, "meadows and pastures": {}, "noun": {}, "other": {}, "partners": {},
	"paved": {}, "permanent crops": {}, "production": {}, "recipient": {},
	"revenues": {}, "total": {}, "total population": {}, "unpaved": {},
	"usable": {}, "western": {},
	"south": {}, "southeast": {}, "southwest": {}, "north": {}, "northeast": {},
	"northwest": {},
	"head of government": {}, "election results": {}, "elections": {},
	"water area": {}, "branch office": {}, "undifferentiated": {},
	"tatal population": {}, "western-donor": {}, "business organizations": {},
	"supreme leader and functional chief of state": {},
}

// partyKeywords flag 1990s political party/faction name fragments.
var partyKeywords = []string{
	"parties", "Bloc", "Rightist", "Leftist", "Populist",
	"Resistance forces", "Ruling coalition", "umbrella group",
	"Africans", "People's Army",
}

var articleRe = regexp.MustCompile(`^Articles? \d`)

// isNoise identifies parser artifacts and text fragments. Any matching
// heuristic flags the name.
func (r *Resolver) isNoise(name string, stats model.NameStats) bool {
	t := r.thresholds

	// Single or two-letter entries.
	if len(name) <= 2 && isAlpha(name) {
		return true
	}
	// Abbreviation/glossary entries like avdp., c.i.f., est.
	if strings.HasSuffix(name, ".") && len(name) <= 6 {
		return true
	}
	// All-caps country codes appearing as field names (UAE, UK, US, ...).
	if name == strings.ToUpper(name) && name != strings.ToLower(name) &&
		len(name) <= 4 && stats.UseCount <= t.TinyUseCount {
		return true
	}
	// Starts with lowercase -- almost certainly a fragment.
	if startsLower(name) && stats.UseCount <= t.LowUseCount {
		return true
	}
	// Very long descriptive fragments.
	if len(name) > 80 && stats.UseCount <= t.VeryLowUseCount {
		return true
	}
	lower := strings.ToLower(name)
	for _, p := range noisePhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	// Runway sub-fields (parser artifacts from 1994).
	if strings.HasPrefix(name, "with run") || strings.HasPrefix(name, "with permanent") {
		return true
	}
	// Article sub-fields from Antarctic Treaty parsing.
	if articleRe.MatchString(name) {
		return true
	}
	// Geographic fragments containing commas (e.g. province lists).
	if strings.Contains(name, ",") && stats.UseCount <= t.VeryLowUseCount && len(name) > 40 {
		return true
	}
	// 1994 sub-field labels.
	if _, ok := subFieldLabels[name]; ok {
		return true
	}
	// Political party/faction names from the 1990s.
	if stats.LastYear <= t.LegacyLastYear && stats.UseCount <= t.LowUseCount {
		for _, kw := range partyKeywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return true
			}
		}
	}
	// Lowercase field names from 1994 regardless of count (sub-field fragments).
	if startsLower(name) && stats.FirstYear <= t.LegacyFirstYear {
		return true
	}
	// Catch-all for very small entries ending before the era boundary.
	if stats.UseCount <= t.TinyUseCount && stats.LastYear <= t.LegacyLastYear && len(name) < 40 {
		return true
	}
	// Specific noise patterns.
	if strings.HasPrefix(name, "US--") || strings.HasPrefix(name, "US as ") {
		return true
	}
	if strings.Contains(name, "includes") && stats.UseCount <= t.TinyUseCount {
		return true
	}
	if strings.HasSuffix(name, ")") && stats.UseCount <= t.VeryLowUseCount &&
		stats.LastYear <= t.LegacyLastYear {
		return true
	}
	return false
}

// isGovBody detects 1990s country-specific government body field names.
func (r *Resolver) isGovBody(name string, stats model.NameStats) bool {
	if stats.LastYear > r.thresholds.LegacyLastYear {
		return false
	}
	if stats.UseCount > r.thresholds.GovBodyMaxUseCount {
		return false
	}
	for _, kw := range govBodyKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !('a' <= c && c <= 'z') && !('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

func startsLower(s string) bool {
	return s != "" && s[0] >= 'a' && s[0] <= 'z'
}
