// Package extract mines a field's free-text content into typed, unit-aware
// structured values. Each canonical field with a known textual shape has a
// specialized extractor; everything else routes through the generic fallback.
// Extractors are pure functions with no shared state.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/worldfacts/archive-cli/internal/model"
)

// ParseNumber parses a number string like "7,741,220" or "83.5" into a
// float64. Returns nil when the text is not numeric.
func ParseNumber(s string) *float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ScaleMagnitude multiplies v by the named magnitude suffix
// (thousand/million/billion/trillion). Unknown or empty suffixes are a no-op.
func ScaleMagnitude(v float64, suffix string) float64 {
	switch strings.ToLower(strings.TrimSpace(suffix)) {
	case "thousand":
		return v * 1e3
	case "million":
		return v * 1e6
	case "billion":
		return v * 1e9
	case "trillion":
		return v * 1e12
	default:
		return v
	}
}

var (
	estYearRe   = regexp.MustCompile(`\((\d{4}\s*est\.?)\)`)
	estFiscalRe = regexp.MustCompile(`\((FY\d{2,4}/?(?:\d{2})?)\)`)
	estBareRe   = regexp.MustCompile(`\((\d{4})\)`)
)

// ExtractEstimate extracts an estimate annotation like "(2024 est.)",
// "(FY93)" or a bare "(1990)" from s. First match wins.
func ExtractEstimate(s string) string {
	if m := estYearRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := estFiscalRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if m := estBareRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}

var rankRe = regexp.MustCompile(`country comparison to the world:\s*(\d+)`)

// ExtractRank extracts the world-comparison rank annotation, or nil.
func ExtractRank(s string) *int {
	m := rankRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// Fragment truncates a matched substring to the shared provenance cap.
func Fragment(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > model.MaxFragmentLen {
		return s[:model.MaxFragmentLen]
	}
	return s
}

var rankAnnotationRe = regexp.MustCompile(`\s*\|?\s*country comparison to the world:\s*\d+`)

// NormalizeContent strips the rank annotation (captured separately by
// ExtractRank) and surrounding whitespace so value patterns see clean text.
func NormalizeContent(content string) string {
	return strings.TrimSpace(rankAnnotationRe.ReplaceAllString(content, ""))
}
