// Package review prepares unmapped field names for human review and applies
// the reviewer's decisions back to the mapping table. Each manual mapping is
// paired with its closest modern vocabulary names so the reviewer can confirm
// a near-miss spelling with one edit.
package review

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/worldfacts/archive-cli/internal/model"
)

// maxSuggestions caps the candidates listed per unmapped name.
const maxSuggestions = 3

// minSimilarity is the Jaro-Winkler floor below which a candidate is noise
// rather than a plausible rename.
const minSimilarity = 0.80

// Suggestion is one candidate canonical name for an unmapped spelling.
type Suggestion struct {
	CanonicalName string  `yaml:"canonical_name"`
	Similarity    float64 `yaml:"similarity"`
}

// Entry is one unmapped name awaiting a reviewer's decision. The reviewer
// fills in AssignTo (or sets MarkNoise) and feeds the file back through
// ApplyOverrides.
type Entry struct {
	OriginalName string       `yaml:"original_name"`
	UseCount     int          `yaml:"use_count"`
	FirstYear    int          `yaml:"first_year"`
	LastYear     int          `yaml:"last_year"`
	Suggestions  []Suggestion `yaml:"suggestions,omitempty"`
	AssignTo     string       `yaml:"assign_to"`
	MarkNoise    bool         `yaml:"mark_noise"`
}

// BuildEntries collects every manual mapping with fuzzy-matched canonical
// candidates, most heavily used names first.
func BuildEntries(mappings []model.Mapping, modernNames []string) []Entry {
	var entries []Entry
	for _, m := range mappings {
		if m.Type != model.MappingManual {
			continue
		}
		entries = append(entries, Entry{
			OriginalName: m.OriginalName,
			UseCount:     m.UseCount,
			FirstYear:    m.FirstYear,
			LastYear:     m.LastYear,
			Suggestions:  suggest(m.OriginalName, modernNames),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].UseCount > entries[j].UseCount
	})
	return entries
}

// suggest ranks modern names by Jaro-Winkler similarity to name.
func suggest(name string, modernNames []string) []Suggestion {
	var candidates []Suggestion
	lower := strings.ToLower(name)
	for _, modern := range modernNames {
		sim := matchr.JaroWinkler(lower, strings.ToLower(modern), false)
		if sim >= minSimilarity {
			candidates = append(candidates, Suggestion{CanonicalName: modern, Similarity: sim})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Similarity > candidates[j].Similarity
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	return candidates
}

// MarshalEntries renders review entries as YAML for editing.
func MarshalEntries(entries []Entry) ([]byte, error) {
	out, err := yaml.Marshal(entries)
	return out, eris.Wrap(err, "review: marshal entries")
}

// ApplyOverrides parses an edited review file and converts the decided
// entries into mapping overrides. Undecided entries (no AssignTo, no
// MarkNoise) are skipped.
func ApplyOverrides(data []byte) ([]model.Mapping, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, eris.Wrap(err, "review: parse overrides")
	}

	var overrides []model.Mapping
	for _, e := range entries {
		if e.OriginalName == "" {
			return nil, eris.New("review: entry missing original_name")
		}
		switch {
		case e.MarkNoise:
			overrides = append(overrides, model.Mapping{
				OriginalName:  e.OriginalName,
				CanonicalName: e.OriginalName,
				Type:          model.MappingNoise,
				IsNoise:       true,
				FirstYear:     e.FirstYear,
				LastYear:      e.LastYear,
				UseCount:      e.UseCount,
				Notes:         "manual review",
			})
		case e.AssignTo != "":
			overrides = append(overrides, model.Mapping{
				OriginalName:  e.OriginalName,
				CanonicalName: e.AssignTo,
				Type:          model.MappingManual,
				FirstYear:     e.FirstYear,
				LastYear:      e.LastYear,
				UseCount:      e.UseCount,
				Notes:         "manual review",
			})
		}
	}
	return overrides, nil
}
