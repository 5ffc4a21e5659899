package model

// MappingType identifies which canonicalization rule produced a mapping.
type MappingType string

const (
	MappingIdentity        MappingType = "identity"
	MappingDashFormat      MappingType = "dash_format"
	MappingRename          MappingType = "rename"
	MappingConsolidation   MappingType = "consolidation"
	MappingCountrySpecific MappingType = "country_specific"
	MappingNoise           MappingType = "noise"
	MappingManual          MappingType = "manual"
)

// Mapping resolves one historical field-name spelling to its canonical name.
// There is exactly one Mapping per distinct original name, and it is a pure
// function of (OriginalName, FirstYear, LastYear, UseCount).
type Mapping struct {
	OriginalName   string      `json:"original_name"`
	CanonicalName  string      `json:"canonical_name"`
	Type           MappingType `json:"mapping_type"`
	ConsolidatedTo string      `json:"consolidated_to,omitempty"`
	IsNoise        bool        `json:"is_noise"`
	FirstYear      int         `json:"first_year"`
	LastYear       int         `json:"last_year"`
	UseCount       int         `json:"use_count"`
	Notes          string      `json:"notes,omitempty"`
}
