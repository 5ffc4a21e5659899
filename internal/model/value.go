package model

import "github.com/rotisserie/eris"

// MaxFragmentLen bounds provenance storage: source fragments and degraded
// text payloads are truncated to this many bytes everywhere in the pipeline.
const MaxFragmentLen = 4000

// StructuredValue is one typed sub-value mined from a field's content.
// At least one of Numeric/Text is populated; SubField is unique within the
// values produced for a single FieldID.
type StructuredValue struct {
	FieldID        int64    `json:"field_id"`
	SubField       string   `json:"sub_field"`
	Numeric        *float64 `json:"numeric_val,omitempty"`
	Units          string   `json:"units,omitempty"`
	Text           string   `json:"text_val,omitempty"`
	DateEst        string   `json:"date_est,omitempty"`
	Rank           *int     `json:"rank,omitempty"`
	SourceFragment string   `json:"source_fragment,omitempty"`
}

// Validate checks the StructuredValue invariants.
func (v *StructuredValue) Validate() error {
	if v.SubField == "" {
		return eris.Errorf("value: field %d has empty sub_field", v.FieldID)
	}
	if v.Numeric == nil && v.Text == "" {
		return eris.Errorf("value: field %d sub_field %q has no payload", v.FieldID, v.SubField)
	}
	return nil
}

// Float returns a pointer to v, for populating StructuredValue.Numeric.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for populating StructuredValue.Rank.
func Int(v int) *int { return &v }
