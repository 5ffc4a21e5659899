package extract

import (
	"go.uber.org/zap"

	"github.com/worldfacts/archive-cli/internal/model"
)

// Extractor mines one field's content into structured values. Partial
// extraction is success: an extractor returns fewer sub-values when some
// sub-patterns are absent, and an empty slice when nothing matches at all.
type Extractor interface {
	Extract(fieldID int64, content string) ([]model.StructuredValue, error)
}

// Func adapts a plain function to the Extractor interface.
type Func func(fieldID int64, content string) ([]model.StructuredValue, error)

// Extract implements Extractor.
func (f Func) Extract(fieldID int64, content string) ([]model.StructuredValue, error) {
	return f(fieldID, content)
}

// Registry maps canonical field names to their specialized extractors.
type Registry struct {
	extractors map[string]Extractor
	order      []string // registration order for deterministic iteration
}

// NewRegistry creates a registry populated with every specialized extractor.
func NewRegistry() *Registry {
	r := &Registry{extractors: make(map[string]Extractor)}

	// Geography
	r.Register("Area", Func(extractArea))
	r.Register("Elevation", Func(extractElevation))
	r.Register("Geographic coordinates", Func(extractGPS))
	r.Register("Coastline", Func(extractSingleWithUnits))
	r.Register("Land use", Func(extractLandUse))
	r.Register("Maritime claims", Func(extractMaritimeClaims))

	// People and society
	r.Register("Population", Func(extractPopulation))
	r.Register("Life expectancy at birth", Func(extractLifeExpectancy))
	r.Register("Age structure", Func(extractAgeStructure))
	r.Register("Median age", Func(extractMedianAge))
	r.Register("Birth rate", Func(extractPerThousandRate))
	r.Register("Death rate", Func(extractPerThousandRate))
	r.Register("Infant mortality rate", Func(extractInfantMortality))
	r.Register("Total fertility rate", Func(extractSingleValue))
	r.Register("Dependency ratios", Func(extractDependencyRatios))
	r.Register("Urbanization", Func(extractUrbanization))
	r.Register("Sex ratio", Func(extractSexRatio))
	r.Register("Literacy", Func(extractLiteracy))

	// Economy: multi-year dollar series
	r.Register("Real GDP (purchasing power parity)", Func(extractDollarSeries))
	r.Register("GDP (purchasing power parity)", Func(extractDollarSeries))
	r.Register("Real GDP per capita", Func(extractDollarSeries))
	r.Register("GDP - per capita (PPP)", Func(extractDollarSeries))
	r.Register("GDP (official exchange rate)", Func(extractDollarSeries))
	r.Register("Current account balance", Func(extractDollarSeries))
	r.Register("Reserves of foreign exchange and gold", Func(extractDollarSeries))
	r.Register("Debt - external", Func(extractDollarSeries))

	// Economy: multi-year percentage series
	r.Register("Unemployment rate", Func(extractPercentSeries))
	r.Register("Inflation rate (consumer prices)", Func(extractPercentSeries))
	r.Register("Real GDP growth rate", Func(extractPercentSeries))
	r.Register("GDP - real growth rate", Func(extractPercentSeries))
	r.Register("Population growth rate", Func(extractPercentSeries))
	r.Register("Public debt", Func(extractPercentSeries))
	r.Register("Industrial production growth rate", Func(extractPercentSeries))

	// Economy: other
	r.Register("Military expenditures", Func(extractPctOfGDPSeries))
	r.Register("Exports", Func(extractTrade))
	r.Register("Imports", Func(extractTrade))
	r.Register("Budget", Func(extractBudget))

	// Energy
	r.Register("Electricity", Func(extractElectricity))

	return r
}

// Register adds an extractor for a canonical name.
func (r *Registry) Register(canonical string, e Extractor) {
	if _, ok := r.extractors[canonical]; !ok {
		r.order = append(r.order, canonical)
	}
	r.extractors[canonical] = e
}

// Lookup returns the extractor registered for a canonical name.
func (r *Registry) Lookup(canonical string) (Extractor, bool) {
	e, ok := r.extractors[canonical]
	return e, ok
}

// Names returns all registered canonical names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Dispatcher routes a field's content to its specialized extractor, or to
// the generic fallback when the canonical name is unregistered.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a Dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch extracts structured values for one field. An extractor failure
// never aborts: it degrades to a single opaque text row so no content is
// dropped without a record. The second return reports whether the field was
// degraded.
func (d *Dispatcher) Dispatch(fieldID int64, canonical, content string) ([]model.StructuredValue, bool) {
	extractor, ok := d.registry.Lookup(canonical)
	if !ok {
		extractor = Func(ExtractGeneric)
	}

	rows, err := extractor.Extract(fieldID, content)
	if err != nil {
		zap.L().Warn("extract: extractor failed, storing degraded row",
			zap.Int64("field_id", fieldID),
			zap.String("canonical", canonical),
			zap.Error(err),
		)
		return []model.StructuredValue{{
			FieldID:  fieldID,
			SubField: "value",
			Text:     Fragment(content),
		}}, true
	}
	return rows, false
}
