package pipeline

import (
	"context"
	"sort"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/worldfacts/archive-cli/internal/canonical"
	"github.com/worldfacts/archive-cli/internal/extract"
	"github.com/worldfacts/archive-cli/internal/model"
)

// Options tunes a pipeline run.
type Options struct {
	// Workers bounds concurrent extraction goroutines. Zero or negative
	// means single-threaded.
	Workers int
	// ModernSpan is how many recent edition years define the modern
	// vocabulary for the identity rule.
	ModernSpan int
	// Thresholds for the canonicalizer's heuristic rules.
	Thresholds canonical.Thresholds
}

// DefaultOptions mirror the calibrated defaults of the archive corpus.
func DefaultOptions() Options {
	return Options{
		Workers:    4,
		ModernSpan: 2,
		Thresholds: canonical.DefaultThresholds(),
	}
}

// Result is a completed run: the full mapping table plus every structured
// value extracted, in field order.
type Result struct {
	Mappings []model.Mapping
	Values   []model.StructuredValue
	Stats    RunStats
}

// RunStats summarizes a run for the report.
type RunStats struct {
	NamesResolved   int
	FieldsProcessed int
	FieldsSkipped   int
	FieldsDegraded  int
	ValuesEmitted   int
	ByMappingType   map[model.MappingType]int
}

// Pipeline wires the canonicalizer and the extractor registry.
type Pipeline struct {
	opts     Options
	registry *extract.Registry
}

// New creates a Pipeline with the given options.
func New(opts Options) *Pipeline {
	return &Pipeline{opts: opts, registry: extract.NewRegistry()}
}

// Run canonicalizes every distinct field name in the corpus, then extracts
// structured values from every non-empty field. Noise names keep no entry in
// the canonical lookup, so their fields route through the generic fallback
// under their original spelling; nothing is dropped.
func (p *Pipeline) Run(ctx context.Context, fields []model.FieldRecord) (*Result, error) {
	if len(fields) == 0 {
		return nil, eris.New("pipeline: no field records to process")
	}
	log := zap.L().With(zap.Int("fields", len(fields)))
	log.Info("pipeline: starting run")

	stats := AggregateStats(fields)
	modern := ModernVocabulary(fields, p.opts.ModernSpan)
	resolver := canonical.NewResolver(modern, p.opts.Thresholds)
	mappings := resolver.BuildMappings(stats)

	canonicalByName := make(map[string]string, len(mappings))
	byType := make(map[model.MappingType]int, 8)
	for _, m := range mappings {
		byType[m.Type]++
		if !m.IsNoise {
			canonicalByName[m.OriginalName] = m.CanonicalName
		}
	}
	log.Info("pipeline: names resolved",
		zap.Int("distinct", len(mappings)),
		zap.Int("modern_vocabulary", len(modern)),
	)

	dispatcher := extract.NewDispatcher(p.registry)
	perField := make([][]model.StructuredValue, len(fields))

	g, ctx := errgroup.WithContext(ctx)
	workers := p.opts.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	skipped := 0
	var degraded atomic.Int64
	for i, f := range fields {
		if f.Content == "" {
			skipped++
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return eris.Wrap(err, "pipeline: run canceled")
			}
			name := f.Name
			if canon, ok := canonicalByName[f.Name]; ok {
				name = canon
			}
			rows, wasDegraded := dispatcher.Dispatch(f.ID, name, f.Content)
			if wasDegraded {
				degraded.Add(1)
			}
			perField[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Per-field slices are indexed by input position, so the flattened
	// output is deterministic regardless of goroutine scheduling.
	var values []model.StructuredValue
	for _, rows := range perField {
		values = append(values, rows...)
	}

	result := &Result{
		Mappings: mappings,
		Values:   values,
		Stats: RunStats{
			NamesResolved:   len(mappings),
			FieldsProcessed: len(fields) - skipped,
			FieldsSkipped:   skipped,
			FieldsDegraded:  int(degraded.Load()),
			ValuesEmitted:   len(values),
			ByMappingType:   byType,
		},
	}
	log.Info("pipeline: run complete",
		zap.Int("fields_processed", result.Stats.FieldsProcessed),
		zap.Int("fields_degraded", result.Stats.FieldsDegraded),
		zap.Int("values_emitted", result.Stats.ValuesEmitted),
	)
	return result, nil
}

// SortValues orders values by field ID, keeping each field's sub-values in
// their extraction order. Used before bulk insert for stable output.
func SortValues(values []model.StructuredValue) {
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].FieldID < values[j].FieldID
	})
}
