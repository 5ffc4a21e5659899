package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/worldfacts/archive-cli/internal/canonical"
	"github.com/worldfacts/archive-cli/internal/pipeline"
)

var mapnamesCmd = &cobra.Command{
	Use:   "mapnames",
	Short: "Rebuild the field-name mapping table",
	Long:  "Aggregates per-name usage statistics from the stored corpus, runs the canonicalization cascade, and replaces the mapping table with the result.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		fields, err := st.LoadFields(ctx)
		if err != nil {
			return err
		}
		if len(fields) == 0 {
			return eris.New("no fields in store; run import first")
		}

		stats := pipeline.AggregateStats(fields)
		modern := pipeline.ModernVocabulary(fields, cfg.Pipeline.ModernSpan)
		resolver := canonical.NewResolver(modern, cfg.Mapping.Thresholds())
		mappings := resolver.BuildMappings(stats)

		n, err := st.SaveMappings(ctx, mappings)
		if err != nil {
			return eris.Wrap(err, "save mappings")
		}
		zap.L().Info("mapping table rebuilt",
			zap.Int64("mappings", n),
			zap.Int("modern_vocabulary", len(modern)),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mapnamesCmd)
}
