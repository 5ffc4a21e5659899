package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/worldfacts/archive-cli/internal/model"
	"github.com/worldfacts/archive-cli/internal/pipeline"
)

var (
	extractJSONLPath  string
	extractReportPath string
	extractDryRun     bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run the full canonicalize-and-extract pipeline",
	Long: "Resolves every field-name spelling to its canonical form, extracts structured " +
		"values from every field's content, and replaces the mapping and value tables with " +
		"the result. Reads the corpus from the store, or from a JSONL file with --jsonl.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		var fields []model.FieldRecord
		if extractJSONLPath != "" {
			fields, err = readFieldsJSONL(extractJSONLPath)
		} else {
			fields, err = st.LoadFields(ctx)
		}
		if err != nil {
			return err
		}

		p := pipeline.New(pipeline.Options{
			Workers:    cfg.Pipeline.Workers,
			ModernSpan: cfg.Pipeline.ModernSpan,
			Thresholds: cfg.Mapping.Thresholds(),
		})
		result, err := p.Run(ctx, fields)
		if err != nil {
			return err
		}

		if !extractDryRun {
			pipeline.SortValues(result.Values)
			if _, err := st.SaveMappings(ctx, result.Mappings); err != nil {
				return eris.Wrap(err, "save mappings")
			}
			n, err := st.ReplaceValues(ctx, result.Values)
			if err != nil {
				return eris.Wrap(err, "replace values")
			}
			zap.L().Info("results stored",
				zap.Int("mappings", len(result.Mappings)),
				zap.Int64("values", n),
			)
		}

		report := pipeline.FormatReport(result)
		if extractReportPath != "" {
			if err := os.WriteFile(extractReportPath, []byte(report), 0o644); err != nil {
				return eris.Wrapf(err, "write report %s", extractReportPath)
			}
			zap.L().Info("report written", zap.String("path", extractReportPath))
		} else {
			cmd.Print(report)
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractJSONLPath, "jsonl", "", "read the corpus from a JSONL file instead of the store")
	extractCmd.Flags().StringVar(&extractReportPath, "report", "", "write the run report to a file instead of stdout")
	extractCmd.Flags().BoolVar(&extractDryRun, "dry-run", false, "run the pipeline and report without writing to the store")
	rootCmd.AddCommand(extractCmd)
}
