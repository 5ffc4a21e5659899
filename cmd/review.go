package main

import (
	"os"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/worldfacts/archive-cli/internal/pipeline"
	"github.com/worldfacts/archive-cli/internal/review"
)

var (
	reviewExportPath string
	reviewApplyPath  string
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Export unmapped names for review and apply decisions",
}

var reviewExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write unmapped field names to a YAML worksheet",
	Long: "Collects every name the cascade left unmapped, pairs each with its closest " +
		"modern vocabulary names, and writes a YAML worksheet for the reviewer to fill in.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		mappings, err := st.LoadMappings(ctx)
		if err != nil {
			return err
		}
		if len(mappings) == 0 {
			return eris.New("no mappings in store; run mapnames or extract first")
		}
		fields, err := st.LoadFields(ctx)
		if err != nil {
			return err
		}
		modernSet := pipeline.ModernVocabulary(fields, cfg.Pipeline.ModernSpan)
		modern := make([]string, 0, len(modernSet))
		for name := range modernSet {
			modern = append(modern, name)
		}
		sort.Strings(modern)

		entries := review.BuildEntries(mappings, modern)
		out, err := review.MarshalEntries(entries)
		if err != nil {
			return err
		}
		if reviewExportPath != "" {
			if err := os.WriteFile(reviewExportPath, out, 0o644); err != nil {
				return eris.Wrapf(err, "write worksheet %s", reviewExportPath)
			}
			zap.L().Info("worksheet written",
				zap.String("path", reviewExportPath),
				zap.Int("entries", len(entries)),
			)
		} else {
			cmd.Print(string(out))
		}
		return nil
	},
}

var reviewApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a reviewed worksheet back to the mapping table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		data, err := os.ReadFile(reviewApplyPath)
		if err != nil {
			return eris.Wrapf(err, "read worksheet %s", reviewApplyPath)
		}
		overrides, err := review.ApplyOverrides(data)
		if err != nil {
			return err
		}
		if len(overrides) == 0 {
			zap.L().Info("worksheet has no decided entries; nothing to apply")
			return nil
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.UpsertMappings(ctx, overrides)
		if err != nil {
			return eris.Wrap(err, "upsert mappings")
		}
		zap.L().Info("overrides applied", zap.Int64("mappings", n))
		return nil
	},
}

func init() {
	reviewExportCmd.Flags().StringVar(&reviewExportPath, "out", "", "write the worksheet to a file instead of stdout")
	reviewApplyCmd.Flags().StringVar(&reviewApplyPath, "file", "", "path to the reviewed worksheet (required)")
	_ = reviewApplyCmd.MarkFlagRequired("file")
	reviewCmd.AddCommand(reviewExportCmd, reviewApplyCmd)
	rootCmd.AddCommand(reviewCmd)
}
