package main

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/worldfacts/archive-cli/internal/model"
)

var importJSONLPath string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the field corpus from a JSONL dump",
	Long:  "Replaces the stored source corpus with field records read from a JSONL file, one {id, name, content, year} object per line.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		fields, err := readFieldsJSONL(importJSONLPath)
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.ImportFields(ctx, fields)
		if err != nil {
			return eris.Wrap(err, "import fields")
		}
		zap.L().Info("import complete",
			zap.Int64("fields", n),
			zap.String("jsonl", importJSONLPath),
		)
		return nil
	},
}

func readFieldsJSONL(path string) ([]model.FieldRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var fields []model.FieldRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec model.FieldRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, eris.Wrapf(err, "parse %s line %d", path, line)
		}
		fields = append(fields, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrapf(err, "read %s", path)
	}
	if len(fields) == 0 {
		return nil, eris.Errorf("%s contains no field records", path)
	}
	return fields, nil
}

func init() {
	importCmd.Flags().StringVar(&importJSONLPath, "jsonl", "", "path to JSONL corpus dump (required)")
	_ = importCmd.MarkFlagRequired("jsonl")
	rootCmd.AddCommand(importCmd)
}
