package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/passpredict/internal/logging"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict for a profile file and print the report",
	Example: `  passpredict predict --input student.yaml
  passpredict predict --input student.json --out reports/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		input, _ := cmd.Flags().GetString("input")
		p, err := readProfile(input)
		if err != nil {
			return err
		}

		svc, err := loadService(cfg.ModelPath, log)
		if err != nil {
			return fmt.Errorf("load model: %w", err)
		}

		outcome, err := svc.Evaluate(p)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			_, err := fmt.Fprint(cmd.OutOrStdout(), outcome.Report.Content)
			return err
		}
		path := filepath.Join(out, outcome.Report.FileName)
		if err := os.WriteFile(path, []byte(outcome.Report.Content), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.Info("report saved", zap.String("path", path), zap.String("request_id", outcome.RequestID))
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	predictCmd.Flags().String("input", "", "YAML or JSON profile (required)")
	predictCmd.Flags().String("out", "", "Write <name>_report.txt into this directory instead of stdout")
	_ = predictCmd.MarkFlagRequired("input")
}
