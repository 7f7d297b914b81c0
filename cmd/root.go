package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/passpredict/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "passpredict",
	Short: "Student pass/fail predictor",
	Long:  "passpredict collects a student's profile, runs it through a pre-trained classifier and reports the probability of passing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file (overrides PASSPREDICT_CONFIG env var)")
	pf.String("model", "", "Path to the classifier artifact (overrides PASSPREDICT_MODEL env var)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-format", "", "Log format: console, json")
	pf.String("log-file", "", "Write logs to this file")

	rootCmd.Flags().String("report-dir", "", "Directory where saved reports are written")
	rootCmd.Flags().String("input", "", "Pre-fill the form from a YAML or JSON profile")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig layers defaults, the config file, PASSPREDICT_* variables
// and finally any flags the user set.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.PathFromEnv()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	override := func(name string, dst *string) {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
	override("model", &cfg.ModelPath)
	override("log-level", &cfg.Log.Level)
	override("log-format", &cfg.Log.Format)
	override("log-file", &cfg.Log.File)
	override("report-dir", &cfg.ReportDir)
	override("addr", &cfg.Addr)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
