package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/passpredict/internal/app"
	"github.com/abhisek/passpredict/internal/logging"
	"github.com/abhisek/passpredict/internal/profile"
)

// runApp loads the model and launches the TUI. A model that fails to load
// does not abort: the TUI shows a blocking error screen instead.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.NewForTUI(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := app.Options{
		ReportDir: cfg.ReportDir,
		Logger:    log,
	}
	opts.Service, opts.LoadErr = loadService(cfg.ModelPath, log)

	if input, _ := cmd.Flags().GetString("input"); input != "" {
		p, err := readProfile(input)
		if err != nil {
			return err
		}
		opts.Initial = p
	}

	return app.Run(opts)
}

func readProfile(path string) (*profile.StudentProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	p, err := profile.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
