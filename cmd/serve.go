package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/passpredict/internal/logging"
	"github.com/abhisek/passpredict/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the predictor as a web page",
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

		// A load failure is served as a blocking error page.
		svc, loadErr := loadService(cfg.ModelPath, log)
		srv, err := web.NewServer(svc, loadErr, log)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.ListenAndServe(ctx, cfg.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides PASSPREDICT_ADDR env var)")
}
