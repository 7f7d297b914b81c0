package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/passpredict/internal/classifier"
	"github.com/abhisek/passpredict/internal/encoder"
	"github.com/abhisek/passpredict/internal/feature"
	"github.com/abhisek/passpredict/internal/profile"
)

var errColumnsDiffer = errors.New("model manifest does not match the encoder")

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Print the encoded feature columns in order",
	Long:  "Print the encoder's column layout, one per line. With --check the configured model's feature manifest is compared against it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := encoder.Default()
		w := cmd.OutOrStdout()

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			fmt.Fprintln(w, strings.Join(enc.Columns(), "\n"))
			return nil
		}

		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		model, err := classifier.Load(cfg.ModelPath)
		if err != nil {
			return err
		}
		return checkColumns(w, enc, model.ExpectedColumns())
	},
}

func init() {
	columnsCmd.Flags().Bool("check", false, "Compare against the model's feature manifest")
}

// checkColumns reindexes a default profile onto manifest and reports any
// column the two sides disagree on.
func checkColumns(w io.Writer, enc *encoder.Encoder, manifest []string) error {
	_, err := enc.EncodeFor(profile.New(""), manifest)
	var mm *feature.MismatchError
	switch {
	case err == nil:
		fmt.Fprintf(w, "ok: %d columns match\n", len(manifest))
		return nil
	case errors.As(err, &mm):
		for _, c := range mm.Missing {
			fmt.Fprintf(w, "missing from encoder: %s\n", c)
		}
		for _, c := range mm.Unexpected {
			fmt.Fprintf(w, "not in model manifest: %s\n", c)
		}
		return errColumnsDiffer
	default:
		return err
	}
}
