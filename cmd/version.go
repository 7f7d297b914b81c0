package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/abhisek/passpredict/internal/classifier"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version and the model format it reads",
	Run: func(cmd *cobra.Command, args []string) {
		writeVersion(cmd.OutOrStdout(), buildVersion())
	},
}

// buildVersion prefers the ldflags value and falls back to the module
// version recorded by `go install`.
func buildVersion() string {
	if version != "(devel)" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return version
}

func writeVersion(w io.Writer, v string) {
	fmt.Fprintln(w, "passpredict", v)
	fmt.Fprintf(w, "model format %s.x\n", classifier.SupportedMajor)
}
