package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"diagkit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "diagkit",
	Short: "Diagnostic trace filtering and formatting toolkit",
	Long:  `diagkit parses, filters and reformats call-stack traces and hosts the toolchain's diagnostic runtime configuration`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("config", "", "path to diagkit.toml (default: search upward from the working directory)")

	rootCmd.PersistentPreRunE = setupDiagnostics

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the --color tri-state against the terminal.
func colorEnabled(cmd *cobra.Command) bool {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stderr)
	}
}
