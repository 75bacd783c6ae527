// Command venncheck runs Venn diagram example notebooks and verifies YAML
// diagram fixtures.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/venn"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "venncheck",
		Short: "Smoke-test Venn diagram notebooks and fixtures",
		Long: `venncheck runs the code cells of example notebooks in a shared
interpreter scope and verifies diagram fixtures against their expected
sample points.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			venn.SetLogger(newLogger(level, cmd.ErrOrStderr()))
		},
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info or warn")

	rootCmd.AddCommand(
		newVersionCmd(),
		newNotebookCmd(),
		newVerifyCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "venncheck version %s\n", version)
		},
	}
}

// parseLevel maps a level name to a slog.Level. Unknown values default to info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func newLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}
