// Command lll reduces integer lattice bases with the LLL algorithm.
//
//	lll reduce basis.yaml --output yaml
//	lll reduce --delta 0.99 --trace < basis.txt
//	lll verify reduced.yaml --delta 3/4
//
// With no file and a terminal on stdin, reduce asks for the basis
// interactively.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	appName = "lll"
	version = "v1.0.0"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	logLevel  string
	logFormat string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("lll failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:     appName,
		Short:   "Lenstra–Lenstra–Lovász lattice basis reduction",
		Version: version,
		Long: `lll reduces an integer lattice basis to a short, nearly orthogonal basis
of the same lattice using exact rational arithmetic.

Input is either text (dimension, one row per line, threshold) or YAML
({delta, max_iterations, basis}).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(rf)
		},
	}
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&rf.logFormat, "log-format", "console", "Log format (console|json)")

	root.AddCommand(newReduceCmd(), newVerifyCmd())

	return root
}

// setupLogging configures the global zerolog logger on stderr.
func setupLogging(rf *rootFlags) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(rf.logLevel))
	if err != nil {
		return fmt.Errorf("--log-level %q: %w", rf.logLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	switch rf.logFormat {
	case "console":
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	case "json":
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	default:
		return fmt.Errorf("--log-format %q: want console or json", rf.logFormat)
	}

	return nil
}
