// SPDX-License-Identifier: Unlicense OR MIT

// Command alertview renders and measures alert dialog layouts
// described in TOML files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var verbose bool
	c := &cli{logger: newLogger(os.Stderr, log.InfoLevel)}

	root := &cobra.Command{
		Use:          "alertview",
		Short:        "Render and measure alert dialog layouts",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.logger.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.measureCommand())

	return root.ExecuteContext(ctx)
}

// cli holds shared state for all commands.
type cli struct {
	logger *log.Logger
}

// newLogger creates a logger with "HH:MM:SS.ms" timestamps writing
// to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
