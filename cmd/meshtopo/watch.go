package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/philipparndt/meshtopo/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [files...]",
	Short: "Print mesh information whenever a file changes",
	Long: `Watch mesh documents and print their topology report after each change.
Rapid successive writes are collapsed using the debounce interval from the
config file.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	debounce, err := cfg.DebounceDuration()
	exitOnError("reading config", err)

	w, err := watcher.New(debounce, logger)
	exitOnError("starting watcher", err)
	defer w.Close()

	report := reporter(os.Stdout, cfg.Output.Geometry)
	exitOnError("watching files", w.Watch(args, report))
	for _, path := range args {
		report(path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching for changes", "files", len(args), "debounce", debounce)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		exitOnError("watching files", err)
	}
}

// reporter prints the report of a changed file. Debounce timers of
// different files fire concurrently, so reports are written one at a time.
func reporter(w io.Writer, withGeometry bool) watcher.Handler {
	var mu sync.Mutex
	return func(path string) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Fprintf(w, "==> %s\n", path)
		if err := printInfo(w, path, withGeometry); err != nil {
			logger.Error("failed to analyze mesh", "path", path, "error", err)
		}
		fmt.Fprintln(w)
	}
}
