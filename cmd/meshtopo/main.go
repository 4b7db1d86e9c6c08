package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/meshtopo/internal/config"
	"github.com/philipparndt/meshtopo/version"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	verbose      bool
	outputFormat string

	cfg    config.Config
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "meshtopo",
	Short: "Inspect and repair the topology of polygon meshes",
	Long: `meshtopo analyzes indexed face sets stored as YAML or JSON documents.
It classifies vertices and edges, finds connected components, orients faces
and cuts meshes into manifolds.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/meshtopo/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "Report format: text, yaml or json")
}

// setup loads the config file and lets flags override it
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = outputFormat
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.LogLevel()
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
