package cmd

import (
	"encoding/json"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitdata/config"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gitdata",
	Short: "Model and transform GitHub Git Data API documents",
	Long: `A CLI tool around the Git Data object family (blobs and trees) of the
GitHub low-level Git API. It decodes and validates wire JSON documents,
builds blob-upload requests, and derives tree-creation requests from tree
listings or local directories.

The tool performs no network I/O: every command is a pure file-to-JSON
transformation, leaving the HTTP transport to the caller.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetLevel(logger.DebugLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: search standard locations)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// loadConfig resolves the effective configuration: the --config flag, then
// the standard locations, then built-in defaults.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	path, err := config.FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found, using defaults")
		return config.Default(), nil
	}

	logger.Debugf("Using config file %q", path)
	return config.Load(path)
}

// printJSON writes v to stdout in the configured output style.
func printJSON(cfg *config.Config, v any) error {
	var (
		data []byte
		err  error
	)
	if cfg.Output == config.OutputCompact {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	fmt.Println(string(data))
	return nil
}
