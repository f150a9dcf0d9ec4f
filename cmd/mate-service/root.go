package main

import (
	"github.com/spf13/cobra"

	"github.com/phani92/mate-service/internal/paths"
)

// Version is the service version reported by the version command and the
// status endpoint.
const Version = "0.1.0"

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
)

var rootCmd = &cobra.Command{
	Use:   "mate-service",
	Short: "mate-service tracks shared inventory, consumption, and payments",
	Long: `mate-service is a small group-inventory tracker. It keeps users,
items, consumption records, and payments in a bounded in-memory store,
persists a full snapshot after every change, and serves a REST API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.mate-data)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > MATE_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > MATE_DATA_DIR env > default.
func resolveDataDir(configYAMLValue string) (string, error) {
	return paths.ResolveDataDir(flagDataDir, configYAMLValue)
}
