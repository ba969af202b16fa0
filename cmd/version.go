package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/koopa0/canvas-mcp/internal/config"
)

// Version information (injected at build time via ldflags).
var (
	Version   = "development"
	GitCommit = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and configuration status",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Printf("canvas-mcp %s (%s)\n", Version, GitCommit)

	cfg, err := config.Load()
	switch {
	case err == nil:
		fmt.Println("Configuration:")
		fmt.Printf("  API URL: %s\n", cfg.APIURL)
		fmt.Printf("  API token: %s (configured)\n", cfg.MaskedToken())
	case errors.Is(err, config.ErrMissingAPIURL), errors.Is(err, config.ErrMissingAPIToken), errors.Is(err, config.ErrInvalidAPIURL):
		fmt.Printf("Configuration: %v\n", err)
	default:
		return err
	}
	return nil
}
