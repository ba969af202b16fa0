package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flagVerbose  bool
	flagJSONLogs bool
	flagHTTPAddr string
)

var rootCmd = &cobra.Command{
	Use:   "canvas-mcp",
	Short: "MCP server for the Canvas LMS API",
	Long: `canvas-mcp exposes Canvas LMS course management (courses, sections,
modules, module items and pages) as Model Context Protocol tools.

Configuration comes from CANVAS_API_URL and CANVAS_API_TOKEN, a
~/.canvas-mcp/config.yaml file, or a .env file in the working
directory. By default the server speaks MCP over stdio; use --http to
serve the streamable HTTP transport instead.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "write logs as JSON")
	rootCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "serve MCP over HTTP on this address instead of stdio (e.g. :8080)")
}
