package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// debug is set from PICTURELAB_LOG_LEVEL before any command runs.
var debug bool

var rootCmd = &cobra.Command{
	Use:   "picturelab",
	Short: "Pixel-level picture transforms as a CLI and an MCP server",
	Long: `picturelab applies pixel transforms (negate, grayscale, mirrors, edge
detection, ...) to pictures. Without a subcommand it runs the MCP server
over stdin/stdout.

Environment variables:
  PICTURELAB_LOG_LEVEL=debug    Enable debug logging`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: runServe,
}

// setupLogging sends log output to stderr (stdout is for MCP protocol).
func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug = os.Getenv("PICTURELAB_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("picturelab v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
