package main

import (
	"github.com/ironsheep/picturelab/internal/imaging"
	"github.com/ironsheep/picturelab/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdin/stdout",
	Long: `Run the MCP server. Requests are read from stdin one per line and
responses are written to stdout. Configure it in your MCP client.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	store := imaging.NewFileStore()
	store.Debug = debug

	srv := server.New(server.WithStore(store), server.WithDebug(debug))
	return srv.Run()
}
