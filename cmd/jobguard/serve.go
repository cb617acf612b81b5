package main

import (
	"log"

	"github.com/spf13/cobra"

	"jobguard/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local HTTP facade",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}

	addr := server.Addr(app.Config.Port)
	log.Printf("Starting server on %s", addr)
	return app.Router.Run(addr)
}
