package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Michaelcode2/product-api-service/internal/app"
	"github.com/Michaelcode2/product-api-service/internal/maintenance"
	"github.com/Michaelcode2/product-api-service/internal/server"
)

var demo bool

var rootCmd = &cobra.Command{
	Use:           "product-api-service",
	Short:         "Product lookup API backed by the 1C v8.3 COM connector",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		app.Invoke(
			app.Options{Demo: demo},
			server.StartServer,
			maintenance.StartLogJanitor,
		).Run()
	},
}

func init() {
	rootCmd.Flags().BoolVar(&demo, "demo", false,
		"serve sample data from an in-memory driver instead of the COM connector")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
