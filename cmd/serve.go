package cmd

import (
	"github.com/bgraf/kmroute/cmd/serve"
	"github.com/bgraf/kmroute/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the route pages and map data over HTTP",
	RunE:  serve.RunServeCmd,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("address", "a", "", "Listen address (default :8000)")
	serveCmd.Flags().Bool("live", true, "Reload route tracks when their files change")

	if err := viper.BindPFlag(config.KeyServeAddress, serveCmd.Flags().Lookup("address")); err != nil {
		panic(err)
	}
}
