package cmd

import (
	"github.com/bgraf/kmroute/cmd/building"
	"github.com/bgraf/kmroute/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write the route pages as a static site",
	Long: `Build loads all configured routes and writes an index page, one map
page and one JSON payload per route and the static assets into the build
directory.`,
	RunE: building.RunBuildCmd,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("output", "O", "", "Build directory")

	if err := viper.BindPFlag(config.KeyBuildDirectory, buildCmd.Flags().Lookup("output")); err != nil {
		panic(err)
	}
}
