package cmd

import (
	"github.com/marofke/aws-rfdk/logger"
	"github.com/spf13/cobra"
)

var (
	RootCmd = &cobra.Command{
		Use:   "rfdk-net",
		Short: "Manage the network tier of an AWS render farm",
		Long:  ``,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Silent = rootOpts.silent
			logger.Verbose = rootOpts.verbose
			logger.Color = rootOpts.color
		},
	}

	configPath = "network.yaml"

	rootOpts = struct {
		silent, verbose, color bool
	}{}
)

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", configPath, "Path to the network config file")
	RootCmd.PersistentFlags().BoolVarP(&rootOpts.silent, "silent", "s", false, "Do not output messages except errors and warnings")
	RootCmd.PersistentFlags().BoolVarP(&rootOpts.verbose, "verbose", "v", false, "Output debug messages")
	RootCmd.PersistentFlags().BoolVar(&rootOpts.color, "color", false, "Use color in the output")
}
