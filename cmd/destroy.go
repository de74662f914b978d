package cmd

import (
	"fmt"

	"github.com/marofke/aws-rfdk/core"
	"github.com/marofke/aws-rfdk/logger"
	"github.com/spf13/cobra"
)

var (
	cmdDestroy = &cobra.Command{
		Use:          "destroy",
		Short:        "Destroy the network stack",
		Long:         ``,
		RunE:         runCmdDestroy,
		SilenceUsage: true,
	}

	destroyOpts = struct {
		awsDebug, skipWait bool
	}{}
)

func init() {
	RootCmd.AddCommand(cmdDestroy)
	cmdDestroy.Flags().BoolVar(&destroyOpts.awsDebug, "aws-debug", false, "Log debug information from aws-sdk-go library")
	cmdDestroy.Flags().BoolVar(&destroyOpts.skipWait, "skip-wait", false, "Don't wait for the stack deletion to finish")
}

func runCmdDestroy(cmd *cobra.Command, args []string) error {
	opts := core.Options{SkipWait: destroyOpts.skipWait}

	cluster, err := core.ClusterFromFile(configPath, opts, destroyOpts.awsDebug)
	if err != nil {
		return fmt.Errorf("error parsing config: %v", err)
	}

	if err := cluster.Destroy(); err != nil {
		return fmt.Errorf("failed destroying network: %v", err)
	}

	if destroyOpts.skipWait {
		logger.Info("CloudFormation stack is being destroyed. This will take several minutes")
		return nil
	}

	logger.Info("CloudFormation stack has been destroyed.")
	return nil
}
