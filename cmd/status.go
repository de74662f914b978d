package cmd

import (
	"fmt"

	"github.com/marofke/aws-rfdk/core"
	"github.com/marofke/aws-rfdk/logger"
	"github.com/spf13/cobra"
)

var (
	cmdStatus = &cobra.Command{
		Use:          "status",
		Short:        "Describe the existing network stack",
		Long:         ``,
		RunE:         runCmdStatus,
		SilenceUsage: true,
	}

	statusOpts = struct {
		awsDebug bool
	}{}
)

func init() {
	RootCmd.AddCommand(cmdStatus)
	cmdStatus.Flags().BoolVar(&statusOpts.awsDebug, "aws-debug", false, "Log debug information from aws-sdk-go library")
}

func runCmdStatus(cmd *cobra.Command, args []string) error {
	cluster, err := core.ClusterFromFile(configPath, core.Options{}, statusOpts.awsDebug)
	if err != nil {
		return fmt.Errorf("failed to read network config: %v", err)
	}

	info, err := cluster.Info()
	if err != nil {
		return fmt.Errorf("failed fetching stack info: %v", err)
	}

	logger.Info(info.String())
	return nil
}
