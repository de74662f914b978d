package cmd

import (
	"fmt"

	"github.com/marofke/aws-rfdk/core"
	"github.com/marofke/aws-rfdk/logger"
	"github.com/spf13/cobra"
)

var (
	cmdValidate = &cobra.Command{
		Use:          "validate",
		Short:        "Validate the network config and stack template",
		Long:         ``,
		RunE:         runCmdValidate,
		SilenceUsage: true,
	}

	validateOpts = struct {
		awsDebug bool
	}{}
)

func init() {
	RootCmd.AddCommand(cmdValidate)
	cmdValidate.Flags().BoolVar(&validateOpts.awsDebug, "aws-debug", false, "Log debug information from aws-sdk-go library")
}

func runCmdValidate(_ *cobra.Command, _ []string) error {
	cluster, err := core.ClusterFromFile(configPath, core.Options{}, validateOpts.awsDebug)
	if err != nil {
		return fmt.Errorf("failed to read network config: %v", err)
	}

	logger.Info("Validating stack template...")

	report, err := cluster.ValidateStack()
	if report != "" {
		logger.Errorf("Validation Report: %s", report)
	}
	if err != nil {
		return err
	}

	logger.Info("Validation OK!")
	return nil
}
