package cmd

import (
	"fmt"

	"github.com/marofke/aws-rfdk/filegen"
	"github.com/marofke/aws-rfdk/logger"
	"github.com/marofke/aws-rfdk/pkg/api"
	"github.com/spf13/cobra"
)

var (
	cmdInit = &cobra.Command{
		Use:          "init",
		Short:        "Initialize default network configuration",
		Long:         ``,
		RunE:         runCmdInit,
		SilenceUsage: true,
	}

	initOpts = api.InitialConfig{}
)

func init() {
	RootCmd.AddCommand(cmdInit)
	cmdInit.Flags().StringVar(&initOpts.ClusterName, "cluster-name", "", "The name of this render farm. This will prefix the name of the CloudFormation stack")
	cmdInit.Flags().StringVar(&initOpts.Region.Name, "region", "", "The AWS region to deploy to")
	cmdInit.Flags().StringVar(&initOpts.ZoneName, "zone-name", "", "The fully-qualified domain name of the private DNS zone created inside the VPC")
}

func runCmdInit(cmd *cobra.Command, args []string) error {
	if err := validateRequired(
		flag{"--cluster-name", initOpts.ClusterName},
		flag{"--region", initOpts.Region.Name},
	); err != nil {
		return err
	}

	if err := filegen.CreateFileFromTemplate(configPath, initOpts, api.DefaultNetworkConfig); err != nil {
		return fmt.Errorf("error exec-ing default config template: %v", err)
	}

	successMsg :=
		`Success! Created %s

Next steps:
1. (Optional) Edit %s to parameterize the network.
2. Use the "rfdk-net render stack" command to render the CloudFormation stack template.
3. Use the "rfdk-net up" command to create the stack.
`

	logger.Infof(successMsg, configPath, configPath)
	return nil
}
