package cmd

import (
	"fmt"

	"github.com/marofke/aws-rfdk/core"
	"github.com/marofke/aws-rfdk/logger"
	"github.com/spf13/cobra"
)

var (
	cmdUpdate = &cobra.Command{
		Use:          "update",
		Short:        "Update the existing network stack",
		Long:         ``,
		RunE:         runCmdUpdate,
		SilenceUsage: true,
	}

	updateOpts = struct {
		awsDebug, prettyPrint, skipWait bool
		s3URI                           string
	}{}
)

func init() {
	RootCmd.AddCommand(cmdUpdate)
	cmdUpdate.Flags().BoolVar(&updateOpts.awsDebug, "aws-debug", false, "Log debug information from aws-sdk-go library")
	cmdUpdate.Flags().BoolVar(&updateOpts.prettyPrint, "pretty-print", false, "Pretty print the resulting CloudFormation")
	cmdUpdate.Flags().StringVar(&updateOpts.s3URI, "s3-uri", "", "When your template is bigger than the cloudformation limit of 51200 bytes, upload the template to the specified location in S3. S3 location expressed as s3://<bucket>/path/to/dir")
	cmdUpdate.Flags().BoolVar(&updateOpts.skipWait, "skip-wait", false, "Don't wait for the stack update to finish")
}

func runCmdUpdate(cmd *cobra.Command, args []string) error {
	opts := core.Options{
		PrettyPrint: updateOpts.prettyPrint,
		SkipWait:    updateOpts.skipWait,
		S3URI:       updateOpts.s3URI,
	}

	cluster, err := core.ClusterFromFile(configPath, opts, updateOpts.awsDebug)
	if err != nil {
		return fmt.Errorf("failed to read network config: %v", err)
	}

	if _, err := cluster.ValidateStack(); err != nil {
		return err
	}

	report, err := cluster.Update()
	if err != nil {
		return fmt.Errorf("error updating network: %v", err)
	}
	if report != "" {
		logger.Infof("Update stack: %s", report)
	}

	info, err := cluster.Info()
	if err != nil {
		return fmt.Errorf("failed fetching stack info: %v", err)
	}

	successMsg :=
		`Success! Your AWS resources are being updated:
%s`
	logger.Infof(successMsg, info.String())

	return nil
}
