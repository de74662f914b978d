package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/marofke/aws-rfdk/core"
	"github.com/marofke/aws-rfdk/logger"
	"github.com/spf13/cobra"
)

var (
	cmdUp = &cobra.Command{
		Use:          "up",
		Short:        "Create the network stack",
		Long:         ``,
		RunE:         runCmdUp,
		SilenceUsage: true,
	}

	upOpts = struct {
		awsDebug, export, prettyPrint, skipWait bool
		s3URI                                   string
	}{}
)

func init() {
	RootCmd.AddCommand(cmdUp)
	cmdUp.Flags().BoolVar(&upOpts.export, "export", false, "Don't create the stack, instead export the CloudFormation stack template to a local file")
	cmdUp.Flags().BoolVar(&upOpts.prettyPrint, "pretty-print", false, "Pretty print the resulting CloudFormation")
	cmdUp.Flags().BoolVar(&upOpts.awsDebug, "aws-debug", false, "Log debug information from aws-sdk-go library")
	cmdUp.Flags().StringVar(&upOpts.s3URI, "s3-uri", "", "When your template is bigger than the cloudformation limit of 51200 bytes, upload the template to the specified location in S3. S3 location expressed as s3://<bucket>/path/to/dir")
	cmdUp.Flags().BoolVar(&upOpts.skipWait, "skip-wait", false, "Don't wait for the stack creation to finish")
}

func runCmdUp(cmd *cobra.Command, args []string) error {
	opts := core.Options{
		PrettyPrint: upOpts.prettyPrint,
		SkipWait:    upOpts.skipWait,
		S3URI:       upOpts.s3URI,
	}

	cluster, err := core.ClusterFromFile(configPath, opts, upOpts.awsDebug)
	if err != nil {
		return fmt.Errorf("failed to read network config: %v", err)
	}

	if upOpts.export {
		stackTemplate, err := cluster.RenderStackTemplate()
		if err != nil {
			return fmt.Errorf("failed to render stack template: %v", err)
		}
		templatePath := fmt.Sprintf("%s.stack-template.json", cluster.Cfg.StackName())
		logger.Infof("Exporting %s", templatePath)
		if err := ioutil.WriteFile(templatePath, stackTemplate, 0600); err != nil {
			return fmt.Errorf("error writing %s : %v", templatePath, err)
		}
		return nil
	}

	if _, err := cluster.ValidateStack(); err != nil {
		return fmt.Errorf("error validating network: %v", err)
	}

	logger.Info("Creating AWS resources. Please wait. This may take a few minutes.")
	if err := cluster.Create(); err != nil {
		return fmt.Errorf("error creating network: %v", err)
	}

	if upOpts.skipWait {
		logger.Info("The network stack is being created. Run \"rfdk-net status\" to watch its progress.")
		return nil
	}

	info, err := cluster.Info()
	if err != nil {
		return fmt.Errorf("failed fetching stack info: %v", err)
	}

	successMsg :=
		`Success! Your AWS resources have been created:
%s`
	logger.Infof(successMsg, info.String())

	return nil
}
