package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/marofke/aws-rfdk/core"
	"github.com/marofke/aws-rfdk/filegen"
	"github.com/marofke/aws-rfdk/fingerprint"
	"github.com/marofke/aws-rfdk/logger"
	"github.com/spf13/cobra"
)

var (
	cmdRender = &cobra.Command{
		Use:          "render",
		Short:        "Render deployment artifacts",
		Long:         ``,
		RunE:         runCmdRenderStack,
		SilenceUsage: true,
	}

	cmdRenderStack = &cobra.Command{
		Use:          "stack",
		Short:        "Render the CloudFormation stack template",
		Long:         ``,
		RunE:         runCmdRenderStack,
		SilenceUsage: true,
	}

	renderOpts = struct {
		prettyPrint bool
	}{}
)

func init() {
	RootCmd.AddCommand(cmdRender)
	cmdRender.AddCommand(cmdRenderStack)

	for _, c := range []*cobra.Command{cmdRender, cmdRenderStack} {
		c.Flags().BoolVar(&renderOpts.prettyPrint, "pretty-print", false, "Pretty print the resulting CloudFormation")
	}
}

func runCmdRenderStack(cmd *cobra.Command, args []string) error {
	opts := core.Options{PrettyPrint: renderOpts.prettyPrint}

	cluster, err := core.ClusterFromFile(configPath, opts, false)
	if err != nil {
		return fmt.Errorf("failed to read network config: %v", err)
	}

	body, err := cluster.RenderStackTemplate()
	if err != nil {
		return fmt.Errorf("failed to render stack template: %v", err)
	}

	templatePath := filepath.Join("stack-templates", "network.json")
	if err := filegen.Render(filegen.File(templatePath, body, 0644)); err != nil {
		return err
	}

	logger.Debugf("stack template fingerprint: %s", fingerprint.SHA256(string(body)))

	successMsg :=
		`Success! Stack template rendered to ./%s.

Next steps:
1. (Optional) Validate your changes to %s with "rfdk-net validate"
2. Start the network stack with "rfdk-net up".
`

	logger.Infof(successMsg, templatePath, configPath)
	return nil
}
