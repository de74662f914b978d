package cmd

import (
	"fmt"

	"github.com/marofke/aws-rfdk/core"
	"github.com/marofke/aws-rfdk/logger"
	"github.com/spf13/cobra"
)

var (
	cmdDiff = &cobra.Command{
		Use:          "diff",
		Short:        "Compare the current and the desired states of the network stack",
		Long:         ``,
		RunE:         runCmdDiff,
		SilenceUsage: true,
	}

	diffOpts = struct {
		awsDebug bool
		context  int
	}{}
)

// ExitError carries a dedicated process exit code, so that "diff" can signal
// detected changes with an exit status distinct from ordinary failures.
type ExitError struct {
	msg  string
	Code int
}

func (e *ExitError) Error() string {
	return e.msg
}

func init() {
	RootCmd.AddCommand(cmdDiff)
	cmdDiff.Flags().BoolVar(&diffOpts.awsDebug, "aws-debug", false, "Log debug information from aws-sdk-go library")
	cmdDiff.Flags().IntVarP(&diffOpts.context, "context", "C", -1, "output NUM lines of context around changes")
}

func runCmdDiff(c *cobra.Command, _ []string) error {
	cluster, err := core.ClusterFromFile(configPath, core.Options{}, diffOpts.awsDebug)
	if err != nil {
		return fmt.Errorf("failed to read network config: %v", err)
	}

	diff, err := cluster.Diff(diffOpts.context)
	if err != nil {
		return fmt.Errorf("error comparing network states: %v", err)
	}

	if diff == "" {
		logger.Info("No changes detected.")
		return nil
	}

	logger.Infof("Detected changes in: %s\n%s", cluster.Cfg.StackName(), diff)

	c.SilenceErrors = true
	return &ExitError{fmt.Sprintf("Detected changes in: %s", cluster.Cfg.StackName()), 2}
}
