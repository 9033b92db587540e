package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezabekf/aws-cdk/internal/commands"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "agentcore-eval",
		Short:   "Tools for Bedrock AgentCore online evaluation configs",
		Long:    `agentcore-eval works with the declarative online evaluation configs deployed by this repository's CDK constructs: it validates evaluation.yaml files offline and prints the IAM action sets the constructs attach.`,
		Version: version,
	}

	root.AddCommand(
		commands.NewValidateCmd(),
		commands.NewActionsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
