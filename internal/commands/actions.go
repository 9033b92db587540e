package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rezabekf/aws-cdk/pkg/onlineeval"
)

// NewActionsCmd creates the actions command, which prints the IAM action
// sets used by the constructs so operators can review or replicate them.
func NewActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "Print the IAM action sets used by online evaluation configs",
		RunE: func(cmd *cobra.Command, args []string) error {
			printActions("admin", onlineeval.AdminActions)
			printActions("read", onlineeval.ReadActions)
			printActions("cloudwatch-logs-read", onlineeval.CloudWatchLogsReadActions)
			printActions("cloudwatch-logs-write", onlineeval.CloudWatchLogsWriteActions)
			printActions("cloudwatch-index-policy", onlineeval.CloudWatchIndexPolicyActions)
			printActions("bedrock-model-invoke", onlineeval.BedrockModelInvokeActions)
			return nil
		},
	}
}

func printActions(group string, actions []string) {
	color.Cyan("%s:", group)
	for _, a := range actions {
		fmt.Printf("  %s\n", a)
	}
}
