package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rezabekf/aws-cdk/internal/config"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate an online evaluation config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateFile(args[0])
		},
	}
}

func validateFile(path string) error {
	eval, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	violations := eval.Violations()
	if len(violations) == 0 {
		color.Green("%s: OK", path)
		return nil
	}

	color.Red("%s:", path)
	for _, v := range violations {
		color.Red("  %s", v)
	}
	return fmt.Errorf("%d violation(s)", len(violations))
}
