package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/rezabekf/aws-cdk/internal/config"
)

func main() {
	defer jsii.Close()

	app := awscdk.NewApp(nil)
	cfg := DefaultConfig()

	if name := os.Getenv("EVAL_STACK_NAME"); name != "" {
		cfg.StackName = name
	}
	if path := os.Getenv("EVAL_CONFIG_PATH"); path != "" {
		cfg.ConfigPath = path
	}
	if arn := os.Getenv("EVAL_READER_ROLE_ARN"); arn != "" {
		cfg.ReaderRoleArn = arn
	}

	eval, err := config.Load(cfg.ConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	NewEvaluationStack(app, cfg.StackName, cfg, eval)
	app.Synth(nil)
}
