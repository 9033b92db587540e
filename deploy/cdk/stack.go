package main

import (
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/rezabekf/aws-cdk/internal/config"
	"github.com/rezabekf/aws-cdk/pkg/onlineeval"
)

func NewEvaluationStack(scope constructs.Construct, id string, cfg StackConfig, eval *config.Evaluation) awscdk.Stack {
	stack := awscdk.NewStack(scope, &id, nil)

	evaluators := make([]onlineeval.EvaluatorReference, len(eval.Evaluators))
	for i, e := range eval.Evaluators {
		if strings.HasPrefix(e, "Builtin.") {
			evaluators[i] = onlineeval.NewBuiltinEvaluator(onlineeval.BuiltinEvaluator(e))
		} else {
			evaluators[i] = onlineeval.NewCustomEvaluator(jsii.String(e))
		}
	}

	filters := make([]onlineeval.FilterConfig, len(eval.Filters))
	for i, f := range eval.Filters {
		filters[i] = onlineeval.FilterConfig{
			Key:      f.Key,
			Operator: onlineeval.FilterOperator(f.Operator),
			Value:    f.Value,
		}
	}

	var executionRole awsiam.IRole
	if eval.ExecutionRoleArn != "" {
		executionRole = awsiam.Role_FromRoleArn(stack, jsii.String("ExecutionRole"),
			jsii.String(eval.ExecutionRoleArn), nil)
	}

	ev := onlineeval.NewOnlineEvaluation(stack, "OnlineEvaluation", &onlineeval.OnlineEvaluationProps{
		ConfigName: eval.Name,
		Evaluators: evaluators,
		DataSource: onlineeval.DataSourceConfig_FromCloudWatchLogs(&onlineeval.CloudWatchLogsDataSource{
			LogGroupNames: eval.DataSource.LogGroupNames,
			ServiceNames:  eval.DataSource.ServiceNames,
		}),
		ExecutionRole:         executionRole,
		Description:           eval.Description,
		SamplingPercentage:    eval.SamplingPercentage,
		Filters:               filters,
		SessionTimeoutMinutes: eval.SessionTimeoutMinutes,
		EnableOnCreate:        eval.EnableOnCreate,
	})

	if cfg.ReaderRoleArn != "" {
		reader := awsiam.Role_FromRoleArn(stack, jsii.String("Reader"),
			jsii.String(cfg.ReaderRoleArn), nil)
		ev.GrantRead(reader)
	}

	awscdk.NewCfnOutput(stack, jsii.String("ConfigId"), &awscdk.CfnOutputProps{
		Value: ev.ConfigID(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("ConfigArn"), &awscdk.CfnOutputProps{
		Value: ev.ConfigArn(),
	})
	awscdk.NewCfnOutput(stack, jsii.String("ExecutionRoleArn"), &awscdk.CfnOutputProps{
		Value: ev.ExecutionRole().RoleArn(),
	})

	return stack
}
