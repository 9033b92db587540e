package main

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/require"

	"github.com/rezabekf/aws-cdk/internal/config"
)

func testEvaluation() *config.Evaluation {
	pct := 25.0
	return &config.Evaluation{
		Name:               "supportAgentEval",
		Evaluators:         []string{"Builtin.Helpfulness", "my-custom-evaluator"},
		SamplingPercentage: &pct,
		Filters: []config.Filter{
			{Key: "sessionAttributes.tier", Operator: "EQUALS", Value: "premium"},
		},
		DataSource: config.DataSource{
			LogGroupNames: []string{"/aws/bedrock-agentcore/runtimes/rt-1-DEFAULT"},
			ServiceNames:  []string{"support_agent.DEFAULT"},
		},
	}
}

func synthTemplate(t *testing.T, cfg StackConfig, eval *config.Evaluation) assertions.Template {
	t.Helper()
	app := awscdk.NewApp(nil)
	stack := NewEvaluationStack(app, "TestStack", cfg, eval)
	return assertions.Template_FromStack(stack, nil)
}

func TestStackResources(t *testing.T) {
	tmpl := synthTemplate(t, DefaultConfig(), testEvaluation())

	tmpl.ResourceCountIs(jsii.String("Custom::BedrockAgentCoreOnlineEvaluationConfig"), jsii.Number(1))
	// Execution role plus the custom resource provider role.
	tmpl.ResourceCountIs(jsii.String("AWS::IAM::Role"), jsii.Number(2))
}

func TestStackOutputs(t *testing.T) {
	tmpl := synthTemplate(t, DefaultConfig(), testEvaluation())

	tmpl.HasOutput(jsii.String("ConfigId"), map[string]interface{}{})
	tmpl.HasOutput(jsii.String("ConfigArn"), map[string]interface{}{})
	tmpl.HasOutput(jsii.String("ExecutionRoleArn"), map[string]interface{}{})
}

func TestStackCreateCall(t *testing.T) {
	tmpl := synthTemplate(t, DefaultConfig(), testEvaluation())

	tpl, err := json.Marshal(tmpl.ToJSON())
	require.NoError(t, err)
	s := string(tpl)
	require.Contains(t, s, `\"onlineEvaluationConfigName\":\"supportAgentEval\"`)
	require.Contains(t, s, `\"evaluatorId\":\"Builtin.Helpfulness\"`)
	require.Contains(t, s, `\"evaluatorId\":\"my-custom-evaluator\"`)
	require.Contains(t, s, `\"samplingPercentage\":25`)
	require.Contains(t, s, `\"stringValue\":\"premium\"`)
}

func TestReaderGrant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReaderRoleArn = "arn:aws:iam::123456789012:role/observers"
	tmpl := synthTemplate(t, cfg, testEvaluation())

	tpl, err := json.Marshal(tmpl.ToJSON())
	require.NoError(t, err)
	require.Contains(t, string(tpl), "bedrock-agentcore:GetOnlineEvaluationConfig")
	require.Contains(t, string(tpl), "bedrock-agentcore:ListOnlineEvaluationConfigs")
}
