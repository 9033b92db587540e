package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezabekf/aws-cdk/internal/config"
	"github.com/rezabekf/aws-cdk/pkg/onlineeval"
)

// TestYAMLToSynth exercises the full path a deployment takes: parse an
// evaluation.yaml, check it offline, feed it into the construct, and synth.
func TestYAMLToSynth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evaluation.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: supportAgentEval
description: scores the production support agent
evaluators:
  - Builtin.Helpfulness
  - Builtin.GoalSuccessRate
samplingPercentage: 5
sessionTimeoutMinutes: 20
filters:
  - key: sessionAttributes.tier
    operator: EQUALS
    value: premium
dataSource:
  logGroupNames:
    - /aws/bedrock-agentcore/runtimes/rt-1-DEFAULT
  serviceNames:
    - support_agent.DEFAULT
`), 0o644))

	eval, err := config.Load(path)
	require.NoError(t, err)
	require.Empty(t, eval.Violations())

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("IntegrationStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})

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

	onlineeval.NewOnlineEvaluation(stack, "Eval", &onlineeval.OnlineEvaluationProps{
		ConfigName: eval.Name,
		Evaluators: evaluators,
		DataSource: onlineeval.DataSourceConfig_FromCloudWatchLogs(&onlineeval.CloudWatchLogsDataSource{
			LogGroupNames: eval.DataSource.LogGroupNames,
			ServiceNames:  eval.DataSource.ServiceNames,
		}),
		Description:           eval.Description,
		SamplingPercentage:    eval.SamplingPercentage,
		Filters:               filters,
		SessionTimeoutMinutes: eval.SessionTimeoutMinutes,
	})

	tmpl := assertions.Template_FromStack(stack, nil)
	tmpl.ResourceCountIs(jsii.String("Custom::BedrockAgentCoreOnlineEvaluationConfig"), jsii.Number(1))

	raw, err := json.Marshal(tmpl.ToJSON())
	require.NoError(t, err)
	s := string(raw)
	assert.Contains(t, s, `\"onlineEvaluationConfigName\":\"supportAgentEval\"`)
	assert.Contains(t, s, `\"evaluatorId\":\"Builtin.GoalSuccessRate\"`)
	assert.Contains(t, s, `\"samplingPercentage\":5`)
	assert.Contains(t, s, `\"sessionTimeoutMinutes\":20`)
}
