package onlineeval

// IAM action sets referenced by the execution role, the lifecycle executor
// policy, and the grant helpers. They carry no logic, only data.
var (
	// AdminActions covers the full control-plane lifecycle of an online
	// evaluation config.
	AdminActions = []string{
		"bedrock-agentcore:CreateOnlineEvaluationConfig",
		"bedrock-agentcore:GetOnlineEvaluationConfig",
		"bedrock-agentcore:UpdateOnlineEvaluationConfig",
		"bedrock-agentcore:DeleteOnlineEvaluationConfig",
		"bedrock-agentcore:ListOnlineEvaluationConfigs",
	}

	// ReadActions allows describing and listing configs without mutation.
	ReadActions = []string{
		"bedrock-agentcore:GetOnlineEvaluationConfig",
		"bedrock-agentcore:ListOnlineEvaluationConfigs",
	}

	// CloudWatchLogsReadActions let the evaluation job query agent traces.
	CloudWatchLogsReadActions = []string{
		"logs:DescribeLogGroups",
		"logs:StartQuery",
		"logs:GetQueryResults",
	}

	// CloudWatchLogsWriteActions let the evaluation job publish results.
	CloudWatchLogsWriteActions = []string{
		"logs:CreateLogGroup",
		"logs:CreateLogStream",
		"logs:PutLogEvents",
	}

	// CloudWatchIndexPolicyActions are required because the control plane
	// verifies span log-group index policies during config creation.
	CloudWatchIndexPolicyActions = []string{
		"logs:DescribeIndexPolicies",
		"logs:PutIndexPolicy",
	}

	// BedrockModelInvokeActions let evaluators call judge models.
	BedrockModelInvokeActions = []string{
		"bedrock:InvokeModel",
		"bedrock:InvokeModelWithResponseStream",
	}
)
