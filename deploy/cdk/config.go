package main

// StackConfig holds configuration for the online evaluation CDK stack.
type StackConfig struct {
	StackName string
	// ConfigPath points at the evaluation.yaml describing the config.
	ConfigPath string
	// ReaderRoleArn, when set, names an existing role granted read access to
	// the deployed config.
	ReaderRoleArn string
}

// DefaultConfig returns a StackConfig with sensible defaults.
func DefaultConfig() StackConfig {
	return StackConfig{
		StackName:  "AgentCoreEvaluationStack",
		ConfigPath: "evaluation.yaml",
	}
}
