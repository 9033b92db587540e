// Package onlineeval provides CDK constructs for Amazon Bedrock AgentCore
// online evaluation: declarative configs that sample live agent traces and
// score them with built-in or custom evaluators. The constructs validate
// their inputs at synth time and emit the create/update/delete parameters
// executed by the CloudFormation custom resource framework; no network call
// happens in this package.
package onlineeval

// BuiltinEvaluator identifies an evaluator implemented by the Bedrock
// AgentCore service itself.
type BuiltinEvaluator string

// Built-in evaluator identifiers known to the control plane.
const (
	BuiltinHelpfulness              BuiltinEvaluator = "Builtin.Helpfulness"
	BuiltinCorrectness              BuiltinEvaluator = "Builtin.Correctness"
	BuiltinCompleteness             BuiltinEvaluator = "Builtin.Completeness"
	BuiltinFaithfulness             BuiltinEvaluator = "Builtin.Faithfulness"
	BuiltinCoherence                BuiltinEvaluator = "Builtin.Coherence"
	BuiltinRelevance                BuiltinEvaluator = "Builtin.Relevance"
	BuiltinFollowingInstructions    BuiltinEvaluator = "Builtin.FollowingInstructions"
	BuiltinProfessionalStyleAndTone BuiltinEvaluator = "Builtin.ProfessionalStyleAndTone"
	BuiltinHarmfulness              BuiltinEvaluator = "Builtin.Harmfulness"
	BuiltinStereotyping             BuiltinEvaluator = "Builtin.Stereotyping"
	BuiltinRefusal                  BuiltinEvaluator = "Builtin.Refusal"
	BuiltinGoalSuccessRate          BuiltinEvaluator = "Builtin.GoalSuccessRate"
	BuiltinToolUsageAccuracy        BuiltinEvaluator = "Builtin.ToolUsageAccuracy"
)

// BuiltinEvaluators lists every built-in evaluator identifier.
var BuiltinEvaluators = []BuiltinEvaluator{
	BuiltinHelpfulness,
	BuiltinCorrectness,
	BuiltinCompleteness,
	BuiltinFaithfulness,
	BuiltinCoherence,
	BuiltinRelevance,
	BuiltinFollowingInstructions,
	BuiltinProfessionalStyleAndTone,
	BuiltinHarmfulness,
	BuiltinStereotyping,
	BuiltinRefusal,
	BuiltinGoalSuccessRate,
	BuiltinToolUsageAccuracy,
}

// EvaluatorReference identifies a built-in or customer-defined evaluator by
// its id. It is immutable once constructed.
type EvaluatorReference struct {
	evaluatorID string
}

// NewBuiltinEvaluator references a service-implemented evaluator.
func NewBuiltinEvaluator(b BuiltinEvaluator) EvaluatorReference {
	return EvaluatorReference{evaluatorID: string(b)}
}

// NewCustomEvaluator references a customer-defined evaluator. The id is not
// validated beyond being present; the control plane rejects unknown ids.
func NewCustomEvaluator(id *string) EvaluatorReference {
	if id == nil {
		panic(&ValidationError{Message: "custom evaluator id must not be nil"})
	}
	return EvaluatorReference{evaluatorID: *id}
}

// EvaluatorID returns the wire identifier of the referenced evaluator.
func (r EvaluatorReference) EvaluatorID() string {
	return r.evaluatorID
}

func (r EvaluatorReference) render() map[string]interface{} {
	return map[string]interface{}{"evaluatorId": r.evaluatorID}
}
