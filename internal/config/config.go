// Package config handles loading and validation of evaluation.yaml, the
// file-based description of an online evaluation config consumed by the CLI
// and the CDK app.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rezabekf/aws-cdk/internal/validate"
)

// Filter mirrors a trace filter in YAML form.
type Filter struct {
	Key      string      `yaml:"key"`
	Operator string      `yaml:"operator"`
	Value    interface{} `yaml:"value"`
}

// DataSource names the CloudWatch log groups and service names traces are
// read from.
type DataSource struct {
	LogGroupNames []string `yaml:"logGroupNames"`
	ServiceNames  []string `yaml:"serviceNames,omitempty"`
}

// Evaluation is the YAML shape of one online evaluation config.
type Evaluation struct {
	Name                  string     `yaml:"name"`
	Description           *string    `yaml:"description,omitempty"`
	Evaluators            []string   `yaml:"evaluators"` // "Builtin.X" or custom evaluator ids
	SamplingPercentage    *float64   `yaml:"samplingPercentage,omitempty"`
	SessionTimeoutMinutes *float64   `yaml:"sessionTimeoutMinutes,omitempty"`
	EnableOnCreate        *bool      `yaml:"enableOnCreate,omitempty"`
	ExecutionRoleArn      string     `yaml:"executionRoleArn,omitempty"`
	Filters               []Filter   `yaml:"filters,omitempty"`
	DataSource            DataSource `yaml:"dataSource"`
}

// Load reads and parses an evaluation config file.
func Load(path string) (*Evaluation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var eval Evaluation
	if err := yaml.Unmarshal(data, &eval); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &eval, nil
}

// Violations runs every field validator in the construct's order and
// collects all messages. Unlike construct creation, which aborts on the
// first violating field, the CLI reports everything at once.
func (e *Evaluation) Violations() []string {
	var out []string
	out = append(out, validate.ConfigName(e.Name)...)
	out = append(out, validate.Description(e.Description)...)
	out = append(out, validate.EvaluatorCount(len(e.Evaluators))...)
	out = append(out, validate.SamplingPercentage(e.SamplingPercentage)...)
	out = append(out, validate.FilterCount(len(e.Filters))...)
	out = append(out, validate.SessionTimeoutMinutes(e.SessionTimeoutMinutes)...)
	out = append(out, validate.LogGroupNameCount(len(e.DataSource.LogGroupNames))...)
	return out
}
