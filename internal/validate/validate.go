// Package validate contains the field validators for online evaluation
// configuration. Each validator is a pure function returning zero or more
// violation messages; absent values and unresolved CDK tokens are skipped.
package validate

import (
	"fmt"
	"regexp"

	"github.com/aws/aws-cdk-go/awscdk/v2"
)

const configNamePattern = `^[a-zA-Z][a-zA-Z0-9_]{0,47}$`

var configNameRe = regexp.MustCompile(configNamePattern)

// ConfigName checks the online evaluation config name against its length and
// character constraints.
func ConfigName(name string) []string {
	if tokenized(name) {
		return nil
	}
	var errs []string
	if n := len(name); n < 1 || n > 48 {
		errs = append(errs, fmt.Sprintf("configName must be between 1 and 48 characters, got %d", n))
	}
	if !configNameRe.MatchString(name) {
		errs = append(errs, fmt.Sprintf("configName must match pattern %s, got %q", configNamePattern, name))
	}
	return errs
}

// Description checks the optional description length.
func Description(desc *string) []string {
	if desc == nil || tokenized(*desc) {
		return nil
	}
	if n := len(*desc); n > 200 {
		return []string{fmt.Sprintf("description must be at most 200 characters, got %d", n)}
	}
	return nil
}

// EvaluatorCount checks that between 1 and 10 evaluators are configured.
func EvaluatorCount(count int) []string {
	if count < 1 {
		return []string{"At least 1 evaluator is required"}
	}
	if count > 10 {
		return []string{"At most 10 evaluators are allowed"}
	}
	return nil
}

// SamplingPercentage checks the optional trace sampling percentage.
func SamplingPercentage(pct *float64) []string {
	if pct == nil || tokenized(*pct) {
		return nil
	}
	if *pct < 0.01 {
		return []string{fmt.Sprintf("samplingPercentage must be at least 0.01, got %v", *pct)}
	}
	if *pct > 100 {
		return []string{fmt.Sprintf("samplingPercentage must be at most 100, got %v", *pct)}
	}
	return nil
}

// FilterCount checks that at most 5 filters are configured.
func FilterCount(count int) []string {
	if count > 5 {
		return []string{"At most 5 filters are allowed"}
	}
	return nil
}

// SessionTimeoutMinutes checks the optional session inactivity timeout.
func SessionTimeoutMinutes(minutes *float64) []string {
	if minutes == nil || tokenized(*minutes) {
		return nil
	}
	if *minutes < 1 {
		return []string{fmt.Sprintf("sessionTimeoutMinutes must be at least 1 minute, got %v", *minutes)}
	}
	if *minutes > 1440 {
		return []string{fmt.Sprintf("sessionTimeoutMinutes must be at most 1440 minutes, got %v", *minutes)}
	}
	return nil
}

// LogGroupNameCount checks that a CloudWatch Logs data source names between
// 1 and 5 log groups.
func LogGroupNameCount(count int) []string {
	if count < 1 {
		return []string{"At least 1 log group name is required"}
	}
	if count > 5 {
		return []string{"At most 5 log group names are allowed"}
	}
	return nil
}

// tokenized reports whether v is a deferred CDK token, unknown until deploy
// time. Such values bypass validation entirely and surface at the remote API
// call instead.
func tokenized(v interface{}) bool {
	unresolved := awscdk.Token_IsUnresolved(v)
	return unresolved != nil && *unresolved
}
