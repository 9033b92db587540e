package validate

import (
	"strings"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigName_Valid(t *testing.T) {
	for _, name := range []string{
		"a",
		"A",
		"agent_eval_1",
		"Z_" + strings.Repeat("x", 46), // 48 chars
	} {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, ConfigName(name))
		})
	}
}

func TestConfigName_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "between 1 and 48 characters"},
		{"too long", strings.Repeat("a", 49), "between 1 and 48 characters"},
		{"leading digit", "9eval", "must match pattern"},
		{"dash", "my-eval", "must match pattern"},
		{"space", "my eval", "must match pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ConfigName(tt.in)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs[0], tt.want)
		})
	}
}

func TestConfigName_TokenSkipped(t *testing.T) {
	assert.Empty(t, ConfigName(*awscdk.Aws_ACCOUNT_ID()))
}

func TestDescription(t *testing.T) {
	assert.Empty(t, Description(nil))

	ok := strings.Repeat("d", 200)
	assert.Empty(t, Description(&ok))

	long := strings.Repeat("d", 201)
	errs := Description(&long)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "at most 200 characters")
	assert.Contains(t, errs[0], "201")
}

func TestEvaluatorCount(t *testing.T) {
	errs := EvaluatorCount(0)
	require.Len(t, errs, 1)
	assert.Equal(t, "At least 1 evaluator is required", errs[0])

	errs = EvaluatorCount(11)
	require.Len(t, errs, 1)
	assert.Equal(t, "At most 10 evaluators are allowed", errs[0])

	for n := 1; n <= 10; n++ {
		assert.Empty(t, EvaluatorCount(n))
	}
}

func TestSamplingPercentage(t *testing.T) {
	assert.Empty(t, SamplingPercentage(nil))

	for _, v := range []float64{0.01, 10, 100} {
		v := v
		assert.Empty(t, SamplingPercentage(&v))
	}

	low := 0.001
	errs := SamplingPercentage(&low)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "at least 0.01")

	high := 101.0
	errs = SamplingPercentage(&high)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "at most 100")
}

func TestFilterCount(t *testing.T) {
	for n := 0; n <= 5; n++ {
		assert.Empty(t, FilterCount(n))
	}
	errs := FilterCount(6)
	require.Len(t, errs, 1)
	assert.Equal(t, "At most 5 filters are allowed", errs[0])
}

func TestSessionTimeoutMinutes(t *testing.T) {
	assert.Empty(t, SessionTimeoutMinutes(nil))

	for _, v := range []float64{1, 15, 1440} {
		v := v
		assert.Empty(t, SessionTimeoutMinutes(&v))
	}

	low := 0.0
	errs := SessionTimeoutMinutes(&low)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "at least 1 minute")

	high := 1441.0
	errs = SessionTimeoutMinutes(&high)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "at most 1440 minutes")
}

func TestLogGroupNameCount(t *testing.T) {
	errs := LogGroupNameCount(0)
	require.Len(t, errs, 1)
	assert.Equal(t, "At least 1 log group name is required", errs[0])

	for n := 1; n <= 5; n++ {
		assert.Empty(t, LogGroupNameCount(n))
	}

	errs = LogGroupNameCount(6)
	require.Len(t, errs, 1)
	assert.Equal(t, "At most 5 log group names are allowed", errs[0])
}
