package onlineeval

import "fmt"

const (
	// DefaultEndpointName is used when a runtime-derived data source does not
	// name an endpoint.
	DefaultEndpointName = "DEFAULT"

	runtimeLogGroupPrefix = "/aws/bedrock-agentcore/runtimes/"
)

// CloudWatchLogsDataSource names the log groups the control plane reads
// agent traces from, and the service names emitted into those groups.
type CloudWatchLogsDataSource struct {
	// LogGroupNames lists between 1 and 5 log groups holding agent traces.
	LogGroupNames []string
	// ServiceNames lists the OTel service names whose spans are evaluated.
	ServiceNames []string
}

// IAgentRuntime is the subset of an AgentCore runtime construct needed to
// derive a trace data source from it.
type IAgentRuntime interface {
	AgentRuntimeID() *string
	AgentRuntimeName() *string
}

// DataSourceConfig describes where agent traces are read from. Build it with
// one of the DataSourceConfig_From factories; it is immutable afterwards.
// The zero value has no variant and fails rendering.
type DataSourceConfig struct {
	cloudWatchLogs *CloudWatchLogsDataSource
}

// DataSourceConfig_FromCloudWatchLogs reads traces from explicitly named
// CloudWatch log groups. The config is stored verbatim.
func DataSourceConfig_FromCloudWatchLogs(config *CloudWatchLogsDataSource) DataSourceConfig {
	if config == nil {
		panic(&ValidationError{Message: "cloudWatchLogs data source config must not be nil"})
	}
	cfg := *config
	return DataSourceConfig{cloudWatchLogs: &cfg}
}

// DataSourceConfig_FromAgentRuntimeEndpoint derives the log group and service
// name from an AgentCore runtime and one of its endpoints. A nil endpoint
// name selects the DEFAULT endpoint. This is sugar over the CloudWatch Logs
// variant, not a distinct wire shape.
func DataSourceConfig_FromAgentRuntimeEndpoint(runtime IAgentRuntime, endpointName *string) DataSourceConfig {
	if runtime == nil {
		panic(&ValidationError{Message: "agent runtime must not be nil"})
	}
	endpoint := DefaultEndpointName
	if endpointName != nil {
		endpoint = *endpointName
	}
	return DataSourceConfig{cloudWatchLogs: &CloudWatchLogsDataSource{
		LogGroupNames: []string{fmt.Sprintf("%s%s-%s", runtimeLogGroupPrefix, *runtime.AgentRuntimeID(), endpoint)},
		ServiceNames:  []string{fmt.Sprintf("%s.%s", *runtime.AgentRuntimeName(), endpoint)},
	}}
}

// logGroupNames returns the configured log group names, nil when no variant
// is populated.
func (d DataSourceConfig) logGroupNames() []string {
	if d.cloudWatchLogs == nil {
		return nil
	}
	return d.cloudWatchLogs.LogGroupNames
}

func (d DataSourceConfig) populated() bool {
	return d.cloudWatchLogs != nil
}

// render produces the wire-format union object. A DataSourceConfig without
// any populated variant is a logic bug, reported as *RenderError.
func (d DataSourceConfig) render() (map[string]interface{}, error) {
	if d.cloudWatchLogs == nil {
		return nil, &RenderError{Type: "DataSourceConfig", Reason: "no data source variant is populated"}
	}
	return map[string]interface{}{
		"cloudWatchLogs": map[string]interface{}{
			"logGroupNames": d.cloudWatchLogs.LogGroupNames,
			"serviceNames":  d.cloudWatchLogs.ServiceNames,
		},
	}, nil
}
