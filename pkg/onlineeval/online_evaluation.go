package onlineeval

import (
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatch"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/customresources"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/rezabekf/aws-cdk/internal/validate"
)

const (
	metricNamespace     = "AWS/BedrockAgentCore"
	servicePrincipal    = "bedrock-agentcore.amazonaws.com"
	controlPlaneService = "bedrock-agentcore-control"
	resourceTypeName    = "Custom::BedrockAgentCoreOnlineEvaluationConfig"
	configResource      = "online-evaluation-config"

	defaultSamplingPercentage    = 10.0
	defaultSessionTimeoutMinutes = 15.0
)

// OnlineEvaluationProps configures a managed online evaluation config.
type OnlineEvaluationProps struct {
	// ConfigName names the config. It must match ^[a-zA-Z][a-zA-Z0-9_]{0,47}$.
	ConfigName string
	// Evaluators score each sampled trace; between 1 and 10 are required.
	Evaluators []EvaluatorReference
	// DataSource tells the control plane where to read agent traces from.
	DataSource DataSourceConfig
	// ExecutionRole is assumed by the evaluation job to read traces and
	// invoke judge models. When nil, a role with the required statements is
	// created and owned by this construct.
	ExecutionRole awsiam.IRole
	// Description is optional and limited to 200 characters.
	Description *string
	// SamplingPercentage selects the fraction of eligible traces to
	// evaluate, between 0.01 and 100. Defaults to 10.
	SamplingPercentage *float64
	// Filters narrow eligible traces; at most 5.
	Filters []FilterConfig
	// SessionTimeoutMinutes is the inactivity window after which a session
	// is complete and eligible, between 1 and 1440. Defaults to 15.
	SessionTimeoutMinutes *float64
	// EnableOnCreate starts evaluation as soon as the config exists.
	// Defaults to true.
	EnableOnCreate *bool
}

// OnlineEvaluationAttributes is the explicit bundle accepted by
// OnlineEvaluation_FromAttributes. At least one of ConfigArn and ConfigID
// must be set; the other is derived.
type OnlineEvaluationAttributes struct {
	ConfigArn        *string
	ConfigID         *string
	ExecutionRoleArn *string
}

// resourceKind tags an OnlineEvaluation as lifecycle-managed or imported.
type resourceKind int

const (
	kindManaged resourceKind = iota
	kindImported
)

// OnlineEvaluation declaratively describes a Bedrock AgentCore online
// evaluation config. A managed instance validates its props, resolves an
// execution role, and registers the custom resource that performs the
// create/update/delete calls against the control plane. Imported instances
// carry identity only; their generated attributes are unknown.
type OnlineEvaluation struct {
	constructs.Construct

	kind            resourceKind
	configName      *string
	configID        *string
	configArn       *string
	status          *string
	executionStatus *string
	executionRole   awsiam.IRole
}

// NewOnlineEvaluation creates a managed online evaluation config. It panics
// with *ValidationError when a field violates its constraints; the first
// violating field aborts construction.
func NewOnlineEvaluation(scope constructs.Construct, id string, props *OnlineEvaluationProps) *OnlineEvaluation {
	this := &OnlineEvaluation{
		kind: kindManaged,
	}
	constructs.NewConstruct_Override(this, scope, jsii.String(id))
	checkProps(this, props)

	stack := awscdk.Stack_Of(this)

	// A caller-supplied role is shared: its lifecycle stays with the caller.
	role := props.ExecutionRole
	if role == nil {
		role = newExecutionRole(this, stack)
	}
	this.executionRole = role
	this.configName = jsii.String(props.ConfigName)

	dataSource, err := props.DataSource.render()
	if err != nil {
		panic(err)
	}

	enable := true
	if props.EnableOnCreate != nil {
		enable = *props.EnableOnCreate
	}
	executionStatus := "ENABLED"
	if !enable {
		executionStatus = "DISABLED"
	}

	evaluators := make([]map[string]interface{}, len(props.Evaluators))
	for i, e := range props.Evaluators {
		evaluators[i] = e.render()
	}

	rule := renderRule(props)

	createParams := map[string]interface{}{
		"onlineEvaluationConfigName": props.ConfigName,
		"evaluators":                 evaluators,
		"dataSourceConfig":           dataSource,
		"evaluationExecutionRoleArn": role.RoleArn(),
		"enableOnCreate":             enable,
		"rule":                       rule,
	}
	if props.Description != nil {
		createParams["description"] = *props.Description
	}

	// The update call is keyed by the physical id and carries an explicit
	// executionStatus instead of the create-time boolean flag; the executor
	// resolves the asymmetry.
	updateParams := map[string]interface{}{
		"onlineEvaluationConfigId":   customresources.NewPhysicalResourceIdReference(),
		"evaluators":                 evaluators,
		"dataSourceConfig":           dataSource,
		"evaluationExecutionRoleArn": role.RoleArn(),
		"executionStatus":            executionStatus,
		"rule":                       rule,
	}
	if props.Description != nil {
		updateParams["description"] = *props.Description
	}

	cr := customresources.NewAwsCustomResource(this, jsii.String("Resource"), &customresources.AwsCustomResourceProps{
		ResourceType:        jsii.String(resourceTypeName),
		InstallLatestAwsSdk: jsii.Bool(false),
		Policy:              executorPolicy(stack, role),
		OnCreate: &customresources.AwsSdkCall{
			Service:            jsii.String(controlPlaneService),
			Action:             jsii.String("CreateOnlineEvaluationConfig"),
			Parameters:         createParams,
			PhysicalResourceId: customresources.PhysicalResourceId_FromResponse(jsii.String("onlineEvaluationConfigId")),
		},
		OnUpdate: &customresources.AwsSdkCall{
			Service:            jsii.String(controlPlaneService),
			Action:             jsii.String("UpdateOnlineEvaluationConfig"),
			Parameters:         updateParams,
			PhysicalResourceId: customresources.PhysicalResourceId_FromResponse(jsii.String("onlineEvaluationConfigId")),
		},
		OnDelete: &customresources.AwsSdkCall{
			Service: jsii.String(controlPlaneService),
			Action:  jsii.String("DeleteOnlineEvaluationConfig"),
			Parameters: map[string]interface{}{
				"onlineEvaluationConfigId": customresources.NewPhysicalResourceIdReference(),
			},
		},
	})

	this.configID = cr.GetResponseField(jsii.String("onlineEvaluationConfigId"))
	this.configArn = cr.GetResponseField(jsii.String("onlineEvaluationConfigArn"))
	this.status = cr.GetResponseField(jsii.String("status"))
	this.executionStatus = cr.GetResponseField(jsii.String("executionStatus"))
	return this
}

// OnlineEvaluation_FromConfigId imports an existing config by id. The ARN is
// synthesized from the stack's partition, region, and account.
func OnlineEvaluation_FromConfigId(scope constructs.Construct, id string, configID string) *OnlineEvaluation {
	this := newImported(scope, id)
	this.configID = jsii.String(configID)
	this.configArn = awscdk.Stack_Of(this).FormatArn(&awscdk.ArnComponents{
		Service:      jsii.String("bedrock-agentcore"),
		Resource:     jsii.String(configResource),
		ResourceName: jsii.String(configID),
		ArnFormat:    awscdk.ArnFormat_SLASH_RESOURCE_NAME,
	})
	return this
}

// OnlineEvaluation_FromConfigArn imports an existing config by ARN. The id
// is the ARN's trailing resource-name segment.
func OnlineEvaluation_FromConfigArn(scope constructs.Construct, id string, configArn string) *OnlineEvaluation {
	this := newImported(scope, id)
	this.configArn = jsii.String(configArn)
	parts := awscdk.Stack_Of(this).SplitArn(jsii.String(configArn), awscdk.ArnFormat_SLASH_RESOURCE_NAME)
	this.configID = parts.ResourceName
	return this
}

// OnlineEvaluation_FromAttributes imports an existing config from an
// explicit attribute bundle.
func OnlineEvaluation_FromAttributes(scope constructs.Construct, id string, attrs *OnlineEvaluationAttributes) *OnlineEvaluation {
	this := newImported(scope, id)
	stack := awscdk.Stack_Of(this)

	this.configArn = attrs.ConfigArn
	this.configID = attrs.ConfigID
	switch {
	case this.configArn == nil && this.configID != nil:
		this.configArn = stack.FormatArn(&awscdk.ArnComponents{
			Service:      jsii.String("bedrock-agentcore"),
			Resource:     jsii.String(configResource),
			ResourceName: this.configID,
			ArnFormat:    awscdk.ArnFormat_SLASH_RESOURCE_NAME,
		})
	case this.configID == nil && this.configArn != nil:
		this.configID = stack.SplitArn(this.configArn, awscdk.ArnFormat_SLASH_RESOURCE_NAME).ResourceName
	case this.configArn == nil && this.configID == nil:
		panic(&ValidationError{
			Path:    *this.Node().Path(),
			Message: "either configArn or configId is required",
		})
	}

	if attrs.ExecutionRoleArn != nil {
		this.executionRole = awsiam.Role_FromRoleArn(this, jsii.String("ExecutionRole"), attrs.ExecutionRoleArn, nil)
	}
	return this
}

func newImported(scope constructs.Construct, id string) *OnlineEvaluation {
	this := &OnlineEvaluation{
		kind: kindImported,
	}
	constructs.NewConstruct_Override(this, scope, jsii.String(id))
	return this
}

// ConfigName returns the configured name, nil for imported instances.
func (e *OnlineEvaluation) ConfigName() *string {
	return e.configName
}

// ConfigID returns the config id: a deploy-time token for managed instances,
// the supplied or ARN-derived id for imported ones.
func (e *OnlineEvaluation) ConfigID() *string {
	return e.configID
}

// ConfigArn returns the config ARN.
func (e *OnlineEvaluation) ConfigArn() *string {
	return e.configArn
}

// Status returns the config lifecycle status. Imported instances return nil:
// the status is unknown, not fetched.
func (e *OnlineEvaluation) Status() *string {
	switch e.kind {
	case kindManaged:
		return e.status
	case kindImported:
		return nil
	}
	return nil
}

// ExecutionStatus returns whether evaluation is running. Imported instances
// return nil.
func (e *OnlineEvaluation) ExecutionStatus() *string {
	switch e.kind {
	case kindManaged:
		return e.executionStatus
	case kindImported:
		return nil
	}
	return nil
}

// ExecutionRole returns the role the evaluation job assumes. It is nil for
// instances imported without an execution role ARN.
func (e *OnlineEvaluation) ExecutionRole() awsiam.IRole {
	return e.executionRole
}

// Grant allows the given actions on this config's ARN.
func (e *OnlineEvaluation) Grant(grantee awsiam.IGrantable, actions ...string) awsiam.Grant {
	return awsiam.Grant_AddToPrincipal(&awsiam.GrantOnPrincipalOptions{
		Grantee:      grantee,
		Actions:      jsii.Strings(actions...),
		ResourceArns: &[]*string{e.configArn},
	})
}

// GrantAdmin allows the full config lifecycle on this config.
func (e *OnlineEvaluation) GrantAdmin(grantee awsiam.IGrantable) awsiam.Grant {
	return e.Grant(grantee, AdminActions...)
}

// GrantRead allows describing and listing this config.
func (e *OnlineEvaluation) GrantRead(grantee awsiam.IGrantable) awsiam.Grant {
	return e.Grant(grantee, ReadActions...)
}

// Metric builds a CloudWatch metric for this config in the
// AWS/BedrockAgentCore namespace, dimensioned by config id.
func (e *OnlineEvaluation) Metric(metricName string, props *awscloudwatch.MetricOptions) awscloudwatch.Metric {
	return e.metric(metricName, "", props)
}

// MetricEvaluationCount counts evaluated traces. Default statistic: Sum.
func (e *OnlineEvaluation) MetricEvaluationCount(props *awscloudwatch.MetricOptions) awscloudwatch.Metric {
	return e.metric("EvaluationCount", "Sum", props)
}

// MetricEvaluationErrors counts failed evaluations. Default statistic: Sum.
func (e *OnlineEvaluation) MetricEvaluationErrors(props *awscloudwatch.MetricOptions) awscloudwatch.Metric {
	return e.metric("EvaluationErrors", "Sum", props)
}

// MetricEvaluationLatency measures evaluation duration. Default statistic:
// Average.
func (e *OnlineEvaluation) MetricEvaluationLatency(props *awscloudwatch.MetricOptions) awscloudwatch.Metric {
	return e.metric("EvaluationLatency", "Average", props)
}

func (e *OnlineEvaluation) metric(name, statistic string, props *awscloudwatch.MetricOptions) awscloudwatch.Metric {
	metricProps := &awscloudwatch.MetricProps{
		Namespace:  jsii.String(metricNamespace),
		MetricName: jsii.String(name),
		DimensionsMap: &map[string]*string{
			"OnlineEvaluationConfigId": e.configID,
		},
	}
	if statistic != "" {
		metricProps.Statistic = jsii.String(statistic)
	}
	m := awscloudwatch.NewMetric(metricProps)
	if props != nil {
		m = m.With(props)
	}
	return m
}

// checkProps runs every validator in a fixed order. The first field with
// violations aborts construction; a field's own violations are joined with
// newlines into one error.
func checkProps(scope *OnlineEvaluation, props *OnlineEvaluationProps) {
	if props == nil {
		report(scope, []string{"props are required"})
		return
	}
	report(scope, validate.ConfigName(props.ConfigName))
	report(scope, validate.Description(props.Description))
	report(scope, validate.EvaluatorCount(len(props.Evaluators)))
	report(scope, validate.SamplingPercentage(props.SamplingPercentage))
	report(scope, validate.FilterCount(len(props.Filters)))
	report(scope, validate.SessionTimeoutMinutes(props.SessionTimeoutMinutes))
	if props.DataSource.populated() {
		report(scope, validate.LogGroupNameCount(len(props.DataSource.logGroupNames())))
	}
}

func report(scope *OnlineEvaluation, errs []string) {
	if len(errs) == 0 {
		return
	}
	panic(&ValidationError{
		Path:    *scope.Node().Path(),
		Message: strings.Join(errs, "\n"),
	})
}

func renderRule(props *OnlineEvaluationProps) map[string]interface{} {
	sampling := defaultSamplingPercentage
	if props.SamplingPercentage != nil {
		sampling = *props.SamplingPercentage
	}
	timeout := defaultSessionTimeoutMinutes
	if props.SessionTimeoutMinutes != nil {
		timeout = *props.SessionTimeoutMinutes
	}
	rule := map[string]interface{}{
		"samplingConfig": map[string]interface{}{"samplingPercentage": sampling},
		"sessionConfig":  map[string]interface{}{"sessionTimeoutMinutes": timeout},
	}
	if len(props.Filters) > 0 {
		filters := make([]map[string]interface{}, len(props.Filters))
		for i, f := range props.Filters {
			filters[i] = f.render()
		}
		rule["filters"] = filters
	}
	return rule
}

// newExecutionRole synthesizes the role the evaluation job assumes. The
// trust policy restricts the service principal to this account's evaluator
// and online-evaluation-config resources.
func newExecutionRole(scope constructs.Construct, stack awscdk.Stack) awsiam.IRole {
	sourceArns := []*string{
		stack.FormatArn(&awscdk.ArnComponents{
			Service:      jsii.String("bedrock-agentcore"),
			Resource:     jsii.String("evaluator"),
			ResourceName: jsii.String("*"),
			ArnFormat:    awscdk.ArnFormat_SLASH_RESOURCE_NAME,
		}),
		stack.FormatArn(&awscdk.ArnComponents{
			Service:      jsii.String("bedrock-agentcore"),
			Resource:     jsii.String(configResource),
			ResourceName: jsii.String("*"),
			ArnFormat:    awscdk.ArnFormat_SLASH_RESOURCE_NAME,
		}),
	}

	role := awsiam.NewRole(scope, jsii.String("ExecutionRole"), &awsiam.RoleProps{
		AssumedBy: awsiam.NewServicePrincipal(jsii.String(servicePrincipal), &awsiam.ServicePrincipalOpts{
			Conditions: &map[string]interface{}{
				"StringEquals": map[string]interface{}{"aws:SourceAccount": stack.Account()},
				"ArnLike":      map[string]interface{}{"aws:SourceArn": sourceArns},
			},
		}),
		Description: jsii.String("Execution role assumed by Bedrock AgentCore online evaluation jobs"),
	})

	role.AddToPolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Sid:     jsii.String("CloudWatchLogReadStatement"),
		Actions: jsii.Strings(CloudWatchLogsReadActions...),
		Resources: &[]*string{
			logGroupArn(stack, "*"),
		},
	}))
	role.AddToPolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Sid:     jsii.String("CloudWatchLogWriteStatement"),
		Actions: jsii.Strings(CloudWatchLogsWriteActions...),
		Resources: &[]*string{
			logGroupArn(stack, "/aws/bedrock-agentcore/evaluations/*"),
		},
	}))
	role.AddToPolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Sid:     jsii.String("CloudWatchIndexPolicyStatement"),
		Actions: jsii.Strings(CloudWatchIndexPolicyActions...),
		Resources: &[]*string{
			logGroupArn(stack, "aws/spans"),
			logGroupArn(stack, "aws/spans:*"),
		},
	}))
	role.AddToPolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Sid:     jsii.String("BedrockInvokeStatement"),
		Actions: jsii.Strings(BedrockModelInvokeActions...),
		Resources: &[]*string{
			stack.FormatArn(&awscdk.ArnComponents{
				Service:      jsii.String("bedrock"),
				Account:      jsii.String(""),
				Resource:     jsii.String("foundation-model"),
				ResourceName: jsii.String("*"),
				ArnFormat:    awscdk.ArnFormat_SLASH_RESOURCE_NAME,
			}),
			stack.FormatArn(&awscdk.ArnComponents{
				Service:      jsii.String("bedrock"),
				Resource:     jsii.String("inference-profile"),
				ResourceName: jsii.String("*"),
				ArnFormat:    awscdk.ArnFormat_SLASH_RESOURCE_NAME,
			}),
		},
	}))
	return role
}

// executorPolicy grants the custom-resource executor the config lifecycle,
// role passing, and the log-group index-policy access the create call
// verifies.
func executorPolicy(stack awscdk.Stack, role awsiam.IRole) customresources.AwsCustomResourcePolicy {
	configWildcard := stack.FormatArn(&awscdk.ArnComponents{
		Service:      jsii.String("bedrock-agentcore"),
		Resource:     jsii.String(configResource),
		ResourceName: jsii.String("*"),
		ArnFormat:    awscdk.ArnFormat_SLASH_RESOURCE_NAME,
	})
	return customresources.AwsCustomResourcePolicy_FromStatements(&[]awsiam.PolicyStatement{
		awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
			Actions:   jsii.Strings(AdminActions...),
			Resources: &[]*string{configWildcard},
		}),
		awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
			Actions:   jsii.Strings("iam:PassRole"),
			Resources: &[]*string{role.RoleArn()},
		}),
		awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
			Actions:   jsii.Strings("logs:DescribeIndexPolicies", "logs:PutIndexPolicy", "logs:CreateLogGroup"),
			Resources: &[]*string{logGroupArn(stack, "*")},
		}),
	})
}

func logGroupArn(stack awscdk.Stack, name string) *string {
	return stack.FormatArn(&awscdk.ArnComponents{
		Service:      jsii.String("logs"),
		Resource:     jsii.String("log-group"),
		ResourceName: jsii.String(name),
		ArnFormat:    awscdk.ArnFormat_COLON_RESOURCE_NAME,
	})
}
