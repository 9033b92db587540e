package onlineeval

import "fmt"

// FilterOperator compares a trace attribute against a filter value.
type FilterOperator string

// FilterOperator values supported by the control plane.
const (
	FilterOperatorEquals             FilterOperator = "EQUALS"
	FilterOperatorNotEquals          FilterOperator = "NOT_EQUALS"
	FilterOperatorGreaterThan        FilterOperator = "GREATER_THAN"
	FilterOperatorLessThan           FilterOperator = "LESS_THAN"
	FilterOperatorGreaterThanOrEqual FilterOperator = "GREATER_THAN_OR_EQUAL"
	FilterOperatorLessThanOrEqual    FilterOperator = "LESS_THAN_OR_EQUAL"
	FilterOperatorContains           FilterOperator = "CONTAINS"
	FilterOperatorNotContains        FilterOperator = "NOT_CONTAINS"
)

// FilterConfig narrows which agent traces are eligible for evaluation. At
// most 5 filters may be attached to one evaluation config.
type FilterConfig struct {
	// Key is the trace attribute the filter compares.
	Key string
	// Operator is the comparison applied between the attribute and Value.
	Operator FilterOperator
	// Value may be a string, a number, or a bool. Any other type is coerced
	// to its string form.
	Value interface{}
}

func (f FilterConfig) render() map[string]interface{} {
	return map[string]interface{}{
		"key":      f.Key,
		"operator": string(f.Operator),
		"value":    renderFilterValue(f.Value),
	}
}

// renderFilterValue produces the tagged union the wire format expects.
func renderFilterValue(v interface{}) map[string]interface{} {
	switch val := v.(type) {
	case string:
		return map[string]interface{}{"stringValue": val}
	case *string:
		return map[string]interface{}{"stringValue": *val}
	case bool:
		return map[string]interface{}{"booleanValue": val}
	case *bool:
		return map[string]interface{}{"booleanValue": *val}
	case float64:
		return map[string]interface{}{"doubleValue": val}
	case *float64:
		return map[string]interface{}{"doubleValue": *val}
	case float32:
		return map[string]interface{}{"doubleValue": float64(val)}
	case int:
		return map[string]interface{}{"doubleValue": float64(val)}
	case int64:
		return map[string]interface{}{"doubleValue": float64(val)}
	default:
		return map[string]interface{}{"stringValue": fmt.Sprintf("%v", v)}
	}
}
