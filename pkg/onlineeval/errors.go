package onlineeval

import "fmt"

// ValidationError reports a configuration field that violates its static
// constraints. Construct factories panic with it, matching jsii construct
// semantics; the message joins every violation of the offending field with
// newlines.
type ValidationError struct {
	// Path is the construct tree path the error is scoped to. Empty when the
	// violation was detected outside a construct tree.
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// RenderError reports an internal defect: a value object was asked to render
// its wire form without any populated variant. It never results from user
// input.
type RenderError struct {
	Type   string
	Reason string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("cannot render %s: %s", e.Type, e.Reason)
}
