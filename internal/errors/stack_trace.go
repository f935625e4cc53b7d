package errors

import "strings"

// StackFrame is one call frame: the name of the closure or macro that
// was applied.
type StackFrame struct {
	FunctionName string
}

// String renders a frame as its function name.
func (sf StackFrame) String() string {
	return sf.FunctionName
}

// StackTrace is a call stack, oldest frame (the outermost application)
// first.
type StackTrace []StackFrame

// String renders the trace most-recent-frame-first, one per line —
// the presentation a thrown exception's trace is printed in.
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		sb.WriteString(st[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// NewStackFrame builds a frame for a closure or macro application.
func NewStackFrame(functionName string) StackFrame {
	return StackFrame{FunctionName: functionName}
}
