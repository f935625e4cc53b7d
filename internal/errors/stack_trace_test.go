package errors

import (
	"strings"
	"testing"
)

func TestStackFrameString(t *testing.T) {
	if got := (StackFrame{FunctionName: "count-down"}).String(); got != "count-down" {
		t.Errorf("expected %q, got %q", "count-down", got)
	}
}

func TestStackTraceString(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		trace    StackTrace
	}{
		{
			name:     "empty stack trace",
			trace:    StackTrace{},
			expected: "",
		},
		{
			name:     "single frame",
			trace:    StackTrace{{FunctionName: "main"}},
			expected: "main",
		},
		{
			name: "multiple frames, most recent first",
			trace: StackTrace{
				{FunctionName: "main"},
				{FunctionName: "process-data"},
				{FunctionName: "validate-input"},
			},
			expected: "validate-input\nprocess-data\nmain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.trace.String(); got != tt.expected {
				t.Errorf("expected:\n%s\ngot:\n%s", tt.expected, got)
			}
		})
	}
}

func TestNewStackFrame(t *testing.T) {
	frame := NewStackFrame("count-down")
	if frame.FunctionName != "count-down" {
		t.Errorf("unexpected frame: %+v", frame)
	}
}

func TestStackTraceRealWorldScenario(t *testing.T) {
	// Simulates (main) calling (process-data) calling (validate-input),
	// with the exception thrown inside validate-input.
	trace := StackTrace{
		NewStackFrame("main"),
		NewStackFrame("process-data"),
		NewStackFrame("validate-input"),
	}

	expected := "validate-input\nprocess-data\nmain"
	if got := trace.String(); got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestStackTraceStringFormatIsStable(t *testing.T) {
	trace := StackTrace{
		NewStackFrame("calls-a-bomb"),
		NewStackFrame("this-one-bombs"),
	}

	lines := strings.Split(trace.String(), "\n")
	if lines[0] != "this-one-bombs" {
		t.Errorf("first line: %q", lines[0])
	}
	if lines[1] != "calls-a-bomb" {
		t.Errorf("second line: %q", lines[1])
	}
}
