package builtins

import (
	"fmt"
	"os"
	"strings"

	"github.com/lispkit/lisp/internal/reader"
	"github.com/lispkit/lisp/internal/value"
)

// Host bundles the three narrow external interfaces spec §1/§6
// reserves for collaborators outside the core: line editing, file
// reading, and wall-clock time. cmd/lisp supplies the real thing;
// tests can supply fakes without the builtins package knowing it.
type Host struct {
	ReadLine  func(prompt string) (string, bool)
	Slurp     func(path string) (string, error)
	NowMillis func() int64
}

// DefaultHost wires Slurp to the real filesystem and leaves ReadLine
// and NowMillis as deterministic stand-ins (no interactive terminal,
// clock pinned to 0). Nothing in this module calls it: the CLI and the
// evaluator's fixture tests build their own host collaborators.
func DefaultHost() Host {
	return Host{
		ReadLine: func(prompt string) (string, bool) { return "", false },
		Slurp: func(path string) (string, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return "", err
			}
			return string(data), nil
		},
		NowMillis: func() int64 { return 0 },
	}
}

func registerIO(env value.Env, host Host) {
	def(env, "prn", func(args []value.Value) (value.Value, error) {
		fmt.Println(prStrJoin(args, true, " "))
		return value.NilValue, nil
	})
	def(env, "println", func(args []value.Value) (value.Value, error) {
		fmt.Println(prStrJoin(args, false, " "))
		return value.NilValue, nil
	})
	def(env, "pr-str", func(args []value.Value) (value.Value, error) {
		return value.String(prStrJoin(args, true, " ")), nil
	})
	def(env, "str", func(args []value.Value) (value.Value, error) {
		return value.String(prStrJoin(args, false, "")), nil
	})
	def(env, "read-string", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("read-string requires exactly 1 argument")
		}
		s, ok := args[0].(value.String)
		if !ok {
			return nil, value.Throwf("read-string expects a string")
		}
		v, err := reader.Read(string(s))
		if err != nil {
			if err == reader.ErrNoForm {
				return value.NilValue, nil
			}
			if rerr, ok := err.(*reader.Error); ok {
				return nil, value.Throw(value.String(rerr.Message))
			}
			return nil, value.Throw(value.String(err.Error()))
		}
		return v, nil
	})
	def(env, "slurp", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("slurp requires exactly 1 argument")
		}
		path, ok := args[0].(value.String)
		if !ok {
			return nil, value.Throwf("slurp expects a string path")
		}
		contents, err := host.Slurp(string(path))
		if err != nil {
			return nil, value.Throw(value.String(err.Error()))
		}
		return value.String(contents), nil
	})
	def(env, "readline", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, value.Throwf("readline requires exactly 1 argument")
		}
		prompt, ok := args[0].(value.String)
		if !ok {
			return nil, value.Throwf("readline expects a string prompt")
		}
		line, ok := host.ReadLine(string(prompt))
		if !ok {
			return value.NilValue, nil
		}
		return value.String(line), nil
	})
	def(env, "time-ms", func(args []value.Value) (value.Value, error) {
		if len(args) != 0 {
			return nil, value.Throwf("time-ms takes no arguments")
		}
		return value.Int(host.NowMillis()), nil
	})
}

func prStrJoin(args []value.Value, readable bool, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = value.Pr(a, readable)
	}
	return strings.Join(parts, sep)
}
