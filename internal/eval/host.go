package eval

// The interpreter core never touches a terminal, a filesystem, or the
// system clock directly. It consumes exactly these three narrow
// interfaces; cmd/lisp supplies the real implementations (a prompt
// read from stdin, os.ReadFile, time.Now), and tests supply fakes.

// ReadLiner prompts for one line of input, e.g. from a line editor
// with history. The second return is false at end of input.
type ReadLiner interface {
	ReadLine(prompt string) (string, bool)
}

// Slurper reads an entire file's contents as text.
type Slurper interface {
	Slurp(path string) (string, error)
}

// Clock reports the current time in milliseconds, for the `time-ms`
// builtin.
type Clock interface {
	NowMillis() int64
}

// ReadLinerFunc adapts a function to a ReadLiner.
type ReadLinerFunc func(prompt string) (string, bool)

func (f ReadLinerFunc) ReadLine(prompt string) (string, bool) { return f(prompt) }

// SlurperFunc adapts a function to a Slurper.
type SlurperFunc func(path string) (string, error)

func (f SlurperFunc) Slurp(path string) (string, error) { return f(path) }

// ClockFunc adapts a function to a Clock.
type ClockFunc func() int64

func (f ClockFunc) NowMillis() int64 { return f() }
