package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
)

// historyFileName is stored in the user's home directory, mirroring
// the shell convention of a dotfile history (spec §6: the REPL keeps
// line history across invocations).
const historyFileName = ".lisp_history"

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFileName
	}
	return filepath.Join(home, historyFileName)
}

func runRepl(interp *Interpreter) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "user> ",
		HistoryFile:     historyPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "^D",
	})
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}
	defer rl.Close()

	interp.BindArgv(nil)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		out, evalErr := interp.Rep(line)
		if evalErr != nil {
			if isNoForm(evalErr) {
				continue
			}
			fmt.Fprintln(os.Stderr, describeError(evalErr, line, "<repl>"))
			continue
		}
		fmt.Println(out)
	}
}
