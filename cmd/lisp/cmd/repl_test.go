package cmd

import (
	"strings"
	"testing"

	"github.com/lispkit/lisp/internal/reader"
)

func TestHistoryPathEndsInHistoryFile(t *testing.T) {
	path := historyPath()
	if !strings.HasSuffix(path, historyFileName) {
		t.Errorf("expected path to end in %q, got %q", historyFileName, path)
	}
}

func TestIsNoForm(t *testing.T) {
	if !isNoForm(reader.ErrNoForm) {
		t.Errorf("expected reader.ErrNoForm to be recognized as no-form")
	}
	if isNoForm(nil) {
		t.Errorf("nil should not be treated as no-form")
	}
}
