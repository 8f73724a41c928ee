package log

import (
	"bytes"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(&bytes.Buffer{})
		IndentationLevel = 0
		Verbose = false
		ResetErrors()
	})
	return &buf
}

func TestPrefixes(t *testing.T) {
	buf := capture(t)

	Log("plain %d\n", 1)
	Success("done\n")
	Warning("careful\n")

	expected := "plain 1\n" +
		"\033[32mSuccess: \033[0mdone\n" +
		"\033[33mWarning: \033[0mcareful\n"
	if buf.String() != expected {
		t.Errorf("unexpected output:\n%q\nexpected:\n%q", buf.String(), expected)
	}
}

func TestIndentation(t *testing.T) {
	buf := capture(t)

	IndentationLevel = 2
	Log("nested\n")

	if buf.String() != "    nested\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestDebugRequiresVerbose(t *testing.T) {
	buf := capture(t)

	Debug("hidden\n")
	if buf.Len() != 0 {
		t.Errorf("debug message printed without verbose: %q", buf.String())
	}

	Verbose = true
	Debug("shown\n")
	if buf.String() != "\033[36mDebug: \033[0mshown\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestErrorSetsFlag(t *testing.T) {
	buf := capture(t)

	if ErrorOccured() {
		t.Fatal("error flag set before any error")
	}
	Warning("not an error\n")
	if ErrorOccured() {
		t.Fatal("warning set the error flag")
	}
	Error("broken\n")
	if !ErrorOccured() {
		t.Fatal("error flag not set")
	}
	if buf.String() != "\033[33mWarning: \033[0mnot an error\n\033[31mError: \033[0mbroken\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
