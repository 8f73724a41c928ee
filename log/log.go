package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

// Verbose controls whether debug messages are being printed.
var Verbose bool

// IndentationLevel controls the amount of indentation of log messages.
var IndentationLevel = 0

// Spinner is shown while long-running external tools execute with captured output.
var Spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))

var errorOccured = false

const successField = "success"

var logger = newLogger(os.Stderr)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.Out = out
	l.Formatter = &prefixFormatter{}
	l.Level = logrus.DebugLevel
	return l
}

// prefixFormatter renders entries the way the console output always looked:
// indentation, a coloured level prefix and the message verbatim.
type prefixFormatter struct{}

func (f *prefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	indent := 0
	if level, ok := entry.Data["indent"].(int); ok {
		indent = level
	}

	prefix := ""
	switch entry.Level {
	case logrus.DebugLevel:
		prefix = "\033[36mDebug: \033[0m"
	case logrus.WarnLevel:
		prefix = "\033[33mWarning: \033[0m"
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		prefix = "\033[31mError: \033[0m"
	case logrus.InfoLevel:
		if _, ok := entry.Data[successField]; ok {
			prefix = "\033[32mSuccess: \033[0m"
		}
	}
	return []byte(strings.Repeat("  ", indent) + prefix + entry.Message), nil
}

// SetOutput redirects all log messages to `out`.
func SetOutput(out io.Writer) {
	logger.Out = out
}

// ErrorOccured reports whether any errors have occured.
func ErrorOccured() bool {
	return errorOccured
}

// ResetErrors clears the error flag. Only used between independent runs in tests.
func ResetErrors() {
	errorOccured = false
}

func entry() *logrus.Entry {
	return logger.WithField("indent", IndentationLevel)
}

// Log prints an indented and formatted message to os.Stderr.
func Log(format string, a ...interface{}) {
	entry().Infof(format, a...)
}

// Debug prints an indented and formatted debug message to os.Stderr if verbose output is selected.
func Debug(format string, a ...interface{}) {
	if Verbose {
		entry().Debugf(format, a...)
	}
}

// Success prints an indented and formatted success message to os.Stderr.
func Success(format string, a ...interface{}) {
	entry().WithField(successField, true).Infof(format, a...)
}

// Warning prints an indented and formatted warning to os.Stderr.
func Warning(format string, a ...interface{}) {
	entry().Warnf(format, a...)
}

// Error prints an indented and formatted error message to os.Stderr.
func Error(format string, a ...interface{}) {
	errorOccured = true
	entry().Errorf(format, a...)
}

// Fatal prints an indented and formatted error message to os.Stderr and terminates the program.
func Fatal(format string, a ...interface{}) {
	Error(format, a...)
	io.WriteString(logger.Out, "\033[31mA fatal error occured. Exiting...\033[0m\n")
	os.Exit(1)
}
