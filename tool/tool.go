package tool

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/pkg/errors"
)

// Command is a single invocation of an external tool.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current one.
	Dir string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Options control where a command's output goes.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Quiet captures the output and shows the spinner instead. The captured output is
	// printed if the command fails.
	Quiet bool
}

// Run executes `cmd` and waits for it. The first Ctrl-C waits for the tool to finish, a second
// one within a second kills the whole process group.
func Run(cmd Command, opts Options) error {
	log.Log("Running command: %s\n", cmd)

	var captured bytes.Buffer
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	if opts.Quiet {
		stdout, stderr = &captured, &captured
	}

	execCmd := exec.Command(cmd.Name, cmd.Args...)
	execCmd.Dir = cmd.Dir
	execCmd.Stdout = stdout
	execCmd.Stderr = stderr
	if err := execCmd.Start(); err != nil {
		return errors.Wrapf(err, "starting %s failed", cmd.Name)
	}

	if opts.Quiet {
		log.Spinner.Start()
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGINT)
	done := make(chan struct{})
	go interruptHandler(cmd.Name, signals, done)

	err := execCmd.Wait()
	signal.Stop(signals)
	close(done)
	if opts.Quiet {
		log.Spinner.Stop()
	}

	if err != nil {
		if opts.Quiet && captured.Len() > 0 {
			log.Log("%s", captured.String())
		}
		return errors.Wrapf(err, "running %s failed", cmd.Name)
	}
	return nil
}

// Sequence runs the commands in order and stops at the first failure.
func Sequence(cmds []Command, opts Options) error {
	for _, cmd := range cmds {
		if err := Run(cmd, opts); err != nil {
			return err
		}
	}
	return nil
}

func interruptHandler(name string, signals <-chan os.Signal, done <-chan struct{}) {
	select {
	case <-signals:
	case <-done:
		return
	}
	fmt.Printf("SIGINT: Waiting for %s to finish...\n", name)

	var lastSignalTime *time.Time
	for {
		select {
		case <-signals:
		case <-done:
			return
		}

		currentTime := time.Now()
		if lastSignalTime == nil || currentTime.Sub(*lastSignalTime) > 1*time.Second {
			fmt.Printf("SIGINT: Press Ctrl-C again within 1 sec to force-kill labtool and %s...\n", name)
			lastSignalTime = &currentTime
		} else {
			fmt.Printf("SIGINT: Killing labtool, %s and its subprocesses...\n", name)
			// Negative PID kills the whole process group. This is only safe while labtool
			// leads the group.
			if err := syscall.Kill(-syscall.Getpid(), syscall.SIGKILL); err != nil {
				fmt.Printf("Failed to kill labtool and %s: %s\n", name, err)
			}
		}
	}
}

// ExitCode returns the exit status to relay for an error returned by Run.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
