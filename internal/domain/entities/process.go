package entities

import (
	"fmt"
	"strings"
)

// ProcessResult is the outcome of running an external command.
type ProcessResult struct {
	Command  []string
	ExitCode int
	Signal   string
	Stdout   string
	Stderr   string
	SpawnErr error
}

// Failed reports a spawn error, a signal or a non-zero exit.
func (r ProcessResult) Failed() bool {
	return r.SpawnErr != nil || r.Signal != "" || r.ExitCode != 0
}

// Err describes a failed run, or returns nil. The trimmed stderr, or stdout when
// stderr is empty, is appended so the cause reaches the user.
func (r ProcessResult) Err() error {
	if !r.Failed() {
		return nil
	}
	command := strings.Join(r.Command, " ")
	var err error
	switch {
	case r.SpawnErr != nil:
		err = fmt.Errorf("%w: %s: %w", ErrCommandFailed, command, r.SpawnErr)
	case r.Signal != "":
		err = fmt.Errorf("%w: %s was killed by signal %s", ErrCommandFailed, command, r.Signal)
	default:
		err = fmt.Errorf("%w: %s exited with code %d", ErrCommandFailed, command, r.ExitCode)
	}
	if output := r.Output(); output != "" {
		return fmt.Errorf("%w\nOutput:\n%s", err, output)
	}
	return err
}

// Output returns the trimmed stderr, falling back to stdout.
func (r ProcessResult) Output() string {
	if stderr := strings.TrimSpace(r.Stderr); stderr != "" {
		return stderr
	}
	return strings.TrimSpace(r.Stdout)
}
