// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package invoke runs an external dump utility and captures its output.
//
// The utilities we care about (xrdb, xmodmap) are one-shot: they print a
// dump on stdout and exit. Output blocks until the process exits, drains
// both streams fully, and observes the exit status before returning, so
// a caller never sees partially-read output.
package invoke

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Error reports a failed invocation: the utility is not on PATH, could
// not be spawned, or exited with a non-zero status.
type Error struct {
	Utility string
	Stderr  string
	Err     error
}

func (e *Error) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %s", e.Utility, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Utility, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Output runs the utility with the given arguments and returns its
// standard output as text. There is no timeout: a hung utility blocks
// the caller, per the synchronous model of the facades built on top.
func Output(utility string, args ...string) (string, error) {
	path, err := exec.LookPath(utility)
	if err != nil {
		return "", &Error{Utility: utility, Err: err}
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", &Error{Utility: utility, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}

	return stdout.String(), nil
}
