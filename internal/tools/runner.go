// Package tools wraps subprocess execution behind a small interface so the
// schema regeneration path can be tested without a protoc binary on the host.
package tools

import (
	"bytes"
	"errors"
	"os/exec"
)

// CommandRunner abstracts external command execution.
type CommandRunner interface {
	Run(name string, args ...string) (stdout []byte, stderr []byte, exitCode int32, err error)
}

// ExecRunner executes commands on the local host.
type ExecRunner struct{}

func (r ExecRunner) Run(name string, args ...string) ([]byte, []byte, int32, error) {
	cmd := exec.Command(name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), stderr.Bytes(), 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stdout.Bytes(), stderr.Bytes(), int32(exitErr.ExitCode()), err
	}

	// exec.Error means the binary itself could not be started.
	exitCode := int32(1)
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		exitCode = 127
	}
	return stdout.Bytes(), stderr.Bytes(), exitCode, err
}
