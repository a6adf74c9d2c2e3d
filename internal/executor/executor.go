package executor

import (
	"context"
	"errors"
	"os/exec"
)

// Result is the outcome of a finished command
type Result struct {
	ExitCode int
	Output   []byte // combined stdout and stderr
}

// Success reports whether the command exited with status 0
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// CommandExecutor is an interface for executing system commands
type CommandExecutor interface {
	// Execute runs a command to completion and captures its exit status and output.
	// A non-zero exit is reported in the Result, not as an error; the error is
	// reserved for commands that could not be started or were cancelled.
	Execute(ctx context.Context, name string, args ...string) (*Result, error)

	// LookPath searches for an executable in the directories named by the PATH
	LookPath(file string) (string, error)
}

// SystemExecutor implements CommandExecutor using os/exec
type SystemExecutor struct{}

// NewSystemExecutor creates a new SystemExecutor
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{}
}

// Execute runs a command and waits for it to exit
func (e *SystemExecutor) Execute(ctx context.Context, name string, args ...string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err == nil {
		return &Result{ExitCode: 0, Output: output}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return &Result{ExitCode: exitErr.ExitCode(), Output: output}, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return nil, err
}

// LookPath searches for an executable
func (e *SystemExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// MockExecutor is a mock implementation for testing
type MockExecutor struct {
	ExecuteFunc  func(name string, args ...string) (*Result, error)
	LookPathFunc func(file string) (string, error)
	Calls        []CommandCall
}

// CommandCall records a command execution for verification
type CommandCall struct {
	Name string
	Args []string
}

// Execute records the call and invokes the mock function if set
func (m *MockExecutor) Execute(ctx context.Context, name string, args ...string) (*Result, error) {
	m.Calls = append(m.Calls, CommandCall{Name: name, Args: args})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args...)
	}
	return &Result{}, nil
}

// LookPath calls the mock function
func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}
