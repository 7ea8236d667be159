package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrFileAccess       = errors.New("file access")
	ErrMalformedCommand = errors.New("malformed command")
	ErrDataParse        = errors.New("data parse")
	ErrInvalidConfig    = errors.New("invalid config")

	// ErrQuit is returned from any input point where the user typed the
	// cancellation keyword. It terminates the whole run.
	ErrQuit = errors.New("quit requested")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindFileAccess       ErrorKind = "file_access"
	KindMalformedCommand ErrorKind = "malformed_command"
	KindDataParse        ErrorKind = "data_parse"
	KindInvalidConfig    ErrorKind = "invalid_config"
	KindRender           ErrorKind = "render"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// MalformedCommand builds the error raised for an unusable script line.
func MalformedCommand(op, line, msg string) error {
	return &OpError{
		Op:   op,
		Kind: KindMalformedCommand,
		Err:  &CommandError{Line: line, Msg: msg},
	}
}

// CommandError carries the offending command line so it can be echoed back.
type CommandError struct {
	Line string
	Msg  string
}

func (e *CommandError) Error() string {
	if e.Line == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %q", e.Msg, e.Line)
}

func (e *CommandError) Unwrap() error { return ErrMalformedCommand }
