package shell

import (
	"errors"
	"io/fs"
	"os/exec"

	platformerrors "github.com/jmgilman/go/errors"
)

// Error codes for problems reported while running a pipeline. None of them
// stop the shell.
const (
	// CodeSyntax marks an empty segment in a pipeline.
	CodeSyntax platformerrors.ErrorCode = "SYNTAX_ERROR"
	// CodeBuiltinUsage marks a builtin called with bad arguments.
	CodeBuiltinUsage platformerrors.ErrorCode = "BUILTIN_USAGE"
	// CodeBuiltinOS marks a builtin whose system call failed.
	CodeBuiltinOS platformerrors.ErrorCode = "BUILTIN_OS_ERROR"
	// CodeSpawn marks an external program that could not be started.
	CodeSpawn platformerrors.ErrorCode = "SPAWN_FAILED"
	// CodeWait marks a child that could not be waited on.
	CodeWait platformerrors.ErrorCode = "WAIT_FAILED"
)

func newSyntaxError() error {
	return platformerrors.New(CodeSyntax, "syntax error near unexpected token '|'")
}

// Diagnostic formats err as it is shown on the shell's error stream:
// "message" or "message: os error text".
func Diagnostic(err error) string {
	var platformErr platformerrors.PlatformError
	if !errors.As(err, &platformErr) {
		return err.Error()
	}

	if cause := platformErr.Unwrap(); cause != nil {
		return platformErr.Message() + ": " + osErrorText(cause)
	}
	return platformErr.Message()
}

// osErrorText strips the operation and path that os and os/exec add so only
// the system's description of the failure remains.
func osErrorText(err error) string {
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		err = execErr.Err
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}

	return err.Error()
}
