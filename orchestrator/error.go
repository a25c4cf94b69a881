package orchestrator

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

type customError struct {
	error
}

type NotFoundError customError
type NoCollectionsFoundError customError
type NoRestorePointsFoundError customError
type TierLookupError customError
type DiskCreationError customError

// MutationError marks a failure inside the VM mutation sequence. Step names
// the transition that failed so the operator knows where to pick up.
type MutationError struct {
	error
	Step string
}

func NewNotFoundError(format string, args ...interface{}) NotFoundError {
	return NotFoundError{errors.Errorf(format, args...)}
}

func NewNoCollectionsFoundError(resourceGroup string) NoCollectionsFoundError {
	return NoCollectionsFoundError{errors.Errorf("no restore point collections exist in resource group '%s'", resourceGroup)}
}

func NewNoRestorePointsFoundError(resourceGroup string) NoRestorePointsFoundError {
	return NoRestorePointsFoundError{errors.Errorf("no restore points exist in any collection in resource group '%s'", resourceGroup)}
}

func NewTierLookupError(format string, args ...interface{}) TierLookupError {
	return TierLookupError{errors.Errorf(format, args...)}
}

func NewDiskCreationError(err error) DiskCreationError {
	return DiskCreationError{err}
}

func NewMutationError(step string, err error) MutationError {
	return MutationError{error: err, Step: step}
}

func ConvertErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return Error(errs)
}

func NewError(errs ...error) Error {
	if len(errs) == 0 {
		return nil
	}
	return Error(errs)
}

type Error []error

func (err Error) Error() string {
	return err.PrettyError(false)
}

func (err Error) PrettyError(includeStacktrace bool) string {
	if err.IsNil() {
		return ""
	}
	var buffer = bytes.NewBufferString("")

	fmt.Fprintf(buffer, "%d error%s occurred:\n", len(err), err.getPostFix())
	for index, err := range err {
		fmt.Fprintf(buffer, "error %d:\n", index+1)
		if includeStacktrace {
			fmt.Fprintf(buffer, "%+v\n", err)
		} else {
			fmt.Fprintf(buffer, "%+v\n", err.Error())
		}
	}
	return buffer.String()
}

func (err Error) getPostFix() string {
	errorPostfix := ""
	if len(err) > 1 {
		errorPostfix = "s"
	}
	return errorPostfix
}

func (err Error) IsNil() bool {
	return len(err) == 0
}

// ContainsMutationFailure reports whether the run failed after VM mutation
// had begun, the case that needs manual recovery.
func (err Error) ContainsMutationFailure() bool {
	for _, e := range err {
		if _, ok := e.(MutationError); ok {
			return true
		}
	}
	return false
}

// ProcessError renders an aggregate error for the CLI layer: the exit code,
// the operator-facing message and the stack trace to be written to a log
// file for diagnosis.
func ProcessError(errs Error) (int, string, string) {
	if errs.IsNil() {
		return 0, "", ""
	}
	return BuildExitCode(errs), errs.PrettyError(false), errs.PrettyError(true)
}

func BuildExitCode(errs Error) int {
	exitCode := 0

	for _, err := range errs {
		switch err.(type) {
		case TierLookupError:
			exitCode = exitCode | 1<<3
		case DiskCreationError:
			exitCode = exitCode | 1<<3
		case MutationError:
			exitCode = exitCode | 1<<4
		default:
			exitCode = exitCode | 1
		}
	}

	return exitCode
}
