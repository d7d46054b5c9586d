package enroll

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Step identifies one of the three steps of the workflow.
type Step uint8

const (
	Registration Step = iota + 1
	Verification
	Authentication
)

// String implements fmt.Stringer.
func (s Step) String() string {
	switch s {
	case Registration:
		return "registration"
	case Verification:
		return "verification"
	case Authentication:
		return "authentication"
	}
	return fmt.Sprintf("step(%d)", uint8(s))
}

var (
	// RegistrationFailed marks errors produced by the registration step.
	RegistrationFailed = errors.New("[enroll] - registration failed")
	// VerificationFailed marks errors produced by the verification step.
	VerificationFailed = errors.New("[enroll] - verification failed")
	// AuthenticationFailed marks errors produced by the authentication step.
	AuthenticationFailed = errors.New("[enroll] - authentication failed")
)

func (s Step) marker() error {
	switch s {
	case Registration:
		return RegistrationFailed
	case Verification:
		return VerificationFailed
	default:
		return AuthenticationFailed
	}
}

// StepError is returned by every step of the workflow. Err is the underlying
// cause: a prompt.InputFailed error if the user's input couldn't be read, or an
// identity rejection from the remote service.
type StepError struct {
	Step Step
	Err  error
}

// Error implements error.
func (e *StepError) Error() string { return fmt.Sprintf("[enroll] - %s: %v", e.Step, e.Err) }

// Unwrap returns the underlying cause.
func (e *StepError) Unwrap() error { return e.Err }

func newStepError(step Step, err error) error {
	return errors.Mark(&StepError{Step: step, Err: err}, step.marker())
}
