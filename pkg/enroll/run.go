package enroll

import (
	"context"

	"github.com/arya-analytics/enroll/pkg/identity"
	"github.com/arya-analytics/enroll/pkg/prompt"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// State is the position of Run in the workflow. Run only ever moves forward.
type State uint8

const (
	Registering State = iota
	Verifying
	Authenticating
	Done
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Registering:
		return "registering"
	case Verifying:
		return "verifying"
	case Authenticating:
		return "authenticating"
	default:
		return "done"
	}
}

// Result is the outcome of Run. On failure, State is the state the workflow
// failed in and the fields for later states are zero.
type Result struct {
	State       State
	Credentials identity.Credentials
	SignUp      identity.SignUpResult
	// Verified is true if the account was confirmed, either by Verify or by the
	// identity service at sign up.
	Verified bool
	Tokens   identity.Tokens
}

// Run registers, verifies, and authenticates a new account, in that order.
//
// A registration failure aborts immediately. A verification failure aborts
// unless ContinueOnVerificationFailure is set, in which case it is reported and
// authentication runs anyway. The authentication outcome is the outcome of Run.
func (e *Enroller) Run(ctx context.Context) (Result, error) {
	var (
		r   = Result{State: Registering}
		err error
	)
	if r.Credentials, r.SignUp, err = e.Register(ctx); err != nil {
		return r, err
	}

	r.State = Verifying
	if r.SignUp.Confirmed {
		e.printf("User already confirmed, skipping verification.\n")
		r.Verified = true
	} else if err = e.Verify(ctx, r.Credentials.Username); err == nil {
		r.Verified = true
	} else if e.continueAfterVerification(err) {
		e.Logger.Warn("verification failed, continuing to authentication", zap.Error(err))
	} else {
		return r, err
	}

	r.State = Authenticating
	if r.Tokens, err = e.Authenticate(ctx, r.Credentials); err != nil {
		return r, err
	}
	r.State = Done
	return r, nil
}

func (e *Enroller) continueAfterVerification(err error) bool {
	return e.ContinueOnVerificationFailure && !errors.Is(err, prompt.InputFailed)
}
