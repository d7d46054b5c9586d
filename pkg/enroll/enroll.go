// Package enroll walks a user through the identity lifecycle of an application
// client: registering an account, verifying it with the emailed code, and
// authenticating with the registered credentials.
//
// Each step is available on its own (Register, Verify, Authenticate), and Run
// drives all three in order. Steps print human-readable progress to Config.Out
// and log structured events to Config.Logger. Passwords only ever reach the
// logger in redacted form.
package enroll

import (
	"fmt"
	"io"

	"github.com/arya-analytics/enroll/pkg/identity"
	"github.com/arya-analytics/enroll/pkg/prompt"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// MissingClientID is returned when an Enroller is configured without a client
// identifier.
var MissingClientID = errors.New("[enroll] - client id is required")

type Config struct {
	// ClientID identifies the application client accounts are registered under.
	// Required.
	ClientID string
	// Identity is the remote identity provider. Required.
	Identity identity.Service
	// Prompter collects input from the user. Required.
	Prompter prompt.Prompter
	// Out receives progress and outcome messages. Defaults to io.Discard.
	Out io.Writer
	// Logger is the logger used by the Enroller. Defaults to a no-op logger.
	Logger *zap.Logger
	// ContinueOnVerificationFailure makes Run report a failed verification and
	// carry on to authentication instead of aborting. Input failures abort
	// regardless.
	ContinueOnVerificationFailure bool
	// ShowToken prints the full access token after authenticating. Otherwise
	// only an abbreviated form is shown.
	ShowToken bool
}

// Validate checks that all required fields are set.
func (cfg Config) Validate() error {
	if cfg.ClientID == "" {
		return MissingClientID
	}
	if cfg.Identity == nil {
		return errors.New("[enroll] - identity service is required")
	}
	if cfg.Prompter == nil {
		return errors.New("[enroll] - prompter is required")
	}
	return nil
}

// Enroller runs the registration, verification, and authentication steps
// against a single application client.
type Enroller struct {
	Config
}

// New validates the config and opens a new Enroller.
func New(cfg Config) (*Enroller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Enroller{Config: cfg}, nil
}

func (e *Enroller) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(e.Out, format, args...)
}
