package enroll

import (
	"context"
	"time"

	"github.com/arya-analytics/enroll/pkg/identity"
	"github.com/arya-analytics/enroll/pkg/sec/password"
	"github.com/arya-analytics/enroll/pkg/sec/token"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Authenticate signs in with the given credentials and returns the issued
// tokens. Credentials missing a username or password are rejected before
// anything is sent to the identity service.
func (e *Enroller) Authenticate(ctx context.Context, creds identity.Credentials) (identity.Tokens, error) {
	if err := creds.Validate(); err != nil {
		return identity.Tokens{}, newStepError(Authentication, err)
	}
	tk, err := e.Identity.Authenticate(ctx, identity.AuthRequest{
		ClientID:    e.ClientID,
		Credentials: creds,
	})
	if err == nil && tk.AccessToken == "" {
		err = errors.Wrap(identity.NotAuthorized, "[enroll] - no access token issued")
	}
	if err != nil {
		e.Logger.Debug("authentication rejected", zap.String("username", creds.Username), zap.Error(err))
		e.printf("Authentication error: %v\n", err)
		return identity.Tokens{}, newStepError(Authentication, err)
	}
	e.Logger.Info("authenticated",
		zap.String("username", creds.Username),
		zap.Stringer("password", creds.Password),
		zap.Duration("expiresIn", tk.ExpiresIn),
	)
	e.printf("Authentication successful!\n")
	e.reportTokens(tk)
	return tk, nil
}

// Login prompts for a username and password and authenticates with them.
func (e *Enroller) Login(ctx context.Context) (identity.Tokens, error) {
	username, err := e.Prompter.Line(ctx, usernameLabel)
	if err != nil {
		return identity.Tokens{}, newStepError(Authentication, err)
	}
	pass, err := e.Prompter.Secret(ctx, passwordLabel)
	if err != nil {
		return identity.Tokens{}, newStepError(Authentication, err)
	}
	return e.Authenticate(ctx, identity.Credentials{Username: username, Password: password.Raw(pass)})
}

func (e *Enroller) reportTokens(tk identity.Tokens) {
	if e.ShowToken {
		e.printf("Access token is: %s\n", tk.AccessToken)
	} else {
		e.printf("Access token is: %s (use --show-token to print it in full)\n", token.Abbreviate(tk.AccessToken))
	}
	claims, err := token.Inspect(tk.AccessToken)
	if err != nil {
		// Opaque tokens are fine, there's just nothing more to show.
		e.Logger.Debug("access token is not a jwt", zap.Error(err))
		return
	}
	if claims.Username != "" {
		e.printf("Signed in as %s (sub %s).\n", claims.Username, claims.Subject)
	}
	if !claims.ExpiresAt.IsZero() {
		e.printf("Token expires at %s.\n", claims.ExpiresAt.Format(time.RFC3339))
	}
}
