package enroll

import (
	"context"

	"github.com/arya-analytics/enroll/pkg/identity"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const codeLabel = "Please input verification code (check email): "

// Verify prompts for the code delivered during registration and confirms the
// account of the given username with it. The code is submitted exactly as
// typed.
func (e *Enroller) Verify(ctx context.Context, username string) error {
	if username == "" {
		return newStepError(
			Verification,
			errors.Wrapf(identity.MissingCredential, "%s is required", identity.UsernameKey),
		)
	}
	code, err := e.Prompter.Line(ctx, codeLabel)
	if err != nil {
		return newStepError(Verification, err)
	}
	if err := e.Identity.ConfirmSignUp(ctx, identity.ConfirmRequest{
		ClientID: e.ClientID,
		Username: username,
		Code:     code,
	}); err != nil {
		e.Logger.Debug("confirmation rejected", zap.String("username", username), zap.Error(err))
		e.printf("Verification error: %v\n", err)
		return newStepError(Verification, err)
	}
	e.Logger.Info("verified", zap.String("username", username))
	e.printf("Verification success!\n")
	return nil
}

// Confirm verifies an account outside of Run. If username is empty, the user is
// prompted for it first.
func (e *Enroller) Confirm(ctx context.Context, username string) error {
	if username == "" {
		var err error
		if username, err = e.Prompter.Line(ctx, usernameLabel); err != nil {
			return newStepError(Verification, err)
		}
	}
	return e.Verify(ctx, username)
}
