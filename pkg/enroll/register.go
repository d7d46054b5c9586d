package enroll

import (
	"context"

	"github.com/arya-analytics/enroll/pkg/identity"
	"github.com/arya-analytics/enroll/pkg/sec/password"
	"go.uber.org/zap"
)

const (
	emailLabel    = "Please input email: "
	usernameLabel = "Please input username: "
	passwordLabel = "Please input password (AWS Cognito default password requirements): "
)

// Register prompts for an email, username, and password, and signs up a new
// account with the email attached as a user attribute. The returned credentials
// hold exactly the username and password that were submitted.
func (e *Enroller) Register(ctx context.Context) (identity.Credentials, identity.SignUpResult, error) {
	email, err := e.Prompter.Line(ctx, emailLabel)
	if err != nil {
		return identity.Credentials{}, identity.SignUpResult{}, newStepError(Registration, err)
	}
	username, err := e.Prompter.Line(ctx, usernameLabel)
	if err != nil {
		return identity.Credentials{}, identity.SignUpResult{}, newStepError(Registration, err)
	}
	pass, err := e.Prompter.Secret(ctx, passwordLabel)
	if err != nil {
		return identity.Credentials{}, identity.SignUpResult{}, newStepError(Registration, err)
	}
	creds := identity.Credentials{Username: username, Password: password.Raw(pass)}

	res, err := e.Identity.SignUp(ctx, identity.SignUpRequest{
		ClientID:    e.ClientID,
		Credentials: creds,
		Attributes:  []identity.Attribute{{Name: identity.EmailAttribute, Value: email}},
	})
	if err != nil {
		e.Logger.Debug("sign up rejected", zap.String("username", username), zap.Error(err))
		e.printf("Registration error: %v\n", err)
		return identity.Credentials{}, identity.SignUpResult{}, newStepError(Registration, err)
	}

	e.Logger.Info("registered",
		zap.String("username", creds.Username),
		zap.Stringer("password", creds.Password),
		zap.String("userSub", res.UserSub),
		zap.Bool("confirmed", res.Confirmed),
	)
	e.printf("Signup successful!\n")
	if d := res.Delivery; d.Destination != "" {
		e.printf("Verification code sent by %s to %s.\n", d.Medium, d.Destination)
	}
	return creds, res, nil
}
