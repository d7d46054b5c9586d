package identity

import "github.com/cockroachdb/errors"

var (
	// MissingCredential is returned when a username or password is required but
	// wasn't provided.
	MissingCredential = errors.New("[identity] - missing credential")
	// UsernameExists is returned when signing up with a username that is taken.
	UsernameExists = errors.New("[identity] - username already exists")
	// InvalidPassword is returned when a password doesn't satisfy the provider's
	// password policy.
	InvalidPassword = errors.New("[identity] - password does not satisfy policy")
	// InvalidParameter is returned when the provider rejects a malformed request
	// (bad email, unsupported auth flow for the client, ...).
	InvalidParameter = errors.New("[identity] - invalid parameter")
	// CodeMismatch is returned when a confirmation code is wrong.
	CodeMismatch = errors.New("[identity] - confirmation code mismatch")
	// CodeExpired is returned when a confirmation code has expired.
	CodeExpired = errors.New("[identity] - confirmation code expired")
	// NotAuthorized is returned when credentials are rejected.
	NotAuthorized = errors.New("[identity] - not authorized")
	// UserNotConfirmed is returned when authenticating an account that hasn't
	// been confirmed.
	UserNotConfirmed = errors.New("[identity] - user not confirmed")
	// UserNotFound is returned when the account doesn't exist.
	UserNotFound = errors.New("[identity] - user not found")
	// LimitExceeded is returned when the provider throttles the caller.
	LimitExceeded = errors.New("[identity] - limit exceeded")
	// ChallengeRequired is returned when authentication needs an additional
	// challenge (MFA, new password) that this tool doesn't answer.
	ChallengeRequired = errors.New("[identity] - additional challenge required")
)
