// Package identity defines the contract between enroll and a remote identity
// provider: the requests it accepts, the results it returns, and the classes of
// rejection it can produce.
package identity

import (
	"context"
	"time"

	"github.com/arya-analytics/enroll/pkg/sec/password"
)

// Service is a remote identity provider. Implementations own the wire format;
// callers only deal in the types below.
type Service interface {
	// SignUp creates a new, unconfirmed account. If the provider rejects the
	// request, an error marked with one of the package's rejection classes
	// (UsernameExists, InvalidPassword, ...) is returned.
	SignUp(ctx context.Context, req SignUpRequest) (SignUpResult, error)
	// ConfirmSignUp confirms an account using the one-time code the provider
	// delivered during SignUp.
	ConfirmSignUp(ctx context.Context, req ConfirmRequest) error
	// Authenticate exchanges a username and password for tokens.
	Authenticate(ctx context.Context, req AuthRequest) (Tokens, error)
}

// Attribute is a named user attribute attached to an account at sign up.
type Attribute struct {
	Name  string
	Value string
}

// EmailAttribute is the attribute name providers use for a user's email address.
const EmailAttribute = "email"

// SignUpRequest is the input to Service.SignUp.
type SignUpRequest struct {
	// ClientID names the application client the account is registered under.
	ClientID    string
	Credentials Credentials
	Attributes  []Attribute
}

// SignUpResult is the provider's response to a successful SignUp.
type SignUpResult struct {
	// UserSub is the provider's immutable identifier for the new account.
	UserSub string
	// Confirmed is true when the provider confirmed the account without a code
	// (e.g. a pre sign up hook auto-confirmed it).
	Confirmed bool
	// Delivery describes where the confirmation code was sent. Zero if no code
	// was sent.
	Delivery Delivery
}

// Delivery describes how a confirmation code was delivered.
type Delivery struct {
	// Destination is the masked address the code was sent to, e.g. a***@b.com.
	Destination string
	// Medium is EMAIL or SMS.
	Medium string
	// Attribute is the user attribute the destination was taken from.
	Attribute string
}

// ConfirmRequest is the input to Service.ConfirmSignUp.
type ConfirmRequest struct {
	ClientID string
	Username string
	// Code is passed through as typed. The provider is its only validator.
	Code string
}

// AuthRequest is the input to Service.Authenticate.
type AuthRequest struct {
	ClientID    string
	Credentials Credentials
}

// Tokens is the token material returned by a successful Authenticate.
type Tokens struct {
	AccessToken  string
	IDToken      string
	RefreshToken string
	TokenType    string
	ExpiresIn    time.Duration
}

// Credentials are the username and password carried from registration to
// authentication.
type Credentials struct {
	Username string
	Password password.Raw
}
