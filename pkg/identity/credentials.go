package identity

import (
	"github.com/arya-analytics/enroll/pkg/sec/password"
	"github.com/cockroachdb/errors"
)

const (
	// UsernameKey is the authentication parameter holding the username.
	UsernameKey = "USERNAME"
	// PasswordKey is the authentication parameter holding the password.
	PasswordKey = "PASSWORD"
)

// Validate returns a MissingCredential error if either the username or password
// is empty.
func (c Credentials) Validate() error {
	if c.Username == "" {
		return errors.Wrapf(MissingCredential, "%s is required", UsernameKey)
	}
	if c.Password.Empty() {
		return errors.Wrapf(MissingCredential, "%s is required", PasswordKey)
	}
	return nil
}

// AuthParameters returns the credentials as the two-key mapping expected by
// password based authentication flows.
func (c Credentials) AuthParameters() map[string]string {
	return map[string]string{
		UsernameKey: c.Username,
		PasswordKey: c.Password.Reveal(),
	}
}

// FromAuthParameters parses credentials out of an authentication parameter
// mapping. Both keys must be present and non-empty.
func FromAuthParameters(params map[string]string) (Credentials, error) {
	c := Credentials{
		Username: params[UsernameKey],
		Password: password.Raw(params[PasswordKey]),
	}
	return c, c.Validate()
}
