package token

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
)

// Malformed is returned when a token can't be decoded as a JWT.
var Malformed = errors.New("[token] - malformed token")

// Claims is the subset of identity provider access token claims worth showing
// to a user after a successful sign in.
type Claims struct {
	Subject   string
	Username  string
	ClientID  string
	TokenUse  string
	Scope     string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Inspect decodes the claims of the given token WITHOUT verifying its signature.
// Only use the result for display.
func Inspect(raw string) (Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, mc); err != nil {
		return Claims{}, errors.Mark(errors.Wrap(err, "[token] - failed to parse"), Malformed)
	}
	c := Claims{
		Username: stringClaim(mc, "username"),
		ClientID: stringClaim(mc, "client_id"),
		TokenUse: stringClaim(mc, "token_use"),
		Scope:    stringClaim(mc, "scope"),
	}
	c.Subject, _ = mc.GetSubject()
	c.Issuer, _ = mc.GetIssuer()
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		c.IssuedAt = iat.Time.UTC()
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time.UTC()
	}
	return c, nil
}

func stringClaim(mc jwt.MapClaims, key string) string {
	v, _ := mc[key].(string)
	return v
}

const abbreviatedLen = 12

// Abbreviate returns a shortened form of the token that is safe to print.
func Abbreviate(raw string) string {
	if len(raw) <= abbreviatedLen {
		return "…"
	}
	return raw[:abbreviatedLen] + "…"
}
