package password

import "github.com/cockroachdb/redact"

// Raw is a plaintext password as entered by a user. Its formatted form is always
// redacted, so a Raw can be passed to loggers, fmt verbs, and error messages
// without leaking the value. Use Reveal to get the underlying string when it
// needs to go over the wire.
type Raw string

// Reveal returns the plaintext password.
func (r Raw) Reveal() string { return string(r) }

// Empty returns true if no password was provided.
func (r Raw) Empty() bool { return len(r) == 0 }

// String implements fmt.Stringer.
func (r Raw) String() string { return string(redact.RedactedMarker()) }

// GoString implements fmt.GoStringer.
func (r Raw) GoString() string { return r.String() }

// SafeFormat implements redact.SafeFormatter. Redactable error messages
// (cockroachdb/errors.Newf and friends) format through this, not String.
func (r Raw) SafeFormat(w redact.SafePrinter, _ rune) { w.Print(redact.RedactedMarker()) }
