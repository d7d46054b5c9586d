package cognito

import (
	"github.com/arya-analytics/enroll/pkg/identity"
	"github.com/aws/smithy-go"
	"github.com/cockroachdb/errors"
)

// rejections maps Cognito exception codes to identity rejection classes.
var rejections = map[string]error{
	"UsernameExistsException":        identity.UsernameExists,
	"AliasExistsException":           identity.UsernameExists,
	"InvalidPasswordException":       identity.InvalidPassword,
	"InvalidParameterException":      identity.InvalidParameter,
	"CodeMismatchException":          identity.CodeMismatch,
	"ExpiredCodeException":           identity.CodeExpired,
	"NotAuthorizedException":         identity.NotAuthorized,
	"UserNotConfirmedException":      identity.UserNotConfirmed,
	"UserNotFoundException":          identity.UserNotFound,
	"LimitExceededException":         identity.LimitExceeded,
	"TooManyRequestsException":       identity.LimitExceeded,
	"TooManyFailedAttemptsException": identity.LimitExceeded,
}

// translate wraps an SDK error with the operation name and marks it with the
// matching identity rejection class, so callers can match on either the
// identity sentinel or the original SDK error.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	wrapped := errors.Wrapf(err, "[cognito] - %s", op)
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if class, ok := rejections[apiErr.ErrorCode()]; ok {
			return errors.Mark(wrapped, class)
		}
	}
	return wrapped
}
