package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/workling/portal/internal/core/domain"
)

// fallbackMessage is shown when the remote failure carries no msg field.
const fallbackMessage = "request failed, please try again"

// RemoteError is a failure reported by the marketplace API itself, as
// opposed to a transport failure. Msg carries the server's user-facing
// message when one was present.
type RemoteError struct {
	Status int
	Msg    string
}

func (e *RemoteError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fallbackMessage
}

// Unwrap lets errors.Is recognise a 401 as domain.ErrUnauthorized so callers
// can force a re-login.
func (e *RemoteError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return domain.ErrUnauthorized
	}
	return nil
}

// Message returns the user-facing text for any gateway error: the server's
// own message for remote failures, a generic fallback otherwise.
func Message(err error) string {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Error()
	}
	return fallbackMessage
}

// IsRemote reports whether err is a server-reported failure.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

func remoteErr(status int, msg string) error {
	return &RemoteError{Status: status, Msg: msg}
}

func transportErr(call string, err error) error {
	return fmt.Errorf("gateway: %s: %w", call, err)
}
