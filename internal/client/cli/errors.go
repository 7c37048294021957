package cli

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/pinvault/internal/client/client"
	"github.com/dmitrijs2005/pinvault/internal/filex"
)

var (
	errCancelled    = errors.New("cancelled")
	errPinMismatch  = errors.New("PINs do not match")
	errNothingToDo  = errors.New("nothing to change")
	errMissingInput = errors.New("missing input")

	errConflictingFlags = errors.New("-p and -u cannot be combined")
)

// describeError turns client errors into the text shown in the REPL.
func describeError(err error) string {
	switch {
	case errors.Is(err, client.ErrInvalidPin):
		return "invalid PIN"
	case errors.Is(err, client.ErrNotFound):
		return "not found"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again"
	case errors.Is(err, client.ErrUnauthorized):
		if strings.Contains(err.Error(), "refresh token expired") {
			return "session expired, please login again"
		}
		return "unauthorized"
	case errors.Is(err, client.ErrInvalidInput), errors.Is(err, client.ErrAlreadyExists):
		_, detail, ok := strings.Cut(err.Error(), ": ")
		if ok {
			return detail
		}
		return err.Error()
	case errors.Is(err, filex.ErrTooLarge):
		return "file is too large"
	default:
		return err.Error()
	}
}
