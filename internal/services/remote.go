package service

import (
	stdErrors "errors"
	"net/http"

	"github.com/aaravmahajanofficial/shopity/internal/errors"
	"github.com/aaravmahajanofficial/shopity/pkg/commerceapi"
)

// remoteFailure classifies an error from the commerce API: an error status
// becomes a RemoteError carrying the server message, anything else a NetworkError.
func remoteFailure(err error, message string) *errors.AppError {
	var statusErr *commerceapi.StatusError

	if stdErrors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusNotFound {
			return errors.NotFoundError(message).WithError(err).WithDetail(statusErr.Message)
		}

		appErr := errors.RemoteError(message).WithError(err)
		if statusErr.Message != "" {
			appErr = appErr.WithDetail(statusErr.Message)
		}

		return appErr
	}

	return errors.NetworkError(message).WithError(err)
}

// lookupFailure is remoteFailure for a single-resource read, where a 404 gets
// its own message.
func lookupFailure(err error, message, notFound string) *errors.AppError {
	appErr := remoteFailure(err, message)
	if appErr.Code == errors.ErrCodeNotFound {
		appErr.Message = notFound
	}

	return appErr
}
