package server

import (
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"github.com/sanjanb/k-tech-nain/internal/domain"
	"github.com/sanjanb/k-tech-nain/pkg/contextx"
	"github.com/sanjanb/k-tech-nain/pkg/errcodes"
)

// toTransportError maps domain error codes onto failure kinds so reply.Error
// picks the right HTTP status. Unknown errors pass through as 500.
func toTransportError(err error) error {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		return err
	}

	withCode := failure.WithCode(appErr.Code)
	withDescription := failure.WithDescription(appErr.Message)

	switch appErr.Code {
	case errcodes.NotFound,
		errcodes.DealNotFound,
		errcodes.ProductNotFound,
		errcodes.UserNotFound,
		errcodes.NotificationNotFound,
		errcodes.EntityNotFound:
		return failure.NewNotFoundError(err.Error(), withCode, withDescription)
	case errcodes.DuplicateDeal,
		errcodes.DuplicateNotification,
		errcodes.NotRedrivable:
		return failure.NewConflictError(err.Error(), withCode, withDescription)
	case errcodes.NotAuthorized,
		errcodes.Forbidden:
		return failure.NewForbiddenError(err.Error(), withCode, withDescription)
	case errcodes.SelfDeal:
		return failure.NewUnprocessableEntityError(err.Error(), withCode, withDescription)
	case errcodes.ValidationError,
		errcodes.InvalidProduct,
		errcodes.InvalidUpiID,
		errcodes.InvalidDealID,
		errcodes.InvalidUserID,
		errcodes.InvalidLanguage,
		errcodes.InvalidPaging,
		errcodes.MissingContactInfo:
		return failure.NewInvalidArgumentError(err.Error(), withCode, withDescription)
	default:
		return err
	}
}

// currentUser extracts the authenticated user set by the gateway middleware.
func currentUser(r *http.Request) (string, error) {
	userID, err := contextx.UserIDFromContext(r.Context())
	if err != nil {
		return "", failure.NewUnauthorizedError("missing user identity")
	}

	return userID.String(), nil
}
