// Package failure turns business errors into api results.
package failure

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ribgsilva/note-service/business/v1/errs"
	"github.com/ribgsilva/note-service/platform/web/handler"
	"go.uber.org/zap"
)

// Result maps err to its status code. Errors outside the business
// taxonomy are logged under op and hidden behind a generic 500.
func Result(log *zap.SugaredLogger, op string, err error) handler.Result {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return handler.Fail(http.StatusUnprocessableEntity, detail(err, errs.ErrValidation))
	case errors.Is(err, errs.ErrConflict):
		return handler.Fail(http.StatusBadRequest, "Username already exists")
	case errors.Is(err, errs.ErrUnauthorized):
		return handler.Fail(http.StatusUnauthorized, "Could not validate credentials")
	case errors.Is(err, errs.ErrForbidden):
		return handler.Fail(http.StatusForbidden, "Operation not permitted")
	case errors.Is(err, errs.ErrNotFound):
		return handler.Fail(http.StatusNotFound, "Not found")
	case errors.Is(err, errs.ErrUnavailable):
		log.Errorw(op, "ERROR", err)
		return handler.Fail(http.StatusServiceUnavailable, "Service unavailable")
	default:
		log.Errorw(op, "ERROR", err)
		return handler.Fail(http.StatusInternalServerError, "Internal server error")
	}
}

// detail strips the sentinel prefix added by fmt.Errorf("%w: ...")
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}
