package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	errorvalues "github.com/limbo/taskstars/internal/error_values"
	"github.com/limbo/taskstars/internal/service"
	"github.com/limbo/taskstars/pkg/httputil"
)

// StatusFor maps an engine error to the HTTP status a client should see.
func StatusFor(err error) int {
	switch errorvalues.CategoryOf(err) {
	case errorvalues.CategoryRetry:
		if errors.Is(err, errorvalues.ErrRateLimited) {
			return http.StatusTooManyRequests
		}
		return http.StatusUnauthorized
	case errorvalues.CategoryNotAllowed:
		return http.StatusForbidden
	case errorvalues.CategoryStale:
		return http.StatusConflict
	case errorvalues.CategoryNotFound:
		return http.StatusNotFound
	case errorvalues.CategoryInvalid:
		if errors.Is(err, errorvalues.ErrAccountExists) {
			return http.StatusConflict
		}
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError logs and writes err. op names the handler for the log line.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	status := StatusFor(err)
	category := errorvalues.CategoryOf(err)
	if status == http.StatusInternalServerError {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteCategorizedError(w, status, category.String(), "internal error during "+op, nil)
		return
	}
	logger.Error(op+" error", slog.String("reason", err.Error()))
	var rateErr *service.RateLimitError
	if errors.As(err, &rateErr) {
		w.Header().Set("Retry-After", strconv.Itoa(int(rateErr.RetryAfter.Seconds())+1))
	}
	var details error
	if errors.Is(err, errorvalues.ErrValidation) {
		details = err
	}
	httputil.WriteCategorizedError(w, status, category.String(), publicMessage(err), details)
}

func publicMessage(err error) string {
	for _, known := range []error{
		errorvalues.ErrInvalidTransition,
		errorvalues.ErrNotOwned,
		errorvalues.ErrInvalidPasscode,
		errorvalues.ErrInvalidPasscodeFormat,
		errorvalues.ErrQuotaExceeded,
		errorvalues.ErrRateLimited,
		errorvalues.ErrTaskNotDue,
		errorvalues.ErrTaskExists,
		errorvalues.ErrInvalidAge,
		errorvalues.ErrInvalidTier,
		errorvalues.ErrNotVerified,
		errorvalues.ErrAccountExists,
		errorvalues.ErrAccountNotFound,
		errorvalues.ErrChildNotFound,
		errorvalues.ErrTaskNotFound,
		errorvalues.ErrValidation,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "request failed"
}
