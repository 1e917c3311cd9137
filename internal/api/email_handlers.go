package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/taskstars/internal/error_values"
	"github.com/limbo/taskstars/internal/service"
	"github.com/limbo/taskstars/pkg/httputil"
)

type SendVerificationEmailRequest struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	UserName string `json:"userName"`
}

type SendVerificationEmailResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SendVerificationEmail mails a caller supplied code, at most a few times per
// email address per window.
func (s *Server) SendVerificationEmail(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SendVerificationEmailRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("verification email error: invalid body")
		httputil.WriteJSONResponse(w, http.StatusBadRequest, SendVerificationEmailResponse{Error: "invalid request body"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	id, err := s.verifier.SendCode(ctx, &service.SendVerificationRequest{
		Email:    req.Email,
		Code:     req.Code,
		UserName: req.UserName,
	})
	if err != nil {
		var rateErr *service.RateLimitError
		switch {
		case errors.As(err, &rateErr):
			logger.Error("verification email error: rate limited")
			w.Header().Set("Retry-After", strconv.Itoa(int(rateErr.RetryAfter.Seconds())+1))
			httputil.WriteJSONResponse(w, http.StatusTooManyRequests, SendVerificationEmailResponse{Error: errorvalues.ErrRateLimited.Error()})
		case errors.Is(err, errorvalues.ErrRateLimited):
			logger.Error("verification email error: rate limited")
			httputil.WriteJSONResponse(w, http.StatusTooManyRequests, SendVerificationEmailResponse{Error: errorvalues.ErrRateLimited.Error()})
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("verification email error: missing or invalid fields")
			httputil.WriteJSONResponse(w, http.StatusBadRequest, SendVerificationEmailResponse{Error: "email, code and userName are required"})
		default:
			logger.Error("verification email error: sender failed", "error", err.Error())
			httputil.WriteJSONResponse(w, http.StatusInternalServerError, SendVerificationEmailResponse{Error: "failed to send verification email"})
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SendVerificationEmailResponse{
		Success:   true,
		MessageID: id,
	})
	logger.Info("verification email sent")
}
