package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/taskstars/internal/error_values"
	"github.com/limbo/taskstars/internal/service"
	"github.com/limbo/taskstars/pkg/entity"
	"github.com/limbo/taskstars/pkg/httputil"
)

type CreateAccountRequest struct {
	Email       string          `json:"email"`
	DisplayName string          `json:"display_name"`
	Passcode    string          `json:"passcode"`
	Tier        string          `json:"tier,omitempty"`
	Address     *entity.Address `json:"address,omitempty"`
}

type SetTierRequest struct {
	Tier string `json:"tier"`
}

type ChangePasscodeRequest struct {
	Current string `json:"current"`
	Next    string `json:"next"`
}

type ResetPasscodeRequest struct {
	Code     string `json:"code"`
	Passcode string `json:"passcode"`
}

type AccountResponse struct {
	Account  *entity.Account `json:"account"`
	Children []*entity.Child `json:"children"`
}

func (s *Server) CreateAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateAccountRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create account error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	account, err := s.registry.CreateAccount(ctx, &service.CreateAccountRequest{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Passcode:    req.Passcode,
		Tier:        req.Tier,
		Address:     req.Address,
	})
	if err != nil {
		writeServiceError(w, logger, "create account", err)
		return
	}
	token, err := s.jwtService.GenerateToken(account)
	if err != nil {
		logger.Error("create account error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"account_id": account.ID.String(),
		"token":      token,
	})
	logger.Info("account created")
}

func (s *Server) GetAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, err := GetAccountIDFromContext(r)
	if err != nil {
		logger.Error("get account error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	account, err := s.registry.Account(ctx, accountID)
	if err != nil {
		writeServiceError(w, logger, "get account", err)
		return
	}
	children, err := s.registry.Children(ctx, accountID)
	if err != nil {
		writeServiceError(w, logger, "get account", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AccountResponse{
		Account:  account,
		Children: children,
	})
	logger.Info("account provided")
}

func (s *Server) SetTier(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, err := GetAccountIDFromContext(r)
	if err != nil {
		logger.Error("set tier error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SetTierRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("set tier error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	account, err := s.registry.SetTier(ctx, accountID, entity.Tier(req.Tier))
	if err != nil {
		writeServiceError(w, logger, "set tier", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, account)
	logger.Info("tier changed", slog.String("tier", string(account.Tier)))
}

func (s *Server) ChangePasscode(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, err := GetAccountIDFromContext(r)
	if err != nil {
		logger.Error("change passcode error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ChangePasscodeRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("change passcode error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.registry.ChangePasscode(ctx, accountID, req.Current, req.Next); err != nil {
		writeServiceError(w, logger, "change passcode", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("passcode changed")
}

func (s *Server) RequestPasscodeReset(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, err := GetAccountIDFromContext(r)
	if err != nil {
		logger.Error("passcode reset code error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	account, err := s.registry.Account(ctx, accountID)
	if err != nil {
		writeServiceError(w, logger, "passcode reset code", err)
		return
	}
	if err := s.verifier.IssueCode(ctx, account.Email, account.DisplayName); err != nil {
		writeServiceError(w, logger, "passcode reset code", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
	logger.Info("passcode reset code sent")
}

func (s *Server) ResetPasscode(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, err := GetAccountIDFromContext(r)
	if err != nil {
		logger.Error("reset passcode error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ResetPasscodeRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("reset passcode error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if !service.IsPasscode(req.Passcode) {
		writeServiceError(w, logger, "reset passcode", errorvalues.ErrInvalidPasscodeFormat)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	account, err := s.registry.Account(ctx, accountID)
	if err != nil {
		writeServiceError(w, logger, "reset passcode", err)
		return
	}
	verified := s.verifier.CheckCode(account.Email, req.Code)
	if err := s.registry.ResetPasscode(ctx, accountID, req.Passcode, verified); err != nil {
		writeServiceError(w, logger, "reset passcode", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("passcode reset")
}
