package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/taskstars/internal/service"
	"github.com/limbo/taskstars/pkg/entity"
	"github.com/limbo/taskstars/pkg/httputil"
)

type SubmitTaskRequest struct {
	ChildID        string `json:"child_id"`
	PhotoURL       string `json:"photo_url,omitempty"`
	ElapsedSeconds int    `json:"elapsed_seconds,omitempty"`
}

type PasscodeRequest struct {
	Passcode string `json:"passcode"`
}

type ApprovalResponse struct {
	Task        *entity.Task   `json:"task"`
	Child       *entity.Child  `json:"child"`
	Credited    int            `json:"credited"`
	Multiplier  float64        `json:"multiplier"`
	MailUnlocks int            `json:"mail_unlocks"`
	NewBadges   []entity.Badge `json:"new_badges"`
}

type ApproveAllResponse struct {
	Approved []ApprovalResponse `json:"approved"`
	Skipped  []uuid.UUID        `json:"skipped"`
}

func toApprovalResponse(o *service.ApprovalOutcome) ApprovalResponse {
	badges := o.NewBadges
	if badges == nil {
		badges = []entity.Badge{}
	}
	return ApprovalResponse{
		Task:        o.Task,
		Child:       o.Child,
		Credited:    o.Credited,
		Multiplier:  float64(o.Multiplier),
		MailUnlocks: o.MailUnlocks,
		NewBadges:   badges,
	}
}

func taskRequest(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, uuid.UUID, bool) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, err := GetAccountIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, uuid.UUID{}, false
	}
	taskID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id in path value", nil)
		return uuid.UUID{}, uuid.UUID{}, false
	}
	return accountID, taskID, true
}

func (s *Server) SubmitTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, taskID, ok := taskRequest(w, r, "submit task")
	if !ok {
		return
	}
	var req SubmitTaskRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("submit task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	childID, err := uuid.Parse(req.ChildID)
	if err != nil {
		logger.Error("submit task error: invalid child id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid child id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*20)
	defer cancel()
	var sub service.Submission
	if req.PhotoURL != "" || req.ElapsedSeconds > 0 {
		sub.Proof = &entity.Proof{
			PhotoURL:       req.PhotoURL,
			ElapsedSeconds: req.ElapsedSeconds,
		}
	}
	if req.PhotoURL != "" {
		sub.Verification = s.verifyProof(ctx, logger, accountID, childID, taskID, req.PhotoURL)
	}
	task, err := s.registry.SubmitTask(ctx, accountID, childID, taskID, sub)
	if err != nil {
		writeServiceError(w, logger, "submit task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task submitted")
}

// verifyProof asks the photo analysis service for an advisory verdict.
// Any failure leaves the submission without one.
func (s *Server) verifyProof(ctx context.Context, logger *slog.Logger, accountID, childID, taskID uuid.UUID, photoURL string) *entity.Verification {
	task, err := s.registry.Task(ctx, accountID, taskID)
	if err != nil {
		return nil
	}
	child, err := s.registry.Child(ctx, accountID, childID)
	if err != nil {
		return nil
	}
	verification, err := s.proofs.Verify(ctx, &service.ProofRequest{
		TaskTitle:       task.Title,
		TaskDescription: task.Description,
		ChildAge:        child.Age,
		PhotoURL:        photoURL,
	})
	if err != nil {
		logger.Warn("proof verification failed", slog.String("error", err.Error()))
		return nil
	}
	return verification
}

func (s *Server) ApproveTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, taskID, ok := taskRequest(w, r, "approve task")
	if !ok {
		return
	}
	var req PasscodeRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("approve task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	outcome, err := s.registry.ApproveTask(ctx, accountID, taskID, req.Passcode)
	if err != nil {
		writeServiceError(w, logger, "approve task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, toApprovalResponse(outcome))
	logger.Info("task approved", slog.Int("credited", outcome.Credited), slog.Int("mail_unlocks", outcome.MailUnlocks))
}

func (s *Server) RejectTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, taskID, ok := taskRequest(w, r, "reject task")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	task, err := s.registry.RejectTask(ctx, accountID, taskID)
	if err != nil {
		writeServiceError(w, logger, "reject task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task rejected")
}

func (s *Server) ApproveAll(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, err := GetAccountIDFromContext(r)
	if err != nil {
		logger.Error("approve all error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req PasscodeRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("approve all error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*30)
	defer cancel()
	batch, err := s.registry.ApproveAll(ctx, accountID, req.Passcode)
	if err != nil {
		writeServiceError(w, logger, "approve all", err)
		return
	}
	resp := ApproveAllResponse{
		Approved: make([]ApprovalResponse, 0, len(batch.Approved)),
		Skipped:  batch.Skipped,
	}
	if resp.Skipped == nil {
		resp.Skipped = []uuid.UUID{}
	}
	for _, o := range batch.Approved {
		resp.Approved = append(resp.Approved, toApprovalResponse(o))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("tasks approved", slog.Int("approved", len(resp.Approved)), slog.Int("skipped", len(resp.Skipped)))
}

func (s *Server) GetPendingApprovals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, err := GetAccountIDFromContext(r)
	if err != nil {
		logger.Error("pending approvals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	tasks, err := s.registry.PendingApprovals(ctx, accountID)
	if err != nil {
		writeServiceError(w, logger, "pending approvals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TasksResponse{Tasks: tasks})
}
