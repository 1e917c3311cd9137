package api

import (
	"context"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/taskstars/internal/service"
	"github.com/limbo/taskstars/pkg/entity"
	"github.com/limbo/taskstars/pkg/httputil"
)

type AddChildRequest struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Avatar string `json:"avatar"`
}

type AddCustomTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

type ChildrenResponse struct {
	Children []*entity.Child `json:"children"`
}

type TasksResponse struct {
	Tasks []*entity.Task `json:"tasks"`
}

type CustomTaskResponse struct {
	Task *entity.Task `json:"task"`
	// False when the daily quota was used up and the task carries no points
	Rewarded  bool `json:"rewarded"`
	UsedToday int  `json:"used_today"`
	Quota     int  `json:"quota"`
}

type CustomQuotaResponse struct {
	CanAdd    bool `json:"can_add"`
	UsedToday int  `json:"used_today"`
	Quota     int  `json:"quota"`
}

type DailyTasksResponse struct {
	Tasks     []*entity.Task `json:"tasks"`
	Generated bool           `json:"generated"`
}

func (s *Server) AddChild(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, err := GetAccountIDFromContext(r)
	if err != nil {
		logger.Error("add child error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AddChildRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("add child error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	child, err := s.registry.AddChild(ctx, accountID, &service.AddChildRequest{
		Name:   req.Name,
		Age:    req.Age,
		Avatar: req.Avatar,
	})
	if err != nil {
		writeServiceError(w, logger, "add child", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, child)
	logger.Info("child added")
}

func (s *Server) GetChildren(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, err := GetAccountIDFromContext(r)
	if err != nil {
		logger.Error("get children error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	children, err := s.registry.Children(ctx, accountID)
	if err != nil {
		writeServiceError(w, logger, "get children", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ChildrenResponse{Children: children})
	logger.Info("children provided")
}

// childRequest resolves the account and the {id} path value shared by child routes.
func childRequest(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, uuid.UUID, bool) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, err := GetAccountIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, uuid.UUID{}, false
	}
	childID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid child id in path value", nil)
		return uuid.UUID{}, uuid.UUID{}, false
	}
	return accountID, childID, true
}

func (s *Server) AddCustomTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, childID, ok := childRequest(w, r, "add custom task")
	if !ok {
		return
	}
	var req AddCustomTaskRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("add custom task error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	result, err := s.registry.AddCustomTask(ctx, accountID, childID, &service.CustomTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		Points:      req.Points,
	})
	if err != nil {
		writeServiceError(w, logger, "add custom task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, CustomTaskResponse{
		Task:      result.Task,
		Rewarded:  result.Rewarded,
		UsedToday: result.UsedToday,
		Quota:     result.Quota,
	})
	if !result.Rewarded {
		logger.Info("custom task added without reward: daily quota used up")
		return
	}
	logger.Info("custom task added")
}

func (s *Server) GetTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, childID, ok := childRequest(w, r, "get tasks")
	if !ok {
		return
	}
	var date *entity.Date
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := entity.ParseDate(raw)
		if err != nil {
			logger.Error("get tasks error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
		date = &d
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	tasks, err := s.registry.Tasks(ctx, accountID, childID, date)
	if err != nil {
		writeServiceError(w, logger, "get tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TasksResponse{Tasks: tasks})
	logger.Info("tasks provided")
}

func (s *Server) GetCustomQuota(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, childID, ok := childRequest(w, r, "get custom quota")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	quota, err := s.registry.CustomQuota(ctx, accountID, childID)
	if err != nil {
		writeServiceError(w, logger, "get custom quota", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CustomQuotaResponse{
		CanAdd:    quota.CanAdd,
		UsedToday: quota.UsedToday,
		Quota:     quota.Quota,
	})
}

func (s *Server) RefreshDailyTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	accountID, childID, ok := childRequest(w, r, "refresh daily tasks")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	result, err := s.registry.RefreshDailyTasks(ctx, accountID, childID)
	if err != nil {
		writeServiceError(w, logger, "refresh daily tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, DailyTasksResponse{
		Tasks:     result.Tasks,
		Generated: result.Generated,
	})
	if result.Generated {
		logger.Info("daily tasks generated")
	}
}
