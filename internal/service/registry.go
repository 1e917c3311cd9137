package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/taskstars/internal/error_values"
	"github.com/limbo/taskstars/internal/repository"
	"github.com/limbo/taskstars/pkg/entity"
)

const (
	minChildAge = 5
	maxChildAge = 17
)

// accountState is the loaded view of one account. Guarded by the account lock.
type accountState struct {
	account  *entity.Account
	children []*entity.Child
	tasks    map[uuid.UUID][]*entity.Task
	// task id -> owning child id
	owners map[uuid.UUID]uuid.UUID
	// guarded by Registry.mu
	lastUsed time.Time
}

func (st *accountState) child(id uuid.UUID) (*entity.Child, int) {
	for i, c := range st.children {
		if c.ID == id {
			return c, i
		}
	}
	return nil, -1
}

func (st *accountState) task(id uuid.UUID) (*entity.Task, int) {
	childID, ok := st.owners[id]
	if !ok {
		return nil, -1
	}
	for i, t := range st.tasks[childID] {
		if t.ID == id {
			return t, i
		}
	}
	return nil, -1
}

func (st *accountState) putTask(t *entity.Task) {
	if _, i := st.task(t.ID); i >= 0 {
		st.tasks[t.ChildID][i] = t
		return
	}
	st.tasks[t.ChildID] = append(st.tasks[t.ChildID], t)
	st.owners[t.ID] = t.ChildID
}

type RegistryDeps struct {
	Accounts repository.AccountsRepositoryI
	Children repository.ChildrenRepositoryI
	Tasks    repository.TasksRepositoryI
	Hasher   PasscodeHasher
	Dates    *DateProvider
	Ledger   *DailyLedger
	// Mail meter percent per credited point
	MailMeterScale float64
	Logger         *slog.Logger
}

// Registry owns accounts, their children and tasks. Every mutation of an
// account runs under that account's lock and is persisted before it becomes
// visible in memory.
type Registry struct {
	accounts  repository.AccountsRepositoryI
	children  repository.ChildrenRepositoryI
	tasks     repository.TasksRepositoryI
	hasher    PasscodeHasher
	dates     *DateProvider
	lifecycle *LifecycleManager
	generator *DailyTaskGenerator
	logger    *slog.Logger

	mu     sync.Mutex
	locks  map[uuid.UUID]*sync.Mutex
	states map[uuid.UUID]*accountState
}

func NewRegistry(deps RegistryDeps) *Registry {
	if deps.Accounts == nil || deps.Children == nil || deps.Tasks == nil {
		log.Fatal("on registry provided nil repos")
	}
	if deps.Hasher == nil {
		deps.Hasher = NewBcryptPasscodes(0)
	}
	if deps.Dates == nil {
		deps.Dates = NewDateProvider(nil, nil)
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Registry{
		accounts:  deps.Accounts,
		children:  deps.Children,
		tasks:     deps.Tasks,
		hasher:    deps.Hasher,
		dates:     deps.Dates,
		lifecycle: NewLifecycleManager(deps.Dates, deps.MailMeterScale),
		generator: NewDailyTaskGenerator(deps.Dates, deps.Ledger),
		logger:    deps.Logger,
		locks:     make(map[uuid.UUID]*sync.Mutex),
		states:    make(map[uuid.UUID]*accountState),
	}
}

func (r *Registry) lock(accountID uuid.UUID) func() {
	r.mu.Lock()
	m, ok := r.locks[accountID]
	if !ok {
		m = &sync.Mutex{}
		r.locks[accountID] = m
	}
	r.mu.Unlock()
	m.Lock()
	return m.Unlock
}

// state returns the cached account view, loading it on first use.
// Caller must hold the account lock.
func (r *Registry) state(ctx context.Context, accountID uuid.UUID) (*accountState, error) {
	r.mu.Lock()
	st, ok := r.states[accountID]
	if ok {
		st.lastUsed = r.dates.Now()
	}
	r.mu.Unlock()
	if ok {
		return st, nil
	}
	account, err := r.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository error: %w", err)
	}
	children, err := r.children.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("repository error: %w", err)
	}
	st = &accountState{
		account:  account,
		children: children,
		tasks:    make(map[uuid.UUID][]*entity.Task, len(children)),
		owners:   make(map[uuid.UUID]uuid.UUID),
	}
	for _, c := range children {
		c.AgeGroup = AgeGroupFor(c.Age)
		tasks, err := r.tasks.GetByChildID(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("repository error: %w", err)
		}
		st.tasks[c.ID] = tasks
		for _, t := range tasks {
			st.owners[t.ID] = c.ID
		}
	}
	r.mu.Lock()
	st.lastUsed = r.dates.Now()
	r.states[accountID] = st
	r.mu.Unlock()
	return st, nil
}

// evict drops the cached view after the store disagreed with it.
func (r *Registry) evict(accountID uuid.UUID) {
	r.mu.Lock()
	delete(r.states, accountID)
	r.mu.Unlock()
}

// EvictIdle drops cached views not used for maxIdle, so changes made to the
// store by other instances show up on the next load. Returns how many went.
func (r *Registry) EvictIdle(maxIdle time.Duration) int {
	cutoff := r.dates.Now().Add(-maxIdle)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, st := range r.states {
		if st.lastUsed.Before(cutoff) {
			delete(r.states, id)
			n++
		}
	}
	return n
}

func (r *Registry) CreateAccount(ctx context.Context, req *CreateAccountRequest) (*entity.Account, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	tier := entity.TierFree
	if req.Tier != "" {
		parsed, err := ParseTier(req.Tier)
		if err != nil {
			return nil, err
		}
		tier = parsed
	}
	hash, err := r.hasher.Hash(req.Passcode)
	if err != nil {
		return nil, err
	}
	now := r.dates.Now()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		DisplayName:  strings.TrimSpace(req.DisplayName),
		PasscodeHash: hash,
		Tier:         tier,
		Address:      req.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := r.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, errorvalues.ErrAccountExists) {
			return nil, err
		}
		return nil, fmt.Errorf("repository error: %w", err)
	}
	cp := *account
	return &cp, nil
}

func (r *Registry) Account(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	cp := *st.account
	return &cp, nil
}

func (r *Registry) SetTier(ctx context.Context, accountID uuid.UUID, tier entity.Tier) (*entity.Account, error) {
	tier, err := ParseTier(string(tier))
	if err != nil {
		return nil, err
	}
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	next := *st.account
	next.Tier = tier
	next.UpdatedAt = r.dates.Now()
	if err := r.saveAccount(ctx, &next); err != nil {
		return nil, err
	}
	st.account = &next
	cp := next
	return &cp, nil
}

func (r *Registry) saveAccount(ctx context.Context, account *entity.Account) error {
	if err := r.accounts.Update(ctx, account); err != nil {
		r.logger.Error("saving account error", slog.String("account_id", account.ID.String()), slog.String("error", err.Error()))
		if errors.Is(err, errorvalues.ErrAccountNotFound) {
			r.evict(account.ID)
			return err
		}
		return fmt.Errorf("repository error: %w", err)
	}
	return nil
}

// passcodeHash reads the stored hash without holding the lock across bcrypt.
func (r *Registry) passcodeHash(ctx context.Context, accountID uuid.UUID) (string, error) {
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return "", err
	}
	return st.account.PasscodeHash, nil
}

func (r *Registry) VerifyPasscode(ctx context.Context, accountID uuid.UUID, passcode string) error {
	hash, err := r.passcodeHash(ctx, accountID)
	if err != nil {
		return err
	}
	if !IsPasscode(passcode) || !r.hasher.Matches(hash, passcode) {
		return errorvalues.ErrInvalidPasscode
	}
	return nil
}

func (r *Registry) ChangePasscode(ctx context.Context, accountID uuid.UUID, current, next string) error {
	if err := r.VerifyPasscode(ctx, accountID, current); err != nil {
		return err
	}
	return r.setPasscode(ctx, accountID, next)
}

func (r *Registry) ResetPasscode(ctx context.Context, accountID uuid.UUID, next string, verified bool) error {
	if !verified {
		return errorvalues.ErrNotVerified
	}
	return r.setPasscode(ctx, accountID, next)
}

func (r *Registry) setPasscode(ctx context.Context, accountID uuid.UUID, passcode string) error {
	hash, err := r.hasher.Hash(passcode)
	if err != nil {
		return err
	}
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return err
	}
	next := *st.account
	next.PasscodeHash = hash
	next.UpdatedAt = r.dates.Now()
	if err := r.saveAccount(ctx, &next); err != nil {
		return err
	}
	st.account = &next
	return nil
}

func (r *Registry) AddChild(ctx context.Context, accountID uuid.UUID, req *AddChildRequest) (*entity.Child, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Age < minChildAge || req.Age > maxChildAge {
		return nil, errorvalues.ErrInvalidAge
	}
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !CanAddChild(st.account.Tier, len(st.children)) {
		return nil, fmt.Errorf("%w: %s tier allows %d children", errorvalues.ErrQuotaExceeded, st.account.Tier, ChildLimit(st.account.Tier))
	}
	now := r.dates.Now()
	child := &entity.Child{
		ID:        uuid.New(),
		AccountID: accountID,
		Name:      strings.TrimSpace(req.Name),
		Age:       req.Age,
		AgeGroup:  AgeGroupFor(req.Age),
		Avatar:    req.Avatar,
		Level:     LevelFor(0),
		Badges:    []entity.Badge{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.children.Create(ctx, child); err != nil {
		r.logger.Error("saving child error", slog.String("account_id", accountID.String()), slog.String("error", err.Error()))
		if errors.Is(err, errorvalues.ErrAccountNotFound) {
			r.evict(accountID)
			return nil, err
		}
		return nil, fmt.Errorf("repository error: %w", err)
	}
	st.children = append(st.children, child)
	st.tasks[child.ID] = nil
	return child.Clone(), nil
}

func (r *Registry) Children(ctx context.Context, accountID uuid.UUID) ([]*entity.Child, error) {
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Child, 0, len(st.children))
	for _, c := range st.children {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (r *Registry) Child(ctx context.Context, accountID, childID uuid.UUID) (*entity.Child, error) {
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	child, _ := st.child(childID)
	if child == nil {
		return nil, errorvalues.ErrChildNotFound
	}
	return child.Clone(), nil
}

// customToday counts parent-added tasks created for child on today.
func (r *Registry) customToday(st *accountState, childID uuid.UUID, today entity.Date) []*entity.Task {
	var out []*entity.Task
	for _, t := range st.tasks[childID] {
		if t.Origin == entity.OriginCustom && r.dates.DateOf(t.CreatedAt) == today {
			out = append(out, t)
		}
	}
	return out
}

func (r *Registry) AddCustomTask(ctx context.Context, accountID, childID uuid.UUID, req *CustomTaskRequest) (*CustomTaskResult, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if child, _ := st.child(childID); child == nil {
		return nil, errorvalues.ErrChildNotFound
	}
	now := r.dates.Now()
	today := r.dates.DateOf(now)
	used := len(r.customToday(st, childID, today))
	quota := CustomTaskDailyQuota(st.account.Tier)
	rewarded := used < quota
	points := req.Points
	if !rewarded {
		points = 0
	}
	task := &entity.Task{
		ID:          uuid.New(),
		ChildID:     childID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Points:      points,
		Status:      entity.StatusPending,
		Origin:      entity.OriginCustom,
		DueDate:     today,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.tasks.Create(ctx, task); err != nil {
		r.logger.Error("saving custom task error", slog.String("child_id", childID.String()), slog.String("error", err.Error()))
		if errors.Is(err, errorvalues.ErrChildNotFound) {
			r.evict(accountID)
			return nil, err
		}
		return nil, fmt.Errorf("repository error: %w", err)
	}
	st.putTask(task)
	return &CustomTaskResult{
		Task:      task.Clone(),
		Rewarded:  rewarded,
		UsedToday: used + 1,
		Quota:     quota,
	}, nil
}

func (r *Registry) CustomQuota(ctx context.Context, accountID, childID uuid.UUID) (*CustomQuota, error) {
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if child, _ := st.child(childID); child == nil {
		return nil, errorvalues.ErrChildNotFound
	}
	used := len(r.customToday(st, childID, r.dates.Today()))
	quota := CustomTaskDailyQuota(st.account.Tier)
	return &CustomQuota{
		CanAdd:    used < quota,
		UsedToday: used,
		Quota:     quota,
	}, nil
}

// CanAddCustomTask reports whether the next custom task for child today still carries points.
func (r *Registry) CanAddCustomTask(ctx context.Context, accountID, childID uuid.UUID) (bool, error) {
	q, err := r.CustomQuota(ctx, accountID, childID)
	if err != nil {
		return false, err
	}
	return q.CanAdd, nil
}

func (r *Registry) CustomTasksToday(ctx context.Context, accountID, childID uuid.UUID) ([]*entity.Task, error) {
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if child, _ := st.child(childID); child == nil {
		return nil, errorvalues.ErrChildNotFound
	}
	return cloneTasks(r.customToday(st, childID, r.dates.Today())), nil
}

func (r *Registry) RefreshDailyTasks(ctx context.Context, accountID, childID uuid.UUID) (*DailyRefreshResult, error) {
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	child, _ := st.child(childID)
	if child == nil {
		return nil, errorvalues.ErrChildNotFound
	}
	today := r.dates.Today()
	generated := false
	// A second round runs only after the store turned out to be ahead of us.
	for attempt := 0; attempt < 2; attempt++ {
		plan := r.generator.Plan(child, st.account.Tier, today, st.tasks[childID])
		if plan == nil {
			break
		}
		err := r.tasks.SaveDailySet(ctx, plan.Carried, plan.Created)
		if err == nil {
			for _, t := range plan.Tasks() {
				st.putTask(t)
			}
			r.generator.Commit(childID, today, plan.Tasks())
			generated = true
			break
		}
		if !errors.Is(err, errorvalues.ErrTaskExists) && !errors.Is(err, errorvalues.ErrInvalidTransition) {
			r.logger.Error("saving daily tasks error", slog.String("child_id", childID.String()), slog.String("error", err.Error()))
			return nil, fmt.Errorf("repository error: %w", err)
		}
		r.logger.Info("daily tasks changed elsewhere, reloading", slog.String("child_id", childID.String()))
		if err := r.reloadTasks(ctx, st, childID); err != nil {
			return nil, err
		}
	}
	var todays []*entity.Task
	for _, t := range st.tasks[childID] {
		if t.Origin == entity.OriginDaily && t.DueDate == today {
			todays = append(todays, t)
		}
	}
	return &DailyRefreshResult{
		Tasks:     cloneTasks(todays),
		Generated: generated,
	}, nil
}

func (r *Registry) reloadTasks(ctx context.Context, st *accountState, childID uuid.UUID) error {
	tasks, err := r.tasks.GetByChildID(ctx, childID)
	if err != nil {
		return fmt.Errorf("repository error: %w", err)
	}
	for _, t := range st.tasks[childID] {
		delete(st.owners, t.ID)
	}
	st.tasks[childID] = tasks
	for _, t := range tasks {
		st.owners[t.ID] = childID
	}
	return nil
}

func (r *Registry) Tasks(ctx context.Context, accountID, childID uuid.UUID, date *entity.Date) ([]*entity.Task, error) {
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if child, _ := st.child(childID); child == nil {
		return nil, errorvalues.ErrChildNotFound
	}
	out := make([]*entity.Task, 0, len(st.tasks[childID]))
	for _, t := range st.tasks[childID] {
		if date == nil || t.DueDate == *date {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

func (r *Registry) Task(ctx context.Context, accountID, taskID uuid.UUID) (*entity.Task, error) {
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	task, _ := st.task(taskID)
	if task == nil {
		return nil, errorvalues.ErrTaskNotFound
	}
	return task.Clone(), nil
}

// PendingApprovals lists submitted tasks of every child, oldest submission first.
func (r *Registry) PendingApprovals(ctx context.Context, accountID uuid.UUID) ([]*entity.Task, error) {
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return cloneTasks(completedTasks(st)), nil
}

func completedTasks(st *accountState) []*entity.Task {
	var out []*entity.Task
	for _, c := range st.children {
		for _, t := range st.tasks[c.ID] {
			if t.Status == entity.StatusCompleted {
				out = append(out, t)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CompletedAt == nil || out[j].CompletedAt == nil {
			return out[j].CompletedAt == nil && out[i].CompletedAt != nil
		}
		return out[i].CompletedAt.Before(*out[j].CompletedAt)
	})
	return out
}

func (r *Registry) SubmitTask(ctx context.Context, accountID, childID, taskID uuid.UUID, sub Submission) (*entity.Task, error) {
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if child, _ := st.child(childID); child == nil {
		return nil, errorvalues.ErrChildNotFound
	}
	task, _ := st.task(taskID)
	if task == nil {
		return nil, errorvalues.ErrTaskNotFound
	}
	next, err := r.lifecycle.Submit(task, childID, sub)
	if err != nil {
		return nil, err
	}
	if err := r.saveTask(ctx, accountID, next); err != nil {
		return nil, err
	}
	st.putTask(next)
	return next.Clone(), nil
}

func (r *Registry) RejectTask(ctx context.Context, accountID, taskID uuid.UUID) (*entity.Task, error) {
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	task, _ := st.task(taskID)
	if task == nil {
		return nil, errorvalues.ErrTaskNotFound
	}
	next, err := r.lifecycle.Reject(task)
	if err != nil {
		return nil, err
	}
	if err := r.saveTask(ctx, accountID, next); err != nil {
		return nil, err
	}
	st.putTask(next)
	return next.Clone(), nil
}

func (r *Registry) saveTask(ctx context.Context, accountID uuid.UUID, task *entity.Task) error {
	if err := r.tasks.Update(ctx, task); err != nil {
		r.logger.Error("saving task error", slog.String("task_id", task.ID.String()), slog.String("error", err.Error()))
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			r.evict(accountID)
			return err
		}
		return fmt.Errorf("repository error: %w", err)
	}
	return nil
}

func (r *Registry) ApproveTask(ctx context.Context, accountID, taskID uuid.UUID, passcode string) (*ApprovalOutcome, error) {
	if err := r.VerifyPasscode(ctx, accountID, passcode); err != nil {
		return nil, err
	}
	return r.approve(ctx, accountID, taskID)
}

// approve credits one task. It takes the account lock itself, so batch
// approval holds it per task rather than across the whole batch.
func (r *Registry) approve(ctx context.Context, accountID, taskID uuid.UUID) (*ApprovalOutcome, error) {
	unlock := r.lock(accountID)
	defer unlock()
	st, err := r.state(ctx, accountID)
	if err != nil {
		return nil, err
	}
	task, _ := st.task(taskID)
	if task == nil {
		return nil, errorvalues.ErrTaskNotFound
	}
	child, idx := st.child(task.ChildID)
	if child == nil {
		return nil, errorvalues.ErrNotOwned
	}
	outcome, err := r.lifecycle.Approve(task, child)
	if err != nil {
		return nil, err
	}
	if err := r.tasks.SaveApproval(ctx, outcome.Child, outcome.Task, outcome.NewBadges); err != nil {
		r.logger.Error("saving approval error", slog.String("task_id", taskID.String()), slog.String("error", err.Error()))
		switch {
		case errors.Is(err, errorvalues.ErrInvalidTransition), errors.Is(err, errorvalues.ErrChildNotFound):
			// The store moved on without us.
			r.evict(accountID)
			return nil, err
		default:
			return nil, fmt.Errorf("repository error: %w", err)
		}
	}
	st.children[idx] = outcome.Child
	st.putTask(outcome.Task)
	return &ApprovalOutcome{
		Task:        outcome.Task.Clone(),
		Child:       outcome.Child.Clone(),
		Credited:    outcome.Credited,
		Multiplier:  outcome.Multiplier,
		MailUnlocks: outcome.MailUnlocks,
		NewBadges:   append([]entity.Badge(nil), outcome.NewBadges...),
	}, nil
}

// ApproveAll checks the passcode once and then approves every submitted task.
// Each approval stands on its own: a task that fails is skipped, the rest still land.
func (r *Registry) ApproveAll(ctx context.Context, accountID uuid.UUID, passcode string) (*BatchApproval, error) {
	if err := r.VerifyPasscode(ctx, accountID, passcode); err != nil {
		return nil, err
	}
	pending, err := r.PendingApprovals(ctx, accountID)
	if err != nil {
		return nil, err
	}
	result := &BatchApproval{
		Approved: make([]*ApprovalOutcome, 0, len(pending)),
	}
	for _, t := range pending {
		outcome, err := r.approve(ctx, accountID, t.ID)
		if err != nil {
			r.logger.Warn("approve all: task skipped", slog.String("task_id", t.ID.String()), slog.String("error", err.Error()))
			result.Skipped = append(result.Skipped, t.ID)
			continue
		}
		result.Approved = append(result.Approved, outcome)
	}
	return result, nil
}

func cloneTasks(tasks []*entity.Task) []*entity.Task {
	out := make([]*entity.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Clone())
	}
	return out
}
