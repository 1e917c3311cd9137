package service

import (
	"fmt"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/taskstars/internal/error_values"
	"github.com/limbo/taskstars/pkg/entity"
)

type TaskEvent string

const (
	EventSubmit  TaskEvent = "submit"
	EventApprove TaskEvent = "approve"
	EventReject  TaskEvent = "reject"
	EventReopen  TaskEvent = "reopen"
)

var transitions = map[entity.TaskStatus]map[TaskEvent]entity.TaskStatus{
	entity.StatusPending: {
		EventSubmit: entity.StatusCompleted,
	},
	entity.StatusCompleted: {
		EventApprove: entity.StatusApproved,
		EventReject:  entity.StatusRejected,
	},
	entity.StatusRejected: {
		EventReopen: entity.StatusPending,
	},
}

// NextStatus validates ev against the source status. Approved has no way out.
func NextStatus(from entity.TaskStatus, ev TaskEvent) (entity.TaskStatus, error) {
	to, ok := transitions[from][ev]
	if !ok {
		return "", fmt.Errorf("%w: cannot %s a %s task", errorvalues.ErrInvalidTransition, ev, from)
	}
	return to, nil
}

func IsTerminal(s entity.TaskStatus) bool {
	return len(transitions[s]) == 0
}

type Submission struct {
	Proof        *entity.Proof
	Verification *entity.Verification
}

type ApprovalOutcome struct {
	Task        *entity.Task
	Child       *entity.Child
	Credited    int
	Multiplier  Multiplier
	MailUnlocks int
	NewBadges   []entity.Badge
}

// LifecycleManager applies task transitions and their progression side effects.
// It never mutates its inputs: every method works on copies and returns them.
type LifecycleManager struct {
	dates     *DateProvider
	mailScale float64
}

func NewLifecycleManager(dates *DateProvider, mailScale float64) *LifecycleManager {
	return &LifecycleManager{
		dates:     dates,
		mailScale: mailScale,
	}
}

func (lm *LifecycleManager) Submit(task *entity.Task, childID uuid.UUID, sub Submission) (*entity.Task, error) {
	if task.ChildID != childID {
		return nil, errorvalues.ErrNotOwned
	}
	to, err := NextStatus(task.Status, EventSubmit)
	if err != nil {
		return nil, err
	}
	if task.DueDate.After(lm.dates.Today()) {
		return nil, errorvalues.ErrTaskNotDue
	}
	now := lm.dates.Now()
	next := task.Clone()
	next.Status = to
	next.CompletedAt = &now
	next.UpdatedAt = now
	if sub.Proof != nil {
		p := *sub.Proof
		next.Proof = &p
	}
	if sub.Verification != nil {
		v := *sub.Verification
		next.Verification = &v
	}
	return next, nil
}

func (lm *LifecycleManager) Approve(task *entity.Task, child *entity.Child) (*ApprovalOutcome, error) {
	if task.ChildID != child.ID {
		return nil, errorvalues.ErrNotOwned
	}
	to, err := NextStatus(task.Status, EventApprove)
	if err != nil {
		return nil, err
	}
	now := lm.dates.Now()
	today := lm.dates.DateOf(now)

	// Multiplier is taken before the credit lands.
	mult := TierFor(child.TotalPoints)
	credited := mult.Apply(task.Points)

	nextChild := child.Clone()
	nextChild.Points += credited
	nextChild.TotalPoints += credited
	if lvl := LevelFor(nextChild.TotalPoints); lvl > nextChild.Level {
		nextChild.Level = lvl
	}
	nextChild.StreakDays = UpdateStreak(child.StreakDays, child.LastCompletedDate, today)
	if nextChild.StreakDays > nextChild.LongestStreak {
		nextChild.LongestStreak = nextChild.StreakDays
	}
	nextChild.LastCompletedDate = &today
	meter := AdvanceMailMeter(child.MailMeterProgress, credited, lm.mailScale)
	nextChild.MailMeterProgress = meter.Progress
	nextChild.MailRewardsUnlocked += meter.Unlocks
	badges := NewBadges(nextChild)
	for i := range badges {
		badges[i].AwardedAt = now
	}
	nextChild.Badges = append(nextChild.Badges, badges...)
	nextChild.UpdatedAt = now

	nextTask := task.Clone()
	nextTask.Status = to
	nextTask.ApprovedAt = &now
	nextTask.CreditedPoints = credited
	nextTask.UpdatedAt = now

	return &ApprovalOutcome{
		Task:        nextTask,
		Child:       nextChild,
		Credited:    credited,
		Multiplier:  mult,
		MailUnlocks: meter.Unlocks,
		NewBadges:   badges,
	}, nil
}

// Reject sends a completed task back to the child. The row is reopened in place:
// same id, rejection counted, submission data cleared.
func (lm *LifecycleManager) Reject(task *entity.Task) (*entity.Task, error) {
	rejected, err := NextStatus(task.Status, EventReject)
	if err != nil {
		return nil, err
	}
	reopened, err := NextStatus(rejected, EventReopen)
	if err != nil {
		return nil, err
	}
	now := lm.dates.Now()
	next := task.Clone()
	next.Status = reopened
	next.Rejections++
	next.LastRejectedAt = &now
	next.CompletedAt = nil
	next.Proof = nil
	next.Verification = nil
	next.UpdatedAt = now
	return next, nil
}
