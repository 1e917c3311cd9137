package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/taskstars/internal/error_values"
	"github.com/limbo/taskstars/internal/service"
	"github.com/limbo/taskstars/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

func TestNextStatus(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		From     entity.TaskStatus
		Event    service.TaskEvent
		Expected entity.TaskStatus
		Error    error
	}{
		{Desc: "submit pending", From: entity.StatusPending, Event: service.EventSubmit, Expected: entity.StatusCompleted},
		{Desc: "approve completed", From: entity.StatusCompleted, Event: service.EventApprove, Expected: entity.StatusApproved},
		{Desc: "reject completed", From: entity.StatusCompleted, Event: service.EventReject, Expected: entity.StatusRejected},
		{Desc: "reopen rejected", From: entity.StatusRejected, Event: service.EventReopen, Expected: entity.StatusPending},
		{Desc: "approve pending", From: entity.StatusPending, Event: service.EventApprove, Error: errorvalues.ErrInvalidTransition},
		{Desc: "reject pending", From: entity.StatusPending, Event: service.EventReject, Error: errorvalues.ErrInvalidTransition},
		{Desc: "submit completed", From: entity.StatusCompleted, Event: service.EventSubmit, Error: errorvalues.ErrInvalidTransition},
		{Desc: "approve approved", From: entity.StatusApproved, Event: service.EventApprove, Error: errorvalues.ErrInvalidTransition},
		{Desc: "reject approved", From: entity.StatusApproved, Event: service.EventReject, Error: errorvalues.ErrInvalidTransition},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			to, err := service.NextStatus(tc.From, tc.Event)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, to)
		})
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()
	assert.True(t, service.IsTerminal(entity.StatusApproved))
	assert.False(t, service.IsTerminal(entity.StatusRejected))
	assert.False(t, service.IsTerminal(entity.StatusPending))
}

func newLifecycle() (*service.LifecycleManager, *service.FixedClock) {
	clock := service.NewFixedClock(testNow)
	return service.NewLifecycleManager(service.NewDateProvider(clock, time.UTC), 0.5), clock
}

func TestLifecycleSubmit(t *testing.T) {
	t.Parallel()
	lm, _ := newLifecycle()
	childID := uuid.New()
	today := entity.DateOf(testNow)
	pending := &entity.Task{ID: uuid.New(), ChildID: childID, Status: entity.StatusPending, DueDate: today, Points: 10}

	t.Run("success with proof", func(t *testing.T) {
		next, err := lm.Submit(pending, childID, service.Submission{
			Proof:        &entity.Proof{PhotoURL: "https://img/1.jpg", ElapsedSeconds: 90},
			Verification: &entity.Verification{IsVerified: true, Confidence: 0.8},
		})
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, next.Status)
		require.NotNil(t, next.CompletedAt)
		assert.True(t, next.CompletedAt.Equal(testNow))
		assert.Equal(t, 90, next.Proof.ElapsedSeconds)
		assert.True(t, next.Verification.IsVerified)
		// input untouched
		assert.Equal(t, entity.StatusPending, pending.Status)
		assert.Nil(t, pending.CompletedAt)
	})
	t.Run("overdue task can be submitted", func(t *testing.T) {
		old := pending.Clone()
		old.DueDate = today.AddDays(-3)
		_, err := lm.Submit(old, childID, service.Submission{})
		assert.NoError(t, err)
	})
	t.Run("future task", func(t *testing.T) {
		future := pending.Clone()
		future.DueDate = today.AddDays(1)
		_, err := lm.Submit(future, childID, service.Submission{})
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotDue)
	})
	t.Run("other child", func(t *testing.T) {
		_, err := lm.Submit(pending, uuid.New(), service.Submission{})
		assert.ErrorIs(t, err, errorvalues.ErrNotOwned)
	})
	t.Run("already submitted", func(t *testing.T) {
		done := pending.Clone()
		done.Status = entity.StatusCompleted
		_, err := lm.Submit(done, childID, service.Submission{})
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTransition)
	})
}

func TestLifecycleApprove(t *testing.T) {
	t.Parallel()
	lm, _ := newLifecycle()
	today := entity.DateOf(testNow)
	yesterday := today.AddDays(-1)
	child := &entity.Child{
		ID:                uuid.New(),
		Points:            40,
		TotalPoints:       300,
		Level:             4,
		StreakDays:        2,
		LastCompletedDate: &yesterday,
		MailMeterProgress: 90,
		Badges:            []entity.Badge{},
	}
	task := &entity.Task{ID: uuid.New(), ChildID: child.ID, Status: entity.StatusCompleted, Points: 20, DueDate: today}

	outcome, err := lm.Approve(task, child)
	require.NoError(t, err)
	// 300 total is the 1.5x step, evaluated before the credit
	assert.Equal(t, service.Multiplier(1.5), outcome.Multiplier)
	assert.Equal(t, 30, outcome.Credited)
	assert.Equal(t, 70, outcome.Child.Points)
	assert.Equal(t, 330, outcome.Child.TotalPoints)
	assert.Equal(t, 4, outcome.Child.Level)
	assert.Equal(t, 3, outcome.Child.StreakDays)
	assert.Equal(t, 3, outcome.Child.LongestStreak)
	assert.Equal(t, today, *outcome.Child.LastCompletedDate)
	// 90 + 30*0.5 = 105
	assert.Equal(t, 1, outcome.MailUnlocks)
	assert.InDelta(t, 5, outcome.Child.MailMeterProgress, 1e-9)
	assert.Equal(t, 1, outcome.Child.MailRewardsUnlocked)
	assert.Equal(t, entity.StatusApproved, outcome.Task.Status)
	assert.Equal(t, 30, outcome.Task.CreditedPoints)
	require.NotNil(t, outcome.Task.ApprovedAt)
	assert.NotEmpty(t, outcome.NewBadges)
	assert.Len(t, outcome.Child.Badges, len(outcome.NewBadges))

	// inputs untouched
	assert.Equal(t, 300, child.TotalPoints)
	assert.Equal(t, entity.StatusCompleted, task.Status)

	t.Run("approving the approved task fails", func(t *testing.T) {
		_, err := lm.Approve(outcome.Task, outcome.Child)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTransition)
	})
	t.Run("pending cannot jump to approved", func(t *testing.T) {
		pending := task.Clone()
		pending.Status = entity.StatusPending
		_, err := lm.Approve(pending, child)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTransition)
	})
	t.Run("task of another child", func(t *testing.T) {
		other := task.Clone()
		other.ChildID = uuid.New()
		_, err := lm.Approve(other, child)
		assert.ErrorIs(t, err, errorvalues.ErrNotOwned)
	})
}

func TestLifecycleApproveSameDayKeepsStreak(t *testing.T) {
	t.Parallel()
	lm, _ := newLifecycle()
	today := entity.DateOf(testNow)
	yesterday := today.AddDays(-1)
	child := &entity.Child{ID: uuid.New(), StreakDays: 5, LastCompletedDate: &yesterday}
	first := &entity.Task{ID: uuid.New(), ChildID: child.ID, Status: entity.StatusCompleted, Points: 10}
	second := &entity.Task{ID: uuid.New(), ChildID: child.ID, Status: entity.StatusCompleted, Points: 10}

	o1, err := lm.Approve(first, child)
	require.NoError(t, err)
	o2, err := lm.Approve(second, o1.Child)
	require.NoError(t, err)
	assert.Equal(t, 6, o1.Child.StreakDays)
	assert.Equal(t, 6, o2.Child.StreakDays)
	assert.Equal(t, 20, o2.Child.TotalPoints)
}

func TestLifecycleApproveAfterGapRestartsStreak(t *testing.T) {
	t.Parallel()
	lm, clock := newLifecycle()
	today := entity.DateOf(testNow)
	child := &entity.Child{ID: uuid.New(), StreakDays: 1, LastCompletedDate: &today, LongestStreak: 4}
	task := &entity.Task{ID: uuid.New(), ChildID: child.ID, Status: entity.StatusCompleted, Points: 10}

	clock.Advance(72 * time.Hour)
	outcome, err := lm.Approve(task, child)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Child.StreakDays)
	assert.Equal(t, 4, outcome.Child.LongestStreak)
}

func TestLifecycleReject(t *testing.T) {
	t.Parallel()
	lm, _ := newLifecycle()
	completedAt := testNow.Add(-time.Hour)
	task := &entity.Task{
		ID:           uuid.New(),
		ChildID:      uuid.New(),
		Status:       entity.StatusCompleted,
		Points:       15,
		CompletedAt:  &completedAt,
		Proof:        &entity.Proof{PhotoURL: "https://img/2.jpg"},
		Verification: &entity.Verification{IsVerified: false, Confidence: 0.2},
	}
	next, err := lm.Reject(task)
	require.NoError(t, err)
	assert.Equal(t, task.ID, next.ID)
	assert.Equal(t, entity.StatusPending, next.Status)
	assert.Equal(t, 1, next.Rejections)
	assert.Equal(t, 15, next.Points)
	assert.Equal(t, 0, next.CreditedPoints)
	assert.Nil(t, next.CompletedAt)
	assert.Nil(t, next.Proof)
	assert.Nil(t, next.Verification)
	require.NotNil(t, next.LastRejectedAt)

	t.Run("pending cannot be rejected", func(t *testing.T) {
		_, err := lm.Reject(next)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTransition)
	})
	t.Run("approved cannot be rejected", func(t *testing.T) {
		approved := task.Clone()
		approved.Status = entity.StatusApproved
		_, err := lm.Reject(approved)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTransition)
	})
}
