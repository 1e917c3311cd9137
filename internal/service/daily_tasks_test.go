package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/taskstars/internal/service"
	"github.com/limbo/taskstars/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(tasks []*entity.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}

func TestDailyPlanCreatesFullSet(t *testing.T) {
	t.Parallel()
	clock := service.NewFixedClock(testNow)
	gen := service.NewDailyTaskGenerator(service.NewDateProvider(clock, time.UTC), nil)
	child := &entity.Child{ID: uuid.New(), Age: 9, AgeGroup: entity.AgeGroupJunior}
	today := entity.DateOf(testNow)

	planned := gen.Plan(child, entity.TierStandard, today, nil).Tasks()
	require.Len(t, planned, 5)
	seen := make(map[string]bool)
	for _, task := range planned {
		assert.Equal(t, child.ID, task.ChildID)
		assert.Equal(t, entity.OriginDaily, task.Origin)
		assert.Equal(t, entity.StatusPending, task.Status)
		assert.Equal(t, today, task.DueDate)
		assert.Greater(t, task.Points, 0)
		assert.False(t, seen[task.Title], "duplicate title %s", task.Title)
		seen[task.Title] = true
	}

	free := gen.Plan(&entity.Child{ID: uuid.New(), AgeGroup: entity.AgeGroupTeen}, entity.TierFree, today, nil).Tasks()
	assert.Len(t, free, 3)
}

func TestDailyPlanIsIdempotent(t *testing.T) {
	t.Parallel()
	clock := service.NewFixedClock(testNow)
	gen := service.NewDailyTaskGenerator(service.NewDateProvider(clock, time.UTC), service.NewDailyLedger())
	child := &entity.Child{ID: uuid.New(), AgeGroup: entity.AgeGroupLittle}
	today := entity.DateOf(testNow)

	t.Run("ledger remembers the committed set", func(t *testing.T) {
		planned := gen.Plan(child, entity.TierFree, today, nil).Tasks()
		require.NotEmpty(t, planned)
		gen.Commit(child.ID, today, planned)
		assert.Nil(t, gen.Plan(child, entity.TierFree, today, nil))
	})
	t.Run("stored tasks count without ledger entry", func(t *testing.T) {
		other := &entity.Child{ID: uuid.New(), AgeGroup: entity.AgeGroupLittle}
		existing := []*entity.Task{{
			ID:      uuid.New(),
			ChildID: other.ID,
			Title:   "Make your bed",
			Origin:  entity.OriginDaily,
			DueDate: today,
			Status:  entity.StatusApproved,
		}}
		assert.Nil(t, gen.Plan(other, entity.TierFree, today, existing))
		// and now it is in the ledger too
		assert.Nil(t, gen.Plan(other, entity.TierFree, today, nil))
	})
	t.Run("custom tasks do not count as a daily set", func(t *testing.T) {
		other := &entity.Child{ID: uuid.New(), AgeGroup: entity.AgeGroupLittle}
		existing := []*entity.Task{{ID: uuid.New(), ChildID: other.ID, Title: "Walk the dog", Origin: entity.OriginCustom, DueDate: today}}
		assert.Len(t, gen.Plan(other, entity.TierFree, today, existing).Tasks(), 3)
	})
	t.Run("next day gets a new set", func(t *testing.T) {
		assert.NotEmpty(t, gen.Plan(child, entity.TierFree, today.AddDays(1), nil).Tasks())
	})
}

func TestDailyPlanCarriesUnfinishedTasks(t *testing.T) {
	t.Parallel()
	clock := service.NewFixedClock(testNow)
	gen := service.NewDailyTaskGenerator(service.NewDateProvider(clock, time.UTC), nil)
	child := &entity.Child{ID: uuid.New(), AgeGroup: entity.AgeGroupTween}
	today := entity.DateOf(testNow)
	existing := []*entity.Task{
		{ID: uuid.New(), ChildID: child.ID, Title: "Old approved", Origin: entity.OriginDaily, Status: entity.StatusApproved, DueDate: today.AddDays(-1), Points: 10},
		{ID: uuid.New(), ChildID: child.ID, Title: "Practice piano", Origin: entity.OriginDaily, Status: entity.StatusPending, DueDate: today.AddDays(-2), Points: 25},
		{ID: uuid.New(), ChildID: child.ID, Title: "Water plants", Origin: entity.OriginDaily, Status: entity.StatusPending, DueDate: today.AddDays(-1), Points: 10},
	}
	plan := gen.Plan(child, entity.TierFree, today, existing)
	require.NotNil(t, plan)
	require.Len(t, plan.Carried, 2)
	require.Len(t, plan.Created, 1)
	// newest unfinished first, then the catalog
	assert.Equal(t, "Water plants", plan.Carried[0].Title)
	assert.Equal(t, "Practice piano", plan.Carried[1].Title)
	assert.NotContains(t, titles(plan.Tasks()), "Old approved")

	// carried tasks keep their rows and move to today
	assert.Equal(t, existing[2].ID, plan.Carried[0].ID)
	assert.Equal(t, existing[1].ID, plan.Carried[1].ID)
	assert.Equal(t, 25, plan.Carried[1].Points)
	for _, task := range plan.Carried {
		assert.Equal(t, today, task.DueDate)
	}
	assert.Equal(t, today.AddDays(-2), existing[1].DueDate, "input left untouched")
	assert.NotEqual(t, existing[0].ID, plan.Created[0].ID)
}

func TestDailyPlanRotatesByDay(t *testing.T) {
	t.Parallel()
	clock := service.NewFixedClock(testNow)
	gen := service.NewDailyTaskGenerator(service.NewDateProvider(clock, time.UTC), nil)
	child := &entity.Child{ID: uuid.New(), AgeGroup: entity.AgeGroupJunior}
	today := entity.DateOf(testNow)

	first := titles(gen.Plan(child, entity.TierFree, today, nil).Tasks())
	second := titles(gen.Plan(child, entity.TierFree, today.AddDays(1), nil).Tasks())
	assert.NotEqual(t, first, second)
}

func TestDailyLedgerPrune(t *testing.T) {
	t.Parallel()
	ledger := service.NewDailyLedger()
	childID := uuid.New()
	today := entity.DateOf(testNow)
	ledger.Record(childID, today.AddDays(-2), []uuid.UUID{uuid.New()})
	ledger.Record(childID, today, []uuid.UUID{uuid.New()})

	ledger.Prune(today)
	_, ok := ledger.Lookup(childID, today.AddDays(-2))
	assert.False(t, ok)
	ids, ok := ledger.Lookup(childID, today)
	assert.True(t, ok)
	assert.Len(t, ids, 1)
}
