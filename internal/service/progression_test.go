package service_test

import (
	"testing"

	"github.com/limbo/taskstars/internal/service"
	"github.com/limbo/taskstars/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		Total    int
		Expected service.Multiplier
	}{
		{Desc: "new child", Total: 0, Expected: 1},
		{Desc: "just below first step", Total: 249, Expected: 1},
		{Desc: "first step", Total: 250, Expected: 1.5},
		{Desc: "second step", Total: 1000, Expected: 2},
		{Desc: "third step", Total: 3999, Expected: 2.5},
		{Desc: "top step", Total: 100000, Expected: 3},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, service.TierFor(tc.Total))
		})
	}
}

func TestTierForIsMonotonic(t *testing.T) {
	t.Parallel()
	prev := service.TierFor(0)
	for total := 1; total <= 10000; total += 7 {
		cur := service.TierFor(total)
		assert.GreaterOrEqual(t, float64(cur), float64(prev), "total %d", total)
		prev = cur
	}
}

func TestMultiplierApply(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 10, service.Multiplier(1).Apply(10))
	assert.Equal(t, 15, service.Multiplier(1.5).Apply(10))
	// rounded down
	assert.Equal(t, 7, service.Multiplier(1.5).Apply(5))
	assert.Equal(t, 0, service.Multiplier(3).Apply(0))
	assert.Equal(t, 0, service.Multiplier(3).Apply(-4))
}

func TestLevelFor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, service.LevelFor(0))
	assert.Equal(t, 1, service.LevelFor(99))
	assert.Equal(t, 2, service.LevelFor(100))
	assert.Equal(t, 11, service.LevelFor(1050))
}

func TestAgeGroupFor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, entity.AgeGroupLittle, service.AgeGroupFor(5))
	assert.Equal(t, entity.AgeGroupLittle, service.AgeGroupFor(7))
	assert.Equal(t, entity.AgeGroupJunior, service.AgeGroupFor(8))
	assert.Equal(t, entity.AgeGroupTween, service.AgeGroupFor(13))
	assert.Equal(t, entity.AgeGroupTeen, service.AgeGroupFor(17))
}

func TestUpdateStreak(t *testing.T) {
	t.Parallel()
	today := entity.Date{Year: 2025, Month: 3, Day: 10}
	yesterday := today.AddDays(-1)
	longAgo := today.AddDays(-5)
	testCases := []struct {
		Desc     string
		Streak   int
		Last     *entity.Date
		Expected int
	}{
		{Desc: "first approval ever", Streak: 0, Last: nil, Expected: 1},
		{Desc: "continued from yesterday", Streak: 4, Last: &yesterday, Expected: 5},
		{Desc: "already counted today", Streak: 4, Last: &today, Expected: 4},
		{Desc: "gap resets to one", Streak: 9, Last: &longAgo, Expected: 1},
		{Desc: "same day with zero streak", Streak: 0, Last: &today, Expected: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, service.UpdateStreak(tc.Streak, tc.Last, today))
		})
	}
}

func TestUpdateStreakAcrossMonthBoundary(t *testing.T) {
	t.Parallel()
	last := entity.Date{Year: 2024, Month: 2, Day: 29}
	today := entity.Date{Year: 2024, Month: 3, Day: 1}
	assert.Equal(t, 3, service.UpdateStreak(2, &last, today))
}

func TestAdvanceMailMeter(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc             string
		Current          float64
		Delta            int
		Scale            float64
		ExpectedProgress float64
		ExpectedUnlocks  int
	}{
		{Desc: "no crossing", Current: 10, Delta: 20, Scale: 1, ExpectedProgress: 30, ExpectedUnlocks: 0},
		{Desc: "crossing keeps remainder", Current: 90, Delta: 20, Scale: 1, ExpectedProgress: 10, ExpectedUnlocks: 1},
		{Desc: "exactly one hundred", Current: 50, Delta: 100, Scale: 0.5, ExpectedProgress: 0, ExpectedUnlocks: 1},
		{Desc: "several unlocks in one credit", Current: 80, Delta: 250, Scale: 1, ExpectedProgress: 30, ExpectedUnlocks: 3},
		{Desc: "zero delta", Current: 42, Delta: 0, Scale: 1, ExpectedProgress: 42, ExpectedUnlocks: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			res := service.AdvanceMailMeter(tc.Current, tc.Delta, tc.Scale)
			assert.InDelta(t, tc.ExpectedProgress, res.Progress, 1e-9)
			assert.Equal(t, tc.ExpectedUnlocks, res.Unlocks)
		})
	}
}

func TestMailMeterSequenceUnlocksOnce(t *testing.T) {
	t.Parallel()
	meter := 0.0
	unlocks := 0
	for _, delta := range []int{30, 30, 30, 30} {
		res := service.AdvanceMailMeter(meter, delta, 1)
		meter = res.Progress
		unlocks += res.Unlocks
	}
	assert.Equal(t, 1, unlocks)
	assert.InDelta(t, 20, meter, 1e-9)
}

func TestNewBadges(t *testing.T) {
	t.Parallel()
	child := &entity.Child{TotalPoints: 1200, StreakDays: 7}
	badges := service.NewBadges(child)
	ids := make(map[string]entity.BadgeType)
	for _, b := range badges {
		ids[b.ID] = b.Type
	}
	assert.Equal(t, entity.BadgeAchievement, ids["first-task"])
	assert.Equal(t, entity.BadgeAchievement, ids["streak-3"])
	assert.Equal(t, entity.BadgeAchievement, ids["streak-7"])
	assert.Equal(t, entity.BadgeAchievement, ids["points-1000"])
	assert.Equal(t, entity.BadgeMascot, ids["mascot-tier-2"])
	assert.Equal(t, entity.BadgeMascot, ids["mascot-tier-3"])
	assert.NotContains(t, ids, "streak-30")
	assert.NotContains(t, ids, "mascot-tier-4")

	child.Badges = badges
	assert.Empty(t, service.NewBadges(child))
}
