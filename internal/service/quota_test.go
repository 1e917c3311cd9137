package service_test

import (
	"testing"

	errorvalues "github.com/limbo/taskstars/internal/error_values"
	"github.com/limbo/taskstars/internal/service"
	"github.com/limbo/taskstars/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestChildLimit(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, service.ChildLimit(entity.TierFree))
	assert.Equal(t, 1, service.ChildLimit(entity.TierBasic))
	assert.Equal(t, 3, service.ChildLimit(entity.TierStandard))
	assert.Equal(t, service.Unlimited, service.ChildLimit(entity.TierPremium))
}

func TestCanAddChild(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		Tier     entity.Tier
		Current  int
		Expected bool
	}{
		{Desc: "free first child", Tier: entity.TierFree, Current: 0, Expected: true},
		{Desc: "free second child", Tier: entity.TierFree, Current: 1, Expected: false},
		{Desc: "basic second child", Tier: entity.TierBasic, Current: 1, Expected: false},
		{Desc: "standard third child", Tier: entity.TierStandard, Current: 2, Expected: true},
		{Desc: "standard fourth child", Tier: entity.TierStandard, Current: 3, Expected: false},
		{Desc: "premium never blocks", Tier: entity.TierPremium, Current: 500, Expected: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, service.CanAddChild(tc.Tier, tc.Current))
		})
	}
}

func TestCustomTaskDailyQuota(t *testing.T) {
	t.Parallel()
	for _, tier := range []entity.Tier{entity.TierFree, entity.TierBasic, entity.TierStandard, entity.TierPremium} {
		assert.Equal(t, 5, service.CustomTaskDailyQuota(tier), string(tier))
	}
}

func TestDailyTaskCount(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, service.DailyTaskCount(entity.TierFree))
	assert.Equal(t, 3, service.DailyTaskCount(entity.TierBasic))
	assert.Equal(t, 5, service.DailyTaskCount(entity.TierStandard))
	assert.Equal(t, 5, service.DailyTaskCount(entity.TierPremium))
}

func TestParseTier(t *testing.T) {
	t.Parallel()
	tier, err := service.ParseTier(" Premium ")
	assert.NoError(t, err)
	assert.Equal(t, entity.TierPremium, tier)

	_, err = service.ParseTier("gold")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidTier)
}
