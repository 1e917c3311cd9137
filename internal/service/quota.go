package service

import (
	"strings"

	errorvalues "github.com/limbo/taskstars/internal/error_values"
	"github.com/limbo/taskstars/pkg/entity"
)

// Unlimited is returned by limits that do not apply to a tier.
const Unlimited = -1

const customTasksPerDay = 5

func ParseTier(s string) (entity.Tier, error) {
	switch t := entity.Tier(strings.ToLower(strings.TrimSpace(s))); t {
	case entity.TierFree, entity.TierBasic, entity.TierStandard, entity.TierPremium:
		return t, nil
	}
	return "", errorvalues.ErrInvalidTier
}

func ChildLimit(tier entity.Tier) int {
	switch tier {
	case entity.TierStandard:
		return 3
	case entity.TierPremium:
		return Unlimited
	default:
		return 1
	}
}

// CustomTaskDailyQuota is how many parent-added tasks per child per day carry points.
func CustomTaskDailyQuota(entity.Tier) int {
	return customTasksPerDay
}

func DailyTaskCount(tier entity.Tier) int {
	switch tier {
	case entity.TierStandard, entity.TierPremium:
		return 5
	default:
		return 3
	}
}

func CanAddChild(tier entity.Tier, current int) bool {
	limit := ChildLimit(tier)
	return limit == Unlimited || current < limit
}
