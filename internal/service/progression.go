package service

import (
	"fmt"
	"math"

	"github.com/limbo/taskstars/pkg/entity"
)

type Multiplier float64

type multiplierStep struct {
	MinTotal   int
	Multiplier Multiplier
}

// Ascending by MinTotal.
var multiplierSteps = []multiplierStep{
	{MinTotal: 0, Multiplier: 1},
	{MinTotal: 250, Multiplier: 1.5},
	{MinTotal: 1000, Multiplier: 2},
	{MinTotal: 3000, Multiplier: 2.5},
	{MinTotal: 7500, Multiplier: 3},
}

// TierFor maps lifetime points to a reward multiplier.
func TierFor(totalPoints int) Multiplier {
	return multiplierSteps[tierIndex(totalPoints)].Multiplier
}

// TierLevel is the 1-based step of the multiplier table reached by totalPoints.
func TierLevel(totalPoints int) int {
	return tierIndex(totalPoints) + 1
}

func tierIndex(totalPoints int) int {
	idx := 0
	for i, step := range multiplierSteps {
		if totalPoints >= step.MinTotal {
			idx = i
		}
	}
	return idx
}

// Apply returns the integer reward for points, rounded down.
func (m Multiplier) Apply(points int) int {
	if points <= 0 {
		return 0
	}
	return int(math.Floor(float64(points) * float64(m)))
}

func LevelFor(totalPoints int) int {
	if totalPoints < 0 {
		return 1
	}
	return 1 + totalPoints/100
}

func AgeGroupFor(age int) entity.AgeGroup {
	switch {
	case age <= 7:
		return entity.AgeGroupLittle
	case age <= 10:
		return entity.AgeGroupJunior
	case age <= 13:
		return entity.AgeGroupTween
	default:
		return entity.AgeGroupTeen
	}
}

// UpdateStreak returns the streak after an approval on today.
func UpdateStreak(streak int, last *entity.Date, today entity.Date) int {
	if last == nil {
		return 1
	}
	switch today.DaysSince(*last) {
	case 0:
		if streak < 1 {
			return 1
		}
		return streak
	case 1:
		return streak + 1
	default:
		return 1
	}
}

type MailMeterResult struct {
	Progress float64
	Unlocks  int
}

// AdvanceMailMeter adds delta points scaled to percent, carrying overflow past 100.
func AdvanceMailMeter(current float64, delta int, scale float64) MailMeterResult {
	next := current + float64(delta)*scale
	unlocks := 0
	for next >= 100 {
		next -= 100
		unlocks++
	}
	if next < 0 {
		next = 0
	}
	return MailMeterResult{Progress: next, Unlocks: unlocks}
}

type badgeRule struct {
	ID      string
	Awarded func(c *entity.Child) bool
}

var achievementRules = []badgeRule{
	{ID: "first-task", Awarded: func(c *entity.Child) bool { return c.TotalPoints > 0 }},
	{ID: "streak-3", Awarded: func(c *entity.Child) bool { return c.StreakDays >= 3 }},
	{ID: "streak-7", Awarded: func(c *entity.Child) bool { return c.StreakDays >= 7 }},
	{ID: "streak-30", Awarded: func(c *entity.Child) bool { return c.StreakDays >= 30 }},
	{ID: "points-100", Awarded: func(c *entity.Child) bool { return c.TotalPoints >= 100 }},
	{ID: "points-1000", Awarded: func(c *entity.Child) bool { return c.TotalPoints >= 1000 }},
}

// NewBadges lists badges the child qualifies for but does not hold yet.
func NewBadges(c *entity.Child) []entity.Badge {
	var out []entity.Badge
	for _, rule := range achievementRules {
		if rule.Awarded(c) && !c.HasBadge(rule.ID) {
			out = append(out, entity.Badge{ID: rule.ID, Type: entity.BadgeAchievement})
		}
	}
	for lvl := 2; lvl <= TierLevel(c.TotalPoints); lvl++ {
		id := fmt.Sprintf("mascot-tier-%d", lvl)
		if !c.HasBadge(id) {
			out = append(out, entity.Badge{ID: id, Type: entity.BadgeMascot})
		}
	}
	return out
}
