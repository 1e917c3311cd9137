package entity

import (
	"time"

	"github.com/google/uuid"
)

type Tier string

const (
	TierFree     Tier = "free"
	TierBasic    Tier = "basic"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
	StatusApproved  TaskStatus = "approved"
	StatusRejected  TaskStatus = "rejected"
)

type TaskOrigin string

const (
	OriginDaily  TaskOrigin = "daily-generated"
	OriginCustom TaskOrigin = "custom-parent-added"
)

type BadgeType string

const (
	BadgeAchievement BadgeType = "achievement"
	BadgeMascot      BadgeType = "mascot"
)

type AgeGroup string

const (
	AgeGroupLittle AgeGroup = "little"
	AgeGroupJunior AgeGroup = "junior"
	AgeGroupTween  AgeGroup = "tween"
	AgeGroupTeen   AgeGroup = "teen"
)

type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type Account struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasscodeHash string    `json:"-"`
	Tier         Tier      `json:"tier"`
	Address      *Address  `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Badge struct {
	ID        string    `json:"id"`
	Type      BadgeType `json:"type"`
	AwardedAt time.Time `json:"awarded_at"`
}

type Child struct {
	ID                  uuid.UUID `json:"id"`
	AccountID           uuid.UUID `json:"account_id"`
	Name                string    `json:"name"`
	Age                 int       `json:"age"`
	AgeGroup            AgeGroup  `json:"age_group"`
	Avatar              string    `json:"avatar"`
	Points              int       `json:"points"`
	TotalPoints         int       `json:"total_points"`
	Level               int       `json:"level"`
	StreakDays          int       `json:"streak_days"`
	LongestStreak       int       `json:"longest_streak"`
	LastCompletedDate   *Date     `json:"last_completed_date,omitempty"`
	MailMeterProgress   float64   `json:"mail_meter_progress"`
	MailRewardsUnlocked int       `json:"mail_rewards_unlocked"`
	Badges              []Badge   `json:"badges"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// HasBadge reports whether the child already holds the badge id.
func (c *Child) HasBadge(id string) bool {
	for _, b := range c.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, so progression can be computed without touching the original.
func (c *Child) Clone() *Child {
	cp := *c
	if c.LastCompletedDate != nil {
		d := *c.LastCompletedDate
		cp.LastCompletedDate = &d
	}
	cp.Badges = make([]Badge, len(c.Badges))
	copy(cp.Badges, c.Badges)
	return &cp
}

type Proof struct {
	PhotoURL       string `json:"photo_url,omitempty"`
	ElapsedSeconds int    `json:"elapsed_seconds,omitempty"`
}

// Verification is the advisory result of the photo analysis service.
type Verification struct {
	IsVerified  bool     `json:"is_verified"`
	Confidence  float64  `json:"confidence"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type Task struct {
	ID             uuid.UUID     `json:"id"`
	ChildID        uuid.UUID     `json:"child_id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Points         int           `json:"points"`
	Status         TaskStatus    `json:"status"`
	Origin         TaskOrigin    `json:"origin"`
	DueDate        Date          `json:"due_date"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
	ApprovedAt     *time.Time    `json:"approved_at,omitempty"`
	CreditedPoints int           `json:"credited_points"`
	Proof          *Proof        `json:"proof,omitempty"`
	Verification   *Verification `json:"verification,omitempty"`
	Rejections     int           `json:"rejections"`
	LastRejectedAt *time.Time    `json:"last_rejected_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (t *Task) Clone() *Task {
	cp := *t
	if t.Proof != nil {
		p := *t.Proof
		cp.Proof = &p
	}
	if t.Verification != nil {
		v := *t.Verification
		v.Suggestions = append([]string(nil), t.Verification.Suggestions...)
		cp.Verification = &v
	}
	return &cp
}
