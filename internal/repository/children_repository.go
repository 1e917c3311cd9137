package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/taskstars/internal/error_values"
	"github.com/limbo/taskstars/pkg/entity"
)

type ChildrenRepository struct {
	conn PgConnection
}

func NewChildrenRepo(cfg DBConfig) *ChildrenRepository {
	return &ChildrenRepository{
		conn: NewPool(cfg),
	}
}

func NewChildrenRepoWithConn(conn PgConnection) *ChildrenRepository {
	pingOrDie(conn, "childrenRepo")
	return &ChildrenRepository{
		conn: conn,
	}
}

func (cr *ChildrenRepository) Create(ctx context.Context, child *entity.Child) error {
	if child == nil {
		return errors.New("child is nil")
	}
	_, err := cr.conn.Exec(ctx,
		`INSERT INTO children (id, account_id, name, age, avatar, level, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		child.ID,
		child.AccountID,
		child.Name,
		child.Age,
		child.Avatar,
		child.Level,
		child.CreatedAt,
		child.UpdatedAt,
	)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrAccountNotFound
		}
		return errors.New("creating child db error: " + err.Error())
	}
	return nil
}

func (cr *ChildrenRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Child, error) {
	rows, err := cr.conn.Query(ctx,
		`SELECT id, account_id, name, age, avatar, points, total_points, level, streak_days, longest_streak, last_completed_date, mail_meter_progress, mail_rewards_unlocked, created_at, updated_at FROM children WHERE account_id = $1 ORDER BY created_at, id;`,
		accountID,
	)
	if err != nil {
		return nil, errors.New("getting children error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.Child, 0, 2)
	byID := make(map[uuid.UUID]*entity.Child)
	for rows.Next() {
		var (
			child entity.Child
			last  *time.Time
		)
		err = rows.Scan(
			&child.ID,
			&child.AccountID,
			&child.Name,
			&child.Age,
			&child.Avatar,
			&child.Points,
			&child.TotalPoints,
			&child.Level,
			&child.StreakDays,
			&child.LongestStreak,
			&last,
			&child.MailMeterProgress,
			&child.MailRewardsUnlocked,
			&child.CreatedAt,
			&child.UpdatedAt,
		)
		if err != nil {
			return nil, errors.New("child row parsing error: " + err.Error())
		}
		if last != nil {
			d := entity.DateOf(last.UTC())
			child.LastCompletedDate = &d
		}
		child.Badges = []entity.Badge{}
		result = append(result, &child)
		byID[child.ID] = &child
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected child rows error: " + err.Error())
	}
	if len(result) == 0 {
		return result, nil
	}

	badgeRows, err := cr.conn.Query(ctx,
		`SELECT b.child_id, b.badge_id, b.badge_type, b.awarded_at FROM child_badges b JOIN children c ON c.id = b.child_id WHERE c.account_id = $1 ORDER BY b.awarded_at, b.badge_id;`,
		accountID,
	)
	if err != nil {
		return nil, errors.New("getting badges error: " + err.Error())
	}
	defer badgeRows.Close()
	for badgeRows.Next() {
		var (
			childID   uuid.UUID
			badge     entity.Badge
			badgeType string
		)
		if err := badgeRows.Scan(&childID, &badge.ID, &badgeType, &badge.AwardedAt); err != nil {
			return nil, errors.New("badge row parsing error: " + err.Error())
		}
		badge.Type = entity.BadgeType(badgeType)
		if child, ok := byID[childID]; ok {
			child.Badges = append(child.Badges, badge)
		}
	}
	if err := badgeRows.Err(); err != nil {
		return nil, errors.New("unexpected badge rows error: " + err.Error())
	}
	return result, nil
}
