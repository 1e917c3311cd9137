package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/taskstars/internal/error_values"
	"github.com/limbo/taskstars/pkg/entity"
)

const insertTaskQuery = `INSERT INTO tasks (id, child_id, title, description, points, status, origin, due_date, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

type TasksRepository struct {
	conn PgConnection
}

func NewTasksRepo(cfg DBConfig) *TasksRepository {
	return &TasksRepository{
		conn: NewPool(cfg),
	}
}

func NewTasksRepoWithConn(conn PgConnection) *TasksRepository {
	pingOrDie(conn, "tasksRepo")
	return &TasksRepository{
		conn: conn,
	}
}

func taskInsertArgs(t *entity.Task) []any {
	return []any{
		t.ID,
		t.ChildID,
		t.Title,
		t.Description,
		t.Points,
		string(t.Status),
		string(t.Origin),
		t.DueDate.Time(),
		t.CreatedAt,
		t.UpdatedAt,
	}
}

func (tr *TasksRepository) Create(ctx context.Context, task *entity.Task) error {
	if task == nil {
		return errors.New("task is nil")
	}
	_, err := tr.conn.Exec(ctx, insertTaskQuery, taskInsertArgs(task)...)
	if err != nil {
		return translateTaskInsertErr(err)
	}
	return nil
}

// SaveDailySet moves carried pending tasks to their new due date and inserts
// created ones in one transaction.
func (tr *TasksRepository) SaveDailySet(ctx context.Context, carried, created []*entity.Task) error {
	if len(carried) == 0 && len(created) == 0 {
		return nil
	}
	tx, err := tr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning daily set error: " + err.Error())
	}
	for _, t := range carried {
		ct, err := tx.Exec(ctx,
			`UPDATE tasks SET due_date = $1, updated_at = $2 WHERE id = $3 AND status = 'pending';`,
			t.DueDate.Time(),
			t.UpdatedAt,
			t.ID,
		)
		if err != nil {
			if pgErrCode(err) == pgUniqueViolation {
				return rollback(ctx, tx, errorvalues.ErrTaskExists)
			}
			return rollback(ctx, tx, errors.New("moving daily task error: "+err.Error()))
		}
		if ct.RowsAffected() == 0 {
			// Submitted or removed since it was read
			return rollback(ctx, tx, errorvalues.ErrInvalidTransition)
		}
	}
	for _, t := range created {
		if _, err := tx.Exec(ctx, insertTaskQuery, taskInsertArgs(t)...); err != nil {
			return rollback(ctx, tx, translateTaskInsertErr(err))
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing daily set error: " + err.Error())
	}
	return nil
}

func translateTaskInsertErr(err error) error {
	switch pgErrCode(err) {
	// Daily (child_id, title, due_date) already present
	case pgUniqueViolation:
		return errorvalues.ErrTaskExists
	case pgForeignKeyViolation:
		return errorvalues.ErrChildNotFound
	}
	return errors.New("creating task db error: " + err.Error())
}

func (tr *TasksRepository) Update(ctx context.Context, task *entity.Task) error {
	proof, verification, err := encodeSubmission(task)
	if err != nil {
		return err
	}
	ct, err := tr.conn.Exec(ctx,
		`UPDATE tasks SET status = $1, completed_at = $2, approved_at = $3, credited_points = $4, proof = $5, verification = $6, rejections = $7, last_rejected_at = $8, updated_at = $9 WHERE id = $10;`,
		string(task.Status),
		task.CompletedAt,
		task.ApprovedAt,
		task.CreditedPoints,
		proof,
		verification,
		task.Rejections,
		task.LastRejectedAt,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return errors.New("updating task error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrTaskNotFound
	}
	return nil
}

func (tr *TasksRepository) GetByChildID(ctx context.Context, childID uuid.UUID) ([]*entity.Task, error) {
	rows, err := tr.conn.Query(ctx,
		`SELECT id, child_id, title, description, points, status, origin, due_date, completed_at, approved_at, credited_points, proof, verification, rejections, last_rejected_at, created_at, updated_at FROM tasks WHERE child_id = $1 ORDER BY due_date, created_at, id;`,
		childID,
	)
	if err != nil {
		return nil, errors.New("getting tasks error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.Task, 0, 8)
	for rows.Next() {
		var (
			task         entity.Task
			status       string
			origin       string
			due          time.Time
			proof        []byte
			verification []byte
		)
		err = rows.Scan(
			&task.ID,
			&task.ChildID,
			&task.Title,
			&task.Description,
			&task.Points,
			&status,
			&origin,
			&due,
			&task.CompletedAt,
			&task.ApprovedAt,
			&task.CreditedPoints,
			&proof,
			&verification,
			&task.Rejections,
			&task.LastRejectedAt,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, errors.New("task row parsing error: " + err.Error())
		}
		task.Status = entity.TaskStatus(status)
		task.Origin = entity.TaskOrigin(origin)
		task.DueDate = entity.DateOf(due.UTC())
		if len(proof) > 0 {
			task.Proof = &entity.Proof{}
			if err := sonic.Unmarshal(proof, task.Proof); err != nil {
				return nil, errors.New("decoding proof error: " + err.Error())
			}
		}
		if len(verification) > 0 {
			task.Verification = &entity.Verification{}
			if err := sonic.Unmarshal(verification, task.Verification); err != nil {
				return nil, errors.New("decoding verification error: " + err.Error())
			}
		}
		result = append(result, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected task rows error: " + err.Error())
	}
	return result, nil
}

func (tr *TasksRepository) SaveApproval(ctx context.Context, child *entity.Child, task *entity.Task, badges []entity.Badge) error {
	var last *time.Time
	if child.LastCompletedDate != nil {
		t := child.LastCompletedDate.Time()
		last = &t
	}
	tx, err := tr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning approval error: " + err.Error())
	}
	// Guarded by status so a concurrent approval elsewhere cannot credit twice.
	ct, err := tx.Exec(ctx,
		`UPDATE tasks SET status = $1, approved_at = $2, credited_points = $3, updated_at = $4 WHERE id = $5 AND status = 'completed';`,
		string(task.Status),
		task.ApprovedAt,
		task.CreditedPoints,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return rollback(ctx, tx, errors.New("approving task error: "+err.Error()))
	}
	if ct.RowsAffected() == 0 {
		return rollback(ctx, tx, errorvalues.ErrInvalidTransition)
	}
	ct, err = tx.Exec(ctx,
		`UPDATE children SET points = $1, total_points = $2, level = $3, streak_days = $4, longest_streak = $5, last_completed_date = $6, mail_meter_progress = $7, mail_rewards_unlocked = $8, updated_at = $9 WHERE id = $10;`,
		child.Points,
		child.TotalPoints,
		child.Level,
		child.StreakDays,
		child.LongestStreak,
		last,
		child.MailMeterProgress,
		child.MailRewardsUnlocked,
		child.UpdatedAt,
		child.ID,
	)
	if err != nil {
		return rollback(ctx, tx, errors.New("crediting child error: "+err.Error()))
	}
	if ct.RowsAffected() == 0 {
		return rollback(ctx, tx, errorvalues.ErrChildNotFound)
	}
	for _, b := range badges {
		_, err = tx.Exec(ctx,
			`INSERT INTO child_badges (child_id, badge_id, badge_type, awarded_at) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING;`,
			child.ID,
			b.ID,
			string(b.Type),
			b.AwardedAt,
		)
		if err != nil {
			return rollback(ctx, tx, errors.New("awarding badge error: "+err.Error()))
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.New("committing approval error: " + err.Error())
	}
	return nil
}

func encodeSubmission(task *entity.Task) ([]byte, []byte, error) {
	var proof, verification []byte
	var err error
	if task.Proof != nil {
		if proof, err = sonic.Marshal(task.Proof); err != nil {
			return nil, nil, errors.New("encoding proof error: " + err.Error())
		}
	}
	if task.Verification != nil {
		if verification, err = sonic.Marshal(task.Verification); err != nil {
			return nil, nil, errors.New("encoding verification error: " + err.Error())
		}
	}
	return proof, verification, nil
}
