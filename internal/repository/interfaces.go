package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/taskstars/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

type AccountsRepositoryI interface {
	// Creates new account. Email must be lower-cased by the caller
	Create(ctx context.Context, account *entity.Account) error
	// Looks up account by id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	// Updates display name, passcode hash, tier and address
	Update(ctx context.Context, account *entity.Account) error
}

type ChildrenRepositoryI interface {
	// Creates new child for account
	Create(ctx context.Context, child *entity.Child) error
	// Lists children of account in creation order, badges included
	GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Child, error)
}

type TasksRepositoryI interface {
	// Creates a single task
	Create(ctx context.Context, task *entity.Task) error
	// Moves carried pending tasks to their new due date and creates the rest, in one transaction
	SaveDailySet(ctx context.Context, carried, created []*entity.Task) error
	// Updates status-related fields of task
	Update(ctx context.Context, task *entity.Task) error
	// Lists all tasks of child ordered by due date and creation time
	GetByChildID(ctx context.Context, childID uuid.UUID) ([]*entity.Task, error)
	// Persists an approval: child progression, the approved task and new badges, atomically
	SaveApproval(ctx context.Context, child *entity.Child, task *entity.Task, badges []entity.Badge) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
