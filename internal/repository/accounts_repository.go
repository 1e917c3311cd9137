package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/taskstars/internal/error_values"
	"github.com/limbo/taskstars/pkg/entity"
)

type AccountsRepository struct {
	conn PgConnection
}

func NewAccountsRepo(cfg DBConfig) *AccountsRepository {
	return &AccountsRepository{
		conn: NewPool(cfg),
	}
}

func NewAccountsRepoWithConn(conn PgConnection) *AccountsRepository {
	pingOrDie(conn, "accountsRepo")
	return &AccountsRepository{
		conn: conn,
	}
}

func (ar *AccountsRepository) Create(ctx context.Context, account *entity.Account) error {
	if account == nil {
		return errors.New("account is nil")
	}
	address, err := encodeAddress(account.Address)
	if err != nil {
		return err
	}
	_, err = ar.conn.Exec(ctx,
		`INSERT INTO accounts (id, email, display_name, passcode_hash, tier, address, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		account.ID,
		account.Email,
		account.DisplayName,
		account.PasscodeHash,
		string(account.Tier),
		address,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return errorvalues.ErrAccountExists
		}
		return errors.New("creating account db error: " + err.Error())
	}
	return nil
}

func (ar *AccountsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	row := ar.conn.QueryRow(ctx,
		`SELECT id, email, display_name, passcode_hash, tier, address, created_at, updated_at FROM accounts WHERE id = $1;`,
		id,
	)
	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAccountNotFound
		}
		return nil, errors.New("searching account by id error: " + err.Error())
	}
	return account, nil
}

func (ar *AccountsRepository) Update(ctx context.Context, account *entity.Account) error {
	address, err := encodeAddress(account.Address)
	if err != nil {
		return err
	}
	ct, err := ar.conn.Exec(ctx,
		`UPDATE accounts SET display_name = $1, passcode_hash = $2, tier = $3, address = $4, updated_at = $5 WHERE id = $6;`,
		account.DisplayName,
		account.PasscodeHash,
		string(account.Tier),
		address,
		account.UpdatedAt,
		account.ID,
	)
	if err != nil {
		return errors.New("updating account error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrAccountNotFound
	}
	return nil
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var (
		account entity.Account
		tier    string
		address []byte
	)
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.DisplayName,
		&account.PasscodeHash,
		&tier,
		&address,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	account.Tier = entity.Tier(tier)
	if len(address) > 0 {
		var a entity.Address
		if err := sonic.Unmarshal(address, &a); err != nil {
			return nil, errors.New("decoding address error: " + err.Error())
		}
		account.Address = &a
	}
	return &account, nil
}

func encodeAddress(a *entity.Address) ([]byte, error) {
	if a == nil {
		return nil, nil
	}
	data, err := sonic.Marshal(a)
	if err != nil {
		return nil, errors.New("encoding address error: " + err.Error())
	}
	return data, nil
}
