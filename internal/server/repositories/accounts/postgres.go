package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"github.com/dmitrijs2005/pinvault/internal/dbx"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
)

const selectColumns = `SELECT id, email, username, password_salt, password_hash, pin_salt, pin_verifier, pin_version, created_at
		FROM accounts`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query := `
		INSERT INTO accounts (email, username, password_salt, password_hash, pin_salt, pin_verifier)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, pin_version, created_at
	`

	var id string
	err := r.db.QueryRowContext(ctx, query,
		account.Email, account.UserName, account.PasswordSalt, account.PasswordHash,
		account.PinSalt, account.PinVerifier,
	).Scan(&id, &account.PinVersion, &account.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	account.ID = models.AccountID(id)
	return account, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := selectColumns + `
		WHERE email = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id models.AccountID) (*models.Account, error) {
	query := selectColumns + `
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, string(id)))
}

func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id models.AccountID) (*models.Account, error) {
	query := selectColumns + `
		WHERE id = $1
		FOR UPDATE
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, string(id)))
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, id models.AccountID, salt, hash []byte) error {
	query := `
		UPDATE accounts SET password_salt = $2, password_hash = $3
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, string(id), salt, hash)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *PostgresRepository) UpdatePin(ctx context.Context, id models.AccountID, salt, verifier []byte, version int64) error {
	query := `
		UPDATE accounts SET pin_salt = $2, pin_verifier = $3, pin_version = $4
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, string(id), salt, verifier, version)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Account, error) {
	var id string
	a := &models.Account{}
	err := row.Scan(&id, &a.Email, &a.UserName, &a.PasswordSalt, &a.PasswordHash,
		&a.PinSalt, &a.PinVerifier, &a.PinVersion, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	a.ID = models.AccountID(id)
	return a, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
