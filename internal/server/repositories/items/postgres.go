package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"github.com/dmitrijs2005/pinvault/internal/dbx"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
)

const selectColumns = `SELECT id, owner_id, project_id, filename, file_type, kind, size,
			storage_key, nonce, key_version, created_at, updated_at
		FROM items`

// PostgresRepository implements Repository over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (*models.Item, error) {
	var id, owner string
	var project sql.NullString
	var fileType, kind string
	item := &models.Item{}
	if err := row.Scan(&id, &owner, &project, &item.Filename, &fileType, &kind, &item.Size,
		&item.StorageKey, &item.Nonce, &item.KeyVersion, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	item.ID = models.ItemID(id)
	item.OwnerID = models.AccountID(owner)
	item.FileType = models.FileType(fileType)
	item.Kind = models.ItemKind(kind)
	if project.Valid {
		pid := models.ProjectID(project.String)
		item.ProjectID = &pid
	}
	return item, nil
}

func nullProject(p *models.ProjectID) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*p), Valid: true}
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	query := `
		INSERT INTO items (id, owner_id, project_id, filename, file_type, kind, size, storage_key, nonce, key_version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		string(item.ID), string(item.OwnerID), nullProject(item.ProjectID), item.Filename,
		string(item.FileType), string(item.Kind), item.Size, item.StorageKey, item.Nonce, item.KeyVersion,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) Get(ctx context.Context, owner models.AccountID, id models.ItemID) (*models.Item, error) {
	query := selectColumns + `
		WHERE id = $1 AND owner_id = $2
	`
	return r.getOne(ctx, query, owner, id)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, owner models.AccountID, id models.ItemID) (*models.Item, error) {
	query := selectColumns + `
		WHERE id = $1 AND owner_id = $2
		FOR UPDATE
	`
	return r.getOne(ctx, query, owner, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, owner models.AccountID, id models.ItemID) (*models.Item, error) {
	item, err := scanItem(r.db.QueryRowContext(ctx, query, string(id), string(owner)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, owner models.AccountID) ([]*models.Item, error) {
	query := selectColumns + `
		WHERE owner_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, string(owner))
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	var result []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) UpdatePayload(ctx context.Context, item *models.Item) (*models.Item, error) {
	query := `
		UPDATE items SET
			project_id = $3, filename = $4, file_type = $5, size = $6,
			storage_key = $7, nonce = $8, key_version = $9, updated_at = now()
		WHERE id = $1 AND owner_id = $2
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		string(item.ID), string(item.OwnerID), nullProject(item.ProjectID), item.Filename,
		string(item.FileType), item.Size, item.StorageKey, item.Nonce, item.KeyVersion,
	).Scan(&item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) UpdateProject(ctx context.Context, owner models.AccountID, id models.ItemID, project *models.ProjectID) (time.Time, error) {
	query := `
		UPDATE items SET project_id = $3, updated_at = now()
		WHERE id = $1 AND owner_id = $2
		RETURNING updated_at
	`
	var updated time.Time
	err := r.db.QueryRowContext(ctx, query, string(id), string(owner), nullProject(project)).Scan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, common.ErrorNotFound
		}
		return time.Time{}, fmt.Errorf("db error: %w", err)
	}
	return updated, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, owner models.AccountID, id models.ItemID) error {
	query := `
		DELETE FROM items
		WHERE id = $1 AND owner_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, string(id), string(owner))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) ClearProject(ctx context.Context, owner models.AccountID, project models.ProjectID) (int64, error) {
	query := `
		UPDATE items SET project_id = NULL, updated_at = now()
		WHERE owner_id = $1 AND project_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, string(owner), string(project))
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
