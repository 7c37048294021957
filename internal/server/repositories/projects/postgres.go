package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"github.com/dmitrijs2005/pinvault/internal/dbx"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	query := `
		INSERT INTO projects (owner_id, name, description, color)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	var id string
	err := r.db.QueryRowContext(ctx, query, string(p.OwnerID), p.Name, p.Description, p.Color).
		Scan(&id, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	p.ID = models.ProjectID(id)
	return p, nil
}

func (r *PostgresRepository) Get(ctx context.Context, owner models.AccountID, id models.ProjectID) (*models.Project, error) {
	query := `
		SELECT id, owner_id, name, description, color, created_at, updated_at
		FROM projects
		WHERE id = $1 AND owner_id = $2
	`
	var pid, oid string
	p := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, string(id), string(owner)).
		Scan(&pid, &oid, &p.Name, &p.Description, &p.Color, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	p.ID, p.OwnerID = models.ProjectID(pid), models.AccountID(oid)
	return p, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, owner models.AccountID) ([]*models.ProjectWithStats, error) {
	query := `
		SELECT p.id, p.name, p.description, p.color, p.created_at, p.updated_at, COUNT(i.id)
		FROM projects p
		LEFT JOIN items i ON i.project_id = p.id
		WHERE p.owner_id = $1
		GROUP BY p.id
		ORDER BY p.name, p.id
	`
	rows, err := r.db.QueryContext(ctx, query, string(owner))
	if err != nil {
		return nil, fmt.Errorf("failed to select projects: %w", err)
	}
	defer rows.Close()

	var result []*models.ProjectWithStats
	for rows.Next() {
		var id string
		p := &models.ProjectWithStats{}
		if err := rows.Scan(&id, &p.Name, &p.Description, &p.Color, &p.CreatedAt, &p.UpdatedAt, &p.ItemCount); err != nil {
			return nil, err
		}
		p.ID, p.OwnerID = models.ProjectID(id), owner
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Project) (*models.Project, error) {
	query := `
		UPDATE projects SET name = $3, description = $4, color = $5, updated_at = now()
		WHERE id = $1 AND owner_id = $2
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, string(p.ID), string(p.OwnerID), p.Name, p.Description, p.Color).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, owner models.AccountID, id models.ProjectID) error {
	query := `
		DELETE FROM projects
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
