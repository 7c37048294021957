// Package projects persists per-account projects.
package projects

import (
	"context"

	"github.com/dmitrijs2005/pinvault/internal/server/models"
)

// Repository stores projects. Every lookup is scoped by owner; a project of
// another account is reported as common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	Get(ctx context.Context, owner models.AccountID, id models.ProjectID) (*models.Project, error)

	// ListByOwner returns all projects of owner with their item counts,
	// ordered by name.
	ListByOwner(ctx context.Context, owner models.AccountID) ([]*models.ProjectWithStats, error)

	// Update writes name, description and color and refreshes updated_at.
	Update(ctx context.Context, project *models.Project) (*models.Project, error)
	Delete(ctx context.Context, owner models.AccountID, id models.ProjectID) error
}
