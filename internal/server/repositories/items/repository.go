// Package items persists vault item metadata and the location of each
// item's sealed payload. Ciphertext itself lives in the blob store.
package items

import (
	"context"
	"time"

	"github.com/dmitrijs2005/pinvault/internal/server/models"
)

// Repository stores items. Every lookup is scoped by owner; an item of
// another account is reported as common.ErrorNotFound.
type Repository interface {
	// Create inserts item with its preassigned ID and fills in the timestamps.
	Create(ctx context.Context, item *models.Item) (*models.Item, error)

	Get(ctx context.Context, owner models.AccountID, id models.ItemID) (*models.Item, error)

	// GetForUpdate is Get with a row lock held until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, owner models.AccountID, id models.ItemID) (*models.Item, error)

	ListByOwner(ctx context.Context, owner models.AccountID) ([]*models.Item, error)

	// UpdatePayload rewrites filename, type, size, project and payload
	// location of an existing item and refreshes updated_at.
	UpdatePayload(ctx context.Context, item *models.Item) (*models.Item, error)

	// UpdateProject changes only the project association.
	UpdateProject(ctx context.Context, owner models.AccountID, id models.ItemID, project *models.ProjectID) (time.Time, error)

	Delete(ctx context.Context, owner models.AccountID, id models.ItemID) error

	// ClearProject unassigns every item of owner that belongs to project and
	// returns how many were touched.
	ClearProject(ctx context.Context, owner models.AccountID, project models.ProjectID) (int64, error)
}
