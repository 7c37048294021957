// Package accounts declares and implements persistence for vault accounts
// and their password and PIN credential material.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/pinvault/internal/server/models"
)

// Repository stores accounts. Lookups that find nothing return
// common.ErrorNotFound.
type Repository interface {
	// Create inserts a new account and fills in its generated ID, PinVersion
	// and CreatedAt. A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id models.AccountID) (*models.Account, error)

	// GetByIDForUpdate is GetByID with a row lock held until the
	// surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id models.AccountID) (*models.Account, error)

	UpdatePassword(ctx context.Context, id models.AccountID, salt, hash []byte) error

	// UpdatePin replaces the PIN salt and verifier and sets the new PIN version.
	UpdatePin(ctx context.Context, id models.AccountID, salt, verifier []byte, version int64) error
}
