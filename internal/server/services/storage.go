package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"github.com/dmitrijs2005/pinvault/internal/dbx"
	"github.com/dmitrijs2005/pinvault/internal/server/repositories/repomanager"
)

// storage bundles the database handle, the repository factory and the
// per-call deadline every service applies to persistence.
type storage struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	timeout     time.Duration
}

// call runs a single storage operation under the storage deadline.
func (s storage) call(ctx context.Context, fn func(ctx context.Context) error) error {
	return dbx.WithTimeout(ctx, s.timeout, fn)
}

// tx runs fn in one transaction bounded by the storage deadline.
func (s storage) tx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return dbx.WithTimeout(ctx, s.timeout, func(ctx context.Context) error {
		return dbx.WithTx(ctx, s.db, nil, fn)
	})
}

// internalError hides storage details behind common.ErrorInternal but keeps
// timeouts visible so callers know they may retry.
func internalError(err error) error {
	if errors.Is(err, common.ErrStorageTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrorInternal, err)
}

// serviceError passes through the sentinels callers are meant to see and
// folds everything else into internalError.
func serviceError(err error) error {
	for _, known := range []error{
		common.ErrorValidation,
		common.ErrorNotFound,
		common.ErrorAlreadyExists,
		common.ErrInvalidPin,
		common.ErrInvalidSession,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return internalError(err)
}
