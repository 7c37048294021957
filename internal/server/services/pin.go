package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"github.com/dmitrijs2005/pinvault/internal/cryptox"
	"github.com/dmitrijs2005/pinvault/internal/dbx"
	"github.com/dmitrijs2005/pinvault/internal/server/blobs"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
)

// VerifyPin reports whether pin unlocks the account. A malformed PIN is a
// validation error rather than a false result.
func (s *ItemService) VerifyPin(ctx context.Context, owner models.AccountID, pin string) (bool, error) {
	if err := validatePin(pin); err != nil {
		return false, err
	}
	_, key, err := s.unlock(ctx, owner, pin)
	if err != nil {
		if errors.Is(err, common.ErrInvalidPin) {
			return false, nil
		}
		return false, err
	}
	common.WipeByteArray(key)
	return true, nil
}

type resealedItem struct {
	next       models.Item
	oldStorage string
}

// ChangePin re-encrypts every item of owner under a key derived from newPin
// and switches the account to the new PIN. Either every item and the
// account move to the new key in one transaction, or nothing changes and
// all items remain readable with oldPin.
func (s *ItemService) ChangePin(ctx context.Context, owner models.AccountID, oldPin, newPin string) error {
	if err := validatePin(oldPin); err != nil {
		return err
	}
	if err := validatePin(newPin); err != nil {
		return err
	}

	unlockAccount := s.locks.Lock(accountLockKey(owner))
	defer unlockAccount()

	account, oldKey, err := s.unlock(ctx, owner, oldPin)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldKey)

	var listed []*models.Item
	err = s.call(ctx, func(ctx context.Context) error {
		var err error
		listed, err = s.repomanager.Items(s.db).ListByOwner(ctx, owner)
		return err
	})
	if err != nil {
		return internalError(err)
	}

	lockKeys := make([]string, 0, len(listed))
	for _, item := range listed {
		lockKeys = append(lockKeys, itemLockKey(item.ID))
	}
	unlockItems := s.locks.LockAll(lockKeys)
	defer unlockItems()

	newSalt, newKey, newVerifier := pinMaterial(newPin)
	defer common.WipeByteArray(newKey)
	newVersion := account.PinVersion + 1

	var written []string
	discardWritten := func() {
		for _, key := range written {
			s.discardBlob(ctx, key)
		}
	}

	resealed := make([]resealedItem, 0, len(listed))
	for _, l := range listed {
		r, err := s.reseal(ctx, account, oldKey, newKey, newVersion, l.ID)
		if errors.Is(err, common.ErrorNotFound) {
			continue
		}
		if r != nil {
			written = append(written, r.next.StorageKey)
		}
		if err != nil {
			discardWritten()
			s.log.Warn(ctx, "pin change aborted", "account_id", owner, "item_id", l.ID, "error", err)
			return serviceError(err)
		}
		resealed = append(resealed, *r)
	}

	err = s.tx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		locked, err := s.repomanager.Accounts(tx).GetByIDForUpdate(ctx, owner)
		if err != nil {
			return err
		}
		if locked.PinVersion != account.PinVersion {
			return common.ErrInvalidPin
		}

		repo := s.repomanager.Items(tx)
		rows, err := repo.ListByOwner(ctx, owner)
		if err != nil {
			return err
		}
		if err := sameStorage(rows, resealed); err != nil {
			return err
		}

		for i := range resealed {
			if _, err := repo.UpdatePayload(ctx, &resealed[i].next); err != nil {
				return err
			}
		}
		return s.repomanager.Accounts(tx).UpdatePin(ctx, owner, newSalt, newVerifier, newVersion)
	})
	if err != nil {
		discardWritten()
		s.log.Warn(ctx, "pin change rolled back", "account_id", owner, "error", err)
		return serviceError(err)
	}

	for _, r := range resealed {
		s.discardBlob(ctx, r.oldStorage)
	}
	s.log.Info(ctx, "pin changed", "account_id", owner, "items", len(resealed), "pin_version", newVersion)
	return nil
}

// reseal decrypts one item under oldKey and writes its payload, sealed under
// newKey, to a fresh blob. The returned item is not persisted yet. A non-nil
// result is returned whenever a new blob was written, even on error.
func (s *ItemService) reseal(ctx context.Context, account *models.Account, oldKey, newKey []byte, newVersion int64, id models.ItemID) (*resealedItem, error) {
	var current *models.Item
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		current, err = s.repomanager.Items(s.db).Get(ctx, account.ID, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if current.KeyVersion != account.PinVersion {
		return nil, fmt.Errorf("%w: item %s is sealed under a stale key", common.ErrorInternal, id)
	}

	var ciphertext []byte
	err = s.call(ctx, func(ctx context.Context) error {
		var err error
		ciphertext, err = s.blobs.Get(ctx, current.StorageKey)
		return err
	})
	if err != nil {
		return nil, internalError(fmt.Errorf("load payload of %s: %w", id, err))
	}

	plaintext, err := cryptox.Decrypt(oldKey, ciphertext, current.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: item %s does not decrypt", common.ErrorInternal, id)
	}
	sealed, nonce, err := cryptox.Encrypt(newKey, plaintext)
	common.WipeByteArray(plaintext)
	if err != nil {
		return nil, internalError(err)
	}

	r := &resealedItem{next: *current, oldStorage: current.StorageKey}
	r.next.StorageKey = blobs.NewKey(account.ID)
	r.next.Nonce = nonce
	r.next.KeyVersion = newVersion

	if err := s.putBlob(ctx, r.next.StorageKey, sealed); err != nil {
		// Put may have partially succeeded; let the caller remove the key.
		return r, err
	}
	return r, nil
}

// sameStorage checks that the locked rows are exactly the items that were
// re-sealed, still pointing at the payloads that were read.
func sameStorage(rows []*models.Item, resealed []resealedItem) error {
	if len(rows) != len(resealed) {
		return errConcurrentChange
	}
	expected := make(map[models.ItemID]string, len(resealed))
	for _, r := range resealed {
		expected[r.next.ID] = r.oldStorage
	}
	for _, row := range rows {
		if old, ok := expected[row.ID]; !ok || old != row.StorageKey {
			return errConcurrentChange
		}
	}
	return nil
}
