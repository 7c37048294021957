package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"github.com/dmitrijs2005/pinvault/internal/cryptox"
	"github.com/dmitrijs2005/pinvault/internal/dbx"
	"github.com/dmitrijs2005/pinvault/internal/logging"
	"github.com/dmitrijs2005/pinvault/internal/server/blobs"
	"github.com/dmitrijs2005/pinvault/internal/server/config"
	"github.com/dmitrijs2005/pinvault/internal/server/lockx"
	"github.com/dmitrijs2005/pinvault/internal/server/models"
	"github.com/dmitrijs2005/pinvault/internal/server/query"
	"github.com/dmitrijs2005/pinvault/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// errConcurrentChange means the row moved on between reading it and
// locking it, e.g. another server instance rewrote the payload.
var errConcurrentChange = errors.New("item changed concurrently")

// CreateItemInput describes a new file or note. An empty FileType is
// inferred from the filename.
type CreateItemInput struct {
	Owner     models.AccountID
	Filename  string
	FileType  models.FileType
	Kind      models.ItemKind
	Content   []byte
	Pin       string
	ProjectID *models.ProjectID
}

// ProjectChange moves an item. A nil ProjectID unassigns it.
type ProjectChange struct {
	ProjectID *models.ProjectID
}

// UpdateItemInput lists the changes to an item. Nil pointers and a false
// ReplaceContent leave the corresponding part untouched.
type UpdateItemInput struct {
	Owner          models.AccountID
	ID             models.ItemID
	Pin            string
	Filename       *string
	FileType       *models.FileType
	ReplaceContent bool
	Content        []byte
	Project        *ProjectChange
}

// ItemService is the access controller for vault items. Reading, creating
// and updating content requires the account PIN on every call; deleting,
// moving and listing require identity only. Derived keys and plaintext
// never outlive the call that produced them.
type ItemService struct {
	storage
	blobs       blobs.Store
	locks       *lockx.KeyedMutex
	maxItemSize int64
	log         logging.Logger
}

func NewItemService(db *sql.DB, m repomanager.RepositoryManager, store blobs.Store, cfg *config.Config, log logging.Logger) *ItemService {
	return &ItemService{
		storage:     storage{db: db, repomanager: m, timeout: cfg.StorageTimeout},
		blobs:       store,
		locks:       &lockx.KeyedMutex{},
		maxItemSize: cfg.MaxItemSize,
		log:         log.With("module", "items"),
	}
}

func accountLockKey(id models.AccountID) string { return "account:" + string(id) }
func itemLockKey(id models.ItemID) string       { return "item:" + string(id) }

// CreateItem seals the content under the PIN-derived key and stores it.
func (s *ItemService) CreateItem(ctx context.Context, in CreateItemInput) (*models.Item, error) {
	filename := strings.TrimSpace(in.Filename)
	if filename == "" {
		return nil, validationError("filename is empty")
	}
	fileType := in.FileType
	if fileType == "" {
		fileType = models.FileTypeFromName(filename)
	} else if !fileType.Valid() {
		return nil, validationError("unknown file type %q", fileType)
	}
	kind := in.Kind
	if kind == "" {
		kind = models.ItemKindFile
	} else if kind != models.ItemKindFile && kind != models.ItemKindNote {
		return nil, validationError("unknown item kind %q", kind)
	}
	if err := s.checkSize(in.Content); err != nil {
		return nil, err
	}
	if err := validatePin(in.Pin); err != nil {
		return nil, err
	}

	unlockAccount := s.locks.Lock(accountLockKey(in.Owner))
	defer unlockAccount()

	account, key, err := s.unlock(ctx, in.Owner, in.Pin)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	if in.ProjectID != nil {
		if err := s.checkProject(ctx, in.Owner, *in.ProjectID); err != nil {
			return nil, err
		}
	}

	ciphertext, nonce, err := cryptox.Encrypt(key, in.Content)
	if err != nil {
		return nil, internalError(err)
	}

	item := &models.Item{
		ID:         models.ItemID(uuid.NewString()),
		OwnerID:    in.Owner,
		ProjectID:  in.ProjectID,
		Filename:   filename,
		FileType:   fileType,
		Kind:       kind,
		Size:       int64(len(in.Content)),
		StorageKey: blobs.NewKey(in.Owner),
		Nonce:      nonce,
		KeyVersion: account.PinVersion,
	}

	storageKey := item.StorageKey
	if err := s.putBlob(ctx, storageKey, ciphertext); err != nil {
		return nil, err
	}

	err = s.tx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkPinVersion(ctx, tx, in.Owner, account.PinVersion); err != nil {
			return err
		}
		created, err := s.repomanager.Items(tx).Create(ctx, item)
		if err != nil {
			return err
		}
		item = created
		return nil
	})
	if err != nil {
		s.discardBlob(ctx, storageKey)
		return nil, serviceError(err)
	}

	s.log.Info(ctx, "item created", "item_id", item.ID, "kind", item.Kind, "size", item.Size)
	return item, nil
}

// ReadItem verifies the PIN, decrypts the item and hands it to fn. The
// plaintext is wiped as soon as fn returns, so fn must not retain it. The
// item lock is held throughout so a concurrent update cannot remove the
// payload between the row load and the blob read.
//
// The PIN is checked before the item is looked up, so a wrong PIN yields
// common.ErrInvalidPin whether or not the item exists.
func (s *ItemService) ReadItem(ctx context.Context, owner models.AccountID, id models.ItemID, pin string, fn func(*models.DecryptedItem) error) error {
	if err := validatePin(pin); err != nil {
		return err
	}

	account, key, err := s.unlock(ctx, owner, pin)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(key)

	unlockItem := s.locks.Lock(itemLockKey(id))
	defer unlockItem()

	item, err := s.getItem(ctx, owner, id)
	if err != nil {
		return err
	}

	plaintext, err := s.open(ctx, account, key, item)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(plaintext)

	return fn(&models.DecryptedItem{Item: *item, Content: plaintext})
}

// UpdateItem re-seals the item under the key derived from pin with a fresh
// nonce and swaps the payload atomically. On any failure the previous row
// and payload stay exactly as they were.
func (s *ItemService) UpdateItem(ctx context.Context, in UpdateItemInput) (*models.Item, error) {
	var filename string
	if in.Filename != nil {
		filename = strings.TrimSpace(*in.Filename)
		if filename == "" {
			return nil, validationError("filename is empty")
		}
	}
	if in.FileType != nil && !in.FileType.Valid() {
		return nil, validationError("unknown file type %q", *in.FileType)
	}
	if in.ReplaceContent {
		if err := s.checkSize(in.Content); err != nil {
			return nil, err
		}
	}
	if err := validatePin(in.Pin); err != nil {
		return nil, err
	}

	account, key, err := s.unlock(ctx, in.Owner, in.Pin)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(key)

	if !validID(in.ID) {
		return nil, common.ErrorNotFound
	}
	unlockItem := s.locks.Lock(itemLockKey(in.ID))
	defer unlockItem()

	current, err := s.getItem(ctx, in.Owner, in.ID)
	if err != nil {
		return nil, err
	}
	if in.Project != nil && in.Project.ProjectID != nil {
		if err := s.checkProject(ctx, in.Owner, *in.Project.ProjectID); err != nil {
			return nil, err
		}
	}

	plaintext := in.Content
	if !in.ReplaceContent {
		plaintext, err = s.open(ctx, account, key, current)
		if err != nil {
			return nil, err
		}
		defer common.WipeByteArray(plaintext)
	}

	ciphertext, nonce, err := cryptox.Encrypt(key, plaintext)
	if err != nil {
		return nil, internalError(err)
	}

	next := *current
	if in.Filename != nil {
		next.Filename = filename
	}
	if in.FileType != nil {
		next.FileType = *in.FileType
	}
	if in.Project != nil {
		next.ProjectID = in.Project.ProjectID
	}
	next.Size = int64(len(plaintext))
	next.StorageKey = blobs.NewKey(in.Owner)
	next.Nonce = nonce
	next.KeyVersion = account.PinVersion

	if err := s.putBlob(ctx, next.StorageKey, ciphertext); err != nil {
		return nil, err
	}

	var updated *models.Item
	err = s.tx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkPinVersion(ctx, tx, in.Owner, account.PinVersion); err != nil {
			return err
		}
		repo := s.repomanager.Items(tx)
		row, err := repo.GetForUpdate(ctx, in.Owner, in.ID)
		if err != nil {
			return err
		}
		if row.StorageKey != current.StorageKey {
			return errConcurrentChange
		}
		updated, err = repo.UpdatePayload(ctx, &next)
		return err
	})
	if err != nil {
		s.discardBlob(ctx, next.StorageKey)
		return nil, serviceError(err)
	}

	s.discardBlob(ctx, current.StorageKey)
	s.log.Info(ctx, "item updated", "item_id", updated.ID, "size", updated.Size)
	return updated, nil
}

// DeleteItem removes the item and its payload. It needs identity only: the
// ciphertext being destroyed reveals nothing. A second call reports
// common.ErrorNotFound.
func (s *ItemService) DeleteItem(ctx context.Context, owner models.AccountID, id models.ItemID) error {
	if !validID(id) {
		return common.ErrorNotFound
	}
	unlockItem := s.locks.Lock(itemLockKey(id))
	defer unlockItem()

	var item *models.Item
	err := s.tx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Items(tx)
		var err error
		item, err = repo.GetForUpdate(ctx, owner, id)
		if err != nil {
			return err
		}
		return repo.Delete(ctx, owner, id)
	})
	if err != nil {
		return serviceError(err)
	}

	s.discardBlob(ctx, item.StorageKey)
	s.log.Info(ctx, "item deleted", "item_id", id)
	return nil
}

// MoveItem changes only the project association of an item. A nil project
// unassigns it.
func (s *ItemService) MoveItem(ctx context.Context, owner models.AccountID, id models.ItemID, project *models.ProjectID) (*models.Item, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}
	if project != nil {
		if err := s.checkProject(ctx, owner, *project); err != nil {
			return nil, err
		}
	}

	unlockItem := s.locks.Lock(itemLockKey(id))
	defer unlockItem()

	var item *models.Item
	err := s.tx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Items(tx)
		var err error
		item, err = repo.GetForUpdate(ctx, owner, id)
		if err != nil {
			return err
		}
		updatedAt, err := repo.UpdateProject(ctx, owner, id, project)
		if err != nil {
			return err
		}
		item.ProjectID = project
		item.UpdatedAt = updatedAt
		return nil
	})
	if err != nil {
		return nil, serviceError(err)
	}
	return item, nil
}

// ListItems returns item metadata narrowed and ordered by filter.
func (s *ItemService) ListItems(ctx context.Context, owner models.AccountID, filter query.Filter) ([]*models.Item, error) {
	var items []*models.Item
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		items, err = s.repomanager.Items(s.db).ListByOwner(ctx, owner)
		return err
	})
	if err != nil {
		return nil, internalError(err)
	}
	return query.Apply(items, filter), nil
}

// --- helpers below ---

func (s *ItemService) checkSize(content []byte) error {
	if int64(len(content)) > s.maxItemSize {
		return validationError("content exceeds %d bytes", s.maxItemSize)
	}
	return nil
}

// unlock loads the account and derives its content key from pin. An
// unknown account is reported exactly like a wrong PIN.
func (s *ItemService) unlock(ctx context.Context, owner models.AccountID, pin string) (*models.Account, []byte, error) {
	if !validID(owner) {
		return nil, nil, common.ErrInvalidPin
	}
	var account *models.Account
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		account, err = s.repomanager.Accounts(s.db).GetByID(ctx, owner)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrInvalidPin
		}
		return nil, nil, internalError(err)
	}

	key, err := unlockPin(account, pin)
	if err != nil {
		s.log.Debug(ctx, "pin rejected", "account_id", owner)
		return nil, nil, err
	}
	return account, key, nil
}

func (s *ItemService) getItem(ctx context.Context, owner models.AccountID, id models.ItemID) (*models.Item, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}
	var item *models.Item
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		item, err = s.repomanager.Items(s.db).Get(ctx, owner, id)
		return err
	})
	if err != nil {
		return nil, serviceError(err)
	}
	return item, nil
}

// open fetches and decrypts the payload of item with key. Every failure to
// authenticate, including a payload sealed under an older PIN, is reported
// as common.ErrInvalidPin.
func (s *ItemService) open(ctx context.Context, account *models.Account, key []byte, item *models.Item) ([]byte, error) {
	if item.KeyVersion != account.PinVersion {
		s.log.Warn(ctx, "item sealed under a stale key, re-encryption required",
			"item_id", item.ID, "key_version", item.KeyVersion, "pin_version", account.PinVersion)
		return nil, common.ErrInvalidPin
	}

	var ciphertext []byte
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		ciphertext, err = s.blobs.Get(ctx, item.StorageKey)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Error(ctx, "item payload missing", "item_id", item.ID)
		}
		return nil, internalError(err)
	}

	plaintext, err := cryptox.Decrypt(key, ciphertext, item.Nonce)
	if err != nil {
		return nil, common.ErrInvalidPin
	}
	return plaintext, nil
}

func (s *ItemService) checkProject(ctx context.Context, owner models.AccountID, id models.ProjectID) error {
	if !validID(id) {
		return validationError("unknown project")
	}
	err := s.call(ctx, func(ctx context.Context) error {
		_, err := s.repomanager.Projects(s.db).Get(ctx, owner, id)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return validationError("unknown project")
		}
		return internalError(err)
	}
	return nil
}

// checkPinVersion locks the account row and fails with common.ErrInvalidPin
// if the PIN changed after the caller derived its key.
func (s *ItemService) checkPinVersion(ctx context.Context, tx dbx.DBTX, owner models.AccountID, version int64) error {
	account, err := s.repomanager.Accounts(tx).GetByIDForUpdate(ctx, owner)
	if err != nil {
		return err
	}
	if account.PinVersion != version {
		return common.ErrInvalidPin
	}
	return nil
}

func (s *ItemService) putBlob(ctx context.Context, key string, data []byte) error {
	err := s.call(ctx, func(ctx context.Context) error {
		return s.blobs.Put(ctx, key, data)
	})
	if err != nil {
		return internalError(fmt.Errorf("store payload: %w", err))
	}
	return nil
}

// discardBlob removes a payload nothing points at any more. It runs even
// if the request context is already done; failures only leak storage.
func (s *ItemService) discardBlob(ctx context.Context, key string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cleanupTimeout())
	defer cancel()
	if err := s.blobs.Delete(ctx, key); err != nil {
		s.log.Warn(ctx, "failed to delete payload", "storage_key", key, "error", err)
	}
}

func (s *ItemService) cleanupTimeout() time.Duration {
	if s.timeout > 0 {
		return s.timeout
	}
	return 5 * time.Second
}
