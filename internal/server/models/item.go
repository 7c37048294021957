package models

import (
	"path/filepath"
	"strings"
	"time"
)

// ItemID identifies an Item.
type ItemID string

// FileType is the closed set of content types an item can declare.
type FileType string

const (
	FileTypeEnv   FileType = "env"
	FileTypeTxt   FileType = "txt"
	FileTypeJSON  FileType = "json"
	FileTypeOther FileType = "other"
)

// Valid reports whether t is one of the known file types.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeEnv, FileTypeTxt, FileTypeJSON, FileTypeOther:
		return true
	}
	return false
}

// FileTypeFromName infers the type of an uploaded file from its extension.
func FileTypeFromName(name string) FileType {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if name == ".env" || strings.HasPrefix(strings.ToLower(filepath.Base(name)), ".env") {
		return FileTypeEnv
	}
	switch FileType(ext) {
	case FileTypeEnv, FileTypeTxt, FileTypeJSON:
		return FileType(ext)
	}
	return FileTypeOther
}

// ItemKind tells uploaded files and typed-in notes apart. Both are stored
// and protected identically.
type ItemKind string

const (
	ItemKindFile ItemKind = "file"
	ItemKindNote ItemKind = "note"
)

// Item is the metadata of a stored file or note plus the location of its
// sealed payload. It never carries plaintext.
type Item struct {
	ID        ItemID
	OwnerID   AccountID
	ProjectID *ProjectID
	Filename  string
	FileType  FileType
	Kind      ItemKind
	Size      int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// StorageKey locates the ciphertext in the blob store.
	StorageKey string
	// Nonce is the AES-GCM nonce the payload was sealed with.
	Nonce []byte
	// KeyVersion is the account PinVersion the payload was sealed under.
	KeyVersion int64
}

// InProject reports whether the item belongs to project id.
func (i *Item) InProject(id ProjectID) bool {
	return i.ProjectID != nil && *i.ProjectID == id
}

// DecryptedItem is an Item together with its plaintext. Values of this type
// only exist inside a single request and are wiped afterwards.
type DecryptedItem struct {
	Item
	Content []byte
}
