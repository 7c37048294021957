// Package models defines the vault's server-side entities and the typed
// identifiers that refer to them.
package models

import "time"

// AccountID identifies an Account.
type AccountID string

// Account holds identity plus the credential material needed to check a
// password or a PIN. Raw secrets are never stored.
type Account struct {
	ID           AccountID
	Email        string
	UserName     string
	PasswordSalt []byte
	PasswordHash []byte
	PinSalt      []byte
	PinVerifier  []byte
	// PinVersion is bumped on every PIN change. Item payloads record the
	// version they were sealed under.
	PinVersion int64
	CreatedAt  time.Time
}

// Profile is the non-secret view of an Account returned to clients.
type Profile struct {
	ID        AccountID
	Email     string
	UserName  string
	CreatedAt time.Time
}

// Profile strips credential material.
func (a *Account) Profile() Profile {
	return Profile{ID: a.ID, Email: a.Email, UserName: a.UserName, CreatedAt: a.CreatedAt}
}
