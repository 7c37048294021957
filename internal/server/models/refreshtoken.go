package models

import "time"

type RefreshToken struct {
	UserID    AccountID
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
