package models

import (
	"time"

	"gorm.io/gorm"
)

// SessionEntry is one key of a browser session (token, user) kept server side.
type SessionEntry struct {
	ID        uint      `gorm:"primaryKey"`
	SessionID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_session_key,priority:1"`
	Key       string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_session_key,priority:2"`
	Value     string    `gorm:"type:text;not null"`
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *SessionEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ExpiresAt.IsZero() {
		e.ExpiresAt = time.Now().Add(24 * time.Hour)
	}
	return nil
}

// AuthContext is the resolved identity of a request: the session it belongs
// to, the backend bearer token and the signed-in user's profile.
type AuthContext struct {
	SessionID string
	Token     string
	User      User
}

func (a *AuthContext) Role() string {
	if a == nil {
		return ""
	}
	return a.User.Role
}
