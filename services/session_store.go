package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hairlab-backoffice/models"
)

// Session entry keys.
const (
	SessionKeyToken = "token"
	SessionKeyUser  = "user"
)

var ErrSessionEntryNotFound = errors.New("session entry not found")

// SessionStore is a durable key-value store scoped by session id.
type SessionStore interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Put(ctx context.Context, sessionID, key, value string, expiresAt time.Time) error
	Delete(ctx context.Context, sessionID, key string) error
	// PurgeExpired drops expired entries and returns the ids of the sessions they belonged to.
	PurgeExpired(ctx context.Context) ([]string, error)
}

func distinctSessions(entries []models.SessionEntry) []string {
	seen := make(map[string]bool, len(entries))
	var ids []string
	for _, e := range entries {
		if !seen[e.SessionID] {
			seen[e.SessionID] = true
			ids = append(ids, e.SessionID)
		}
	}
	sort.Strings(ids)
	return ids
}

type GormSessionStore struct {
	db *gorm.DB
}

func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{db: db}
}

func (s *GormSessionStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	var entry models.SessionEntry
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND key = ? AND expires_at > ?", sessionID, key, time.Now()).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrSessionEntryNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

func (s *GormSessionStore) Put(ctx context.Context, sessionID, key, value string, expiresAt time.Time) error {
	entry := models.SessionEntry{
		SessionID: sessionID,
		Key:       key,
		Value:     value,
		ExpiresAt: expiresAt,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
	}).Create(&entry).Error
}

func (s *GormSessionStore) Delete(ctx context.Context, sessionID, key string) error {
	return s.db.WithContext(ctx).
		Where("session_id = ? AND key = ?", sessionID, key).
		Delete(&models.SessionEntry{}).Error
}

func (s *GormSessionStore) PurgeExpired(ctx context.Context) ([]string, error) {
	var purged []models.SessionEntry
	err := s.db.WithContext(ctx).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "session_id"}}}).
		Where("expires_at <= ?", time.Now()).
		Delete(&purged).Error
	if err != nil {
		return nil, err
	}
	return distinctSessions(purged), nil
}

// MemorySessionStore keeps entries in process memory. Entries do not survive a restart.
type MemorySessionStore struct {
	mu      sync.Mutex
	entries map[string]models.SessionEntry
	now     func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		entries: make(map[string]models.SessionEntry),
		now:     time.Now,
	}
}

func memoryKey(sessionID, key string) string {
	return sessionID + "\x00" + key
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[memoryKey(sessionID, key)]
	if !ok || !entry.ExpiresAt.After(s.now()) {
		return "", ErrSessionEntryNotFound
	}
	return entry.Value, nil
}

func (s *MemorySessionStore) Put(_ context.Context, sessionID, key, value string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[memoryKey(sessionID, key)] = models.SessionEntry{
		SessionID: sessionID,
		Key:       key,
		Value:     value,
		ExpiresAt: expiresAt,
	}
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, memoryKey(sessionID, key))
	return nil
}

func (s *MemorySessionStore) PurgeExpired(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var purged []models.SessionEntry
	for k, e := range s.entries {
		if !e.ExpiresAt.After(s.now()) {
			delete(s.entries, k)
			purged = append(purged, e)
		}
	}
	return distinctSessions(purged), nil
}
