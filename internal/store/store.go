// Package store owns the in-memory link record list and activity log. The
// blob store is a passive mirror: every mutation writes the full collections
// through, and a failed write is logged while the in-memory state stays
// authoritative for the session.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"linkforge/internal/blob"
	"linkforge/internal/entities"
	"linkforge/internal/shortcode"

	"go.uber.org/zap"
)

// ErrCodeConflict is returned by AddLink when the record's short code or
// custom alias is already claimed by an existing record.
var ErrCodeConflict = errors.New("short code already in use")

// Blob store keys
const (
	keyURLs       = "urls"
	keyActivities = "activities"
	keyDarkMode   = "dark_mode"
)

// Only the most recent activities are persisted; the in-memory log is
// uncapped.
const activityPersistLimit = 100

// Store holds link records and activity entries, most recent first.
type Store struct {
	blob   blob.Store
	logger *zap.Logger

	mu         sync.RWMutex
	records    []*entities.LinkRecord
	activities []*entities.ActivityEntry
	darkMode   bool
}

// New creates a store and loads both collections and the display preference
// from the blob store. Missing or malformed blobs yield empty collections.
func New(b blob.Store, logger *zap.Logger) *Store {
	s := &Store{blob: b, logger: logger}
	s.load()
	return s
}

func (s *Store) load() {
	ctx := context.Background()

	if raw, err := s.blob.Get(ctx, keyURLs); err == nil {
		if err := json.Unmarshal([]byte(raw), &s.records); err != nil {
			s.logger.Warn("discarding malformed url blob", zap.Error(err))
			s.records = nil
		}
	} else if !errors.Is(err, blob.ErrNotFound) {
		s.logger.Warn("failed to load urls", zap.Error(err))
	}

	if raw, err := s.blob.Get(ctx, keyActivities); err == nil {
		if err := json.Unmarshal([]byte(raw), &s.activities); err != nil {
			s.logger.Warn("discarding malformed activity blob", zap.Error(err))
			s.activities = nil
		}
	} else if !errors.Is(err, blob.ErrNotFound) {
		s.logger.Warn("failed to load activities", zap.Error(err))
	}

	if raw, err := s.blob.Get(ctx, keyDarkMode); err == nil {
		s.darkMode = raw == "true"
	}

	s.logger.Info("store loaded",
		zap.Int("urls", len(s.records)),
		zap.Int("activities", len(s.activities)),
	)
}

// Links returns a snapshot of all link records, most recent first. The
// records are detached copies; mutations after the call are not visible
// through them and writing to them does not touch store state.
func (s *Store) Links() []*entities.LinkRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entities.LinkRecord, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

// Activities returns a snapshot of the in-memory activity log, most recent
// first. Entries are immutable after construction, so sharing the pointers
// is safe.
func (s *Store) Activities() []*entities.ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entities.ActivityEntry, len(s.activities))
	copy(out, s.activities)
	return out
}

// FindByID returns a detached copy of the record with the given ID, or nil.
func (s *Store) FindByID(id string) *entities.LinkRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r := s.findByID(id); r != nil {
		return r.Clone()
	}
	return nil
}

func (s *Store) findByID(id string) *entities.LinkRecord {
	for _, r := range s.records {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// FindByCode returns a detached copy of the record whose short code or custom
// alias equals code, or nil. Matching is exact and case-sensitive.
func (s *Store) FindByCode(code string) *entities.LinkRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ShortCode == code || (r.CustomAlias != "" && r.CustomAlias == code) {
			return r.Clone()
		}
	}
	return nil
}

// AddLink prepends a new record and writes the collection through. The
// availability check and the append happen under one write lock, so
// concurrent callers cannot both claim the same code; the loser gets
// ErrCodeConflict and no record is created for it. The store keeps its own
// copy of the record.
func (s *Store) AddLink(record *entities.LinkRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !shortcode.IsAvailable(record.ShortCode, s.records) {
		return ErrCodeConflict
	}
	s.records = append([]*entities.LinkRecord{record.Clone()}, s.records...)
	s.persistLinks()
	return nil
}

// DeleteLink removes the record with the given ID. It reports whether a
// record was removed.
func (s *Store) DeleteLink(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.persistLinks()
			return true
		}
	}
	return false
}

// IncrementClick bumps the click counter for the record with the given ID
// and returns a detached copy of the updated record.
func (s *Store) IncrementClick(id string) (*entities.LinkRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.findByID(id)
	if r == nil {
		return nil, false
	}
	r.ClickCount++
	s.persistLinks()
	return r.Clone(), true
}

// IncrementScan bumps the QR scan counter for the record with the given ID
// and returns a detached copy of the updated record.
func (s *Store) IncrementScan(id string) (*entities.LinkRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.findByID(id)
	if r == nil {
		return nil, false
	}
	r.QRCodeScans++
	s.persistLinks()
	return r.Clone(), true
}

// LogActivity prepends an activity entry and persists the capped snapshot.
func (s *Store) LogActivity(entry *entities.ActivityEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append([]*entities.ActivityEntry{entry}, s.activities...)
	s.persistActivities()
}

// DarkMode returns the persisted display preference.
func (s *Store) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// SetDarkMode stores the display preference.
func (s *Store) SetDarkMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = enabled
	value := "false"
	if enabled {
		value = "true"
	}
	if err := s.blob.Set(context.Background(), keyDarkMode, value); err != nil {
		s.logger.Error("failed to persist dark mode preference", zap.Error(err))
	}
}

// persistLinks writes the whole record list through. Callers must hold the
// write lock.
func (s *Store) persistLinks() {
	data, err := json.Marshal(s.records)
	if err != nil {
		s.logger.Error("failed to serialize urls", zap.Error(err))
		return
	}
	if err := s.blob.Set(context.Background(), keyURLs, string(data)); err != nil {
		s.logger.Error("failed to persist urls", zap.Error(err))
	}
}

// persistActivities writes the most recent activities through, capped to
// activityPersistLimit. Callers must hold the write lock.
func (s *Store) persistActivities() {
	snapshot := s.activities
	if len(snapshot) > activityPersistLimit {
		snapshot = snapshot[:activityPersistLimit]
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Error("failed to serialize activities", zap.Error(err))
		return
	}
	if err := s.blob.Set(context.Background(), keyActivities, string(data)); err != nil {
		s.logger.Error("failed to persist activities", zap.Error(err))
	}
}
