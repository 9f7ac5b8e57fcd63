// Package store persists users, saved plans, progress snapshots and
// required-service overrides in LevelDB.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/harukimoto/careplan/internal/types"
)

// LevelDB key scheme. "|" separates parts, so raw ids are sanitized.
//
//	u|<userId>             → User JSON
//	p|<planId>             → SavedPlan JSON       (primary record)
//	pu|<userId>|<planId>   → nil                  (user → plan index)
//	a|<userId>             → ProgressSnapshot JSON ("anonymous" for no user)
//	rs|<categoryKey>       → required-service text
const (
	prefixUser     = "u|"
	prefixPlan     = "p|"
	prefixPlanIdx  = "pu|"
	prefixProgress = "a|"
	prefixRequired = "rs|"
)

// AnonymousID keys the progress snapshot taken with no user selected.
const AnonymousID = "anonymous"

// backupVersion is the envelope format version written by Backup and
// accepted by Restore.
const backupVersion = "1.0"

// Store is the LevelDB-backed persistence layer. LevelDB is
// single-writer; one Store owns the database directory for the life of
// the process.
type Store struct {
	db *leveldb.DB
}

// Open opens (or creates) the database directory at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database. The Store must not be used afterwards.
func (s *Store) Close() error {
	return s.db.Close()
}

// safeKeyPart replaces "|" with "_" so keys parse unambiguously.
func safeKeyPart(s string) string {
	return strings.ReplaceAll(s, "|", "_")
}

func userKey(id string) string { return prefixUser + safeKeyPart(id) }
func planKey(id string) string { return prefixPlan + safeKeyPart(id) }
func planIdxKey(userID, planID string) string {
	return prefixPlanIdx + safeKeyPart(userID) + "|" + safeKeyPart(planID)
}
func progressKey(userID string) string { return prefixProgress + safeKeyPart(userID) }
func requiredKey(category string) string {
	return prefixRequired + safeKeyPart(category)
}

// PutUser inserts or overwrites a user record.
func (s *Store) PutUser(u types.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("store: marshal user %s: %w", u.ID, err)
	}
	if err := s.db.Put([]byte(userKey(u.ID)), data, nil); err != nil {
		return fmt.Errorf("store: put user %s: %w", u.ID, err)
	}
	return nil
}

// GetUser fetches one user. ok is false when the id is unknown.
func (s *Store) GetUser(id string) (types.User, bool, error) {
	data, err := s.db.Get([]byte(userKey(id)), nil)
	if err == leveldb.ErrNotFound {
		return types.User{}, false, nil
	}
	if err != nil {
		return types.User{}, false, fmt.Errorf("store: get user %s: %w", id, err)
	}
	var u types.User
	if err := json.Unmarshal(data, &u); err != nil {
		slog.Warn("[STORE] corrupt user record", "id", id, "error", err)
		return types.User{}, false, nil
	}
	return u, true, nil
}

// Users returns every registered user, oldest first. Corrupt records
// are skipped with a warning rather than failing the whole listing.
func (s *Store) Users() ([]types.User, error) {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(prefixUser)), nil)
	defer iter.Release()

	var out []types.User
	for iter.Next() {
		var u types.User
		if err := json.Unmarshal(iter.Value(), &u); err != nil {
			slog.Warn("[STORE] corrupt user record", "key", string(iter.Key()), "error", err)
			continue
		}
		out = append(out, u)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("store: iterate users: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}

// DeleteUser removes a user together with every plan and the progress
// snapshot that belong to them. Deleting an unknown id is a no-op.
func (s *Store) DeleteUser(id string) error {
	batch := new(leveldb.Batch)
	batch.Delete([]byte(userKey(id)))
	batch.Delete([]byte(progressKey(id)))

	idxPrefix := prefixPlanIdx + safeKeyPart(id) + "|"
	iter := s.db.NewIterator(util.BytesPrefix([]byte(idxPrefix)), nil)
	for iter.Next() {
		planID := strings.TrimPrefix(string(iter.Key()), idxPrefix)
		batch.Delete([]byte(prefixPlan + planID))
		batch.Delete(append([]byte(nil), iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return fmt.Errorf("store: scan plans for user %s: %w", id, err)
	}

	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("store: delete user %s: %w", id, err)
	}
	return nil
}

// PutPlan inserts or overwrites a saved plan and its user index entry.
func (s *Store) PutPlan(p types.SavedPlan) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("store: marshal plan %s: %w", p.ID, err)
	}
	batch := new(leveldb.Batch)
	batch.Put([]byte(planKey(p.ID)), data)
	if p.UserID != "" {
		batch.Put([]byte(planIdxKey(p.UserID, p.ID)), nil)
	}
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("store: put plan %s: %w", p.ID, err)
	}
	return nil
}

// GetPlan fetches one saved plan. ok is false when the id is unknown.
func (s *Store) GetPlan(id string) (types.SavedPlan, bool, error) {
	data, err := s.db.Get([]byte(planKey(id)), nil)
	if err == leveldb.ErrNotFound {
		return types.SavedPlan{}, false, nil
	}
	if err != nil {
		return types.SavedPlan{}, false, fmt.Errorf("store: get plan %s: %w", id, err)
	}
	var p types.SavedPlan
	if err := json.Unmarshal(data, &p); err != nil {
		slog.Warn("[STORE] corrupt plan record", "id", id, "error", err)
		return types.SavedPlan{}, false, nil
	}
	return p, true, nil
}

// Plans returns every saved plan, oldest first.
func (s *Store) Plans() ([]types.SavedPlan, error) {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(prefixPlan)), nil)
	defer iter.Release()

	var out []types.SavedPlan
	for iter.Next() {
		var p types.SavedPlan
		if err := json.Unmarshal(iter.Value(), &p); err != nil {
			slog.Warn("[STORE] corrupt plan record", "key", string(iter.Key()), "error", err)
			continue
		}
		out = append(out, p)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("store: iterate plans: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}

// PlansForUser returns the user's saved plans, oldest first.
func (s *Store) PlansForUser(userID string) ([]types.SavedPlan, error) {
	idxPrefix := prefixPlanIdx + safeKeyPart(userID) + "|"
	iter := s.db.NewIterator(util.BytesPrefix([]byte(idxPrefix)), nil)
	defer iter.Release()

	var out []types.SavedPlan
	for iter.Next() {
		planID := strings.TrimPrefix(string(iter.Key()), idxPrefix)
		p, ok, err := s.GetPlan(planID)
		if err != nil {
			return nil, err
		}
		if !ok {
			// Dangling index entry; the record was removed out of band.
			continue
		}
		out = append(out, p)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("store: iterate plans for %s: %w", userID, err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}

// DeletePlan removes one saved plan and its index entry.
func (s *Store) DeletePlan(id string) error {
	p, ok, err := s.GetPlan(id)
	if err != nil {
		return err
	}
	batch := new(leveldb.Batch)
	batch.Delete([]byte(planKey(id)))
	if ok && p.UserID != "" {
		batch.Delete([]byte(planIdxKey(p.UserID, id)))
	}
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("store: delete plan %s: %w", id, err)
	}
	return nil
}

// SaveProgress stores a mid-assessment snapshot for the user, or under
// AnonymousID when userID is empty. One snapshot per user; saving again
// overwrites.
func (s *Store) SaveProgress(userID string, snap types.ProgressSnapshot) error {
	if userID == "" {
		userID = AnonymousID
	}
	if snap.SavedAt == "" {
		snap.SavedAt = time.Now().UTC().Format(time.RFC3339)
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("store: marshal progress %s: %w", userID, err)
	}
	if err := s.db.Put([]byte(progressKey(userID)), data, nil); err != nil {
		return fmt.Errorf("store: put progress %s: %w", userID, err)
	}
	return nil
}

// LoadProgress fetches the user's snapshot. A corrupt snapshot reads as
// absent; resumption is best effort and never blocks a fresh start.
func (s *Store) LoadProgress(userID string) (types.ProgressSnapshot, bool, error) {
	if userID == "" {
		userID = AnonymousID
	}
	data, err := s.db.Get([]byte(progressKey(userID)), nil)
	if err == leveldb.ErrNotFound {
		return types.ProgressSnapshot{}, false, nil
	}
	if err != nil {
		return types.ProgressSnapshot{}, false, fmt.Errorf("store: get progress %s: %w", userID, err)
	}
	var snap types.ProgressSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		slog.Warn("[STORE] corrupt progress snapshot", "user", userID, "error", err)
		return types.ProgressSnapshot{}, false, nil
	}
	return snap, true, nil
}

// ClearProgress drops the user's snapshot, typically after the plan it
// fed has been saved.
func (s *Store) ClearProgress(userID string) error {
	if userID == "" {
		userID = AnonymousID
	}
	if err := s.db.Delete([]byte(progressKey(userID)), nil); err != nil {
		return fmt.Errorf("store: clear progress %s: %w", userID, err)
	}
	return nil
}

// RequiredServices returns the per-group required-service overrides.
func (s *Store) RequiredServices() (map[string]string, error) {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(prefixRequired)), nil)
	defer iter.Release()

	out := make(map[string]string)
	for iter.Next() {
		key := strings.TrimPrefix(string(iter.Key()), prefixRequired)
		out[key] = string(iter.Value())
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("store: iterate required services: %w", err)
	}
	return out, nil
}

// SetRequiredServices replaces all overrides at once. Empty values drop
// the override rather than storing blank text.
func (s *Store) SetRequiredServices(services map[string]string) error {
	existing, err := s.RequiredServices()
	if err != nil {
		return err
	}
	batch := new(leveldb.Batch)
	for key := range existing {
		batch.Delete([]byte(requiredKey(key)))
	}
	for key, text := range services {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		batch.Put([]byte(requiredKey(key)), []byte(text))
	}
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("store: write required services: %w", err)
	}
	return nil
}

// Backup collects everything into a versioned envelope. session may be
// nil when no working state should travel with the backup.
func (s *Store) Backup(session *types.SessionState) (types.BackupEnvelope, error) {
	users, err := s.Users()
	if err != nil {
		return types.BackupEnvelope{}, err
	}
	plans, err := s.Plans()
	if err != nil {
		return types.BackupEnvelope{}, err
	}
	required, err := s.RequiredServices()
	if err != nil {
		return types.BackupEnvelope{}, err
	}
	return types.BackupEnvelope{
		Version:    backupVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Data: types.BackupData{
			Users:            users,
			Plans:            plans,
			RequiredServices: required,
			CurrentSession:   session,
		},
	}, nil
}

// Restore merges an envelope into the store. Users and plans merge by
// id with the envelope winning; required services merge by key the same
// way. Data absent from the envelope is left untouched, so restore adds
// and updates but never deletes.
func (s *Store) Restore(env types.BackupEnvelope) error {
	if env.Version == "" {
		return fmt.Errorf("store: restore: missing envelope version")
	}

	batch := new(leveldb.Batch)
	for _, u := range env.Data.Users {
		data, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("store: restore user %s: %w", u.ID, err)
		}
		batch.Put([]byte(userKey(u.ID)), data)
	}
	for _, p := range env.Data.Plans {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("store: restore plan %s: %w", p.ID, err)
		}
		batch.Put([]byte(planKey(p.ID)), data)
		if p.UserID != "" {
			batch.Put([]byte(planIdxKey(p.UserID, p.ID)), nil)
		}
	}
	for key, text := range env.Data.RequiredServices {
		if text == "" {
			continue
		}
		batch.Put([]byte(requiredKey(key)), []byte(text))
	}
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("store: restore: %w", err)
	}
	return nil
}
