package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

// KeyValue is the raw string storage underneath KVStore.
type KeyValue interface {
	// Get returns found=false when the key has never been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// SourceReader is a KeyValue layered over another one that can read past
// itself. Read-modify-write paths use it so a stale layer never feeds a write.
type SourceReader interface {
	GetSource(ctx context.Context, key string) (value string, found bool, err error)
}

const (
	DefaultNamespace = "habitcalendar_"

	habitsKey   = "habits"
	progressKey = "progress"
	settingsKey = "notification_settings"
)

var (
	_ domain.Store         = (*KVStore)(nil)
	_ domain.SettingsStore = (*KVStore)(nil)
)

// KVStore keeps each collection as one JSON document. Corrupted documents
// read as empty and are overwritten by the next write.
type KVStore struct {
	kv        KeyValue
	namespace string

	mu sync.Mutex
}

func NewKVStore(kv KeyValue, namespace string) *KVStore {
	return &KVStore{
		kv:        kv,
		namespace: namespace,
	}
}

func (s *KVStore) key(name string) string {
	return s.namespace + name
}

// load decodes the document at key into dst. It reports false when there is
// nothing usable there, JSON null included. source bypasses any cache layer.
func (s *KVStore) load(ctx context.Context, name string, dst any, source bool) (bool, error) {
	key := s.key(name)

	get := s.kv.Get
	if sr, ok := s.kv.(SourceReader); ok && source {
		get = sr.GetSource
	}

	raw, found, err := get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("store: read %s: %w", key, err)
	}
	if trimmed := strings.TrimSpace(raw); !found || trimmed == "" || trimmed == "null" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Printf("[STORE] Corrupted data at %s, treating as empty: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (s *KVStore) save(ctx context.Context, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", name, err)
	}
	if err := s.kv.Set(ctx, s.key(name), string(data)); err != nil {
		return fmt.Errorf("store: write %s: %w", s.key(name), err)
	}
	return nil
}

func (s *KVStore) ListHabits(ctx context.Context) ([]domain.Habit, error) {
	var habits []domain.Habit
	ok, err := s.load(ctx, habitsKey, &habits, false)
	if err != nil {
		return nil, err
	}
	if !ok || habits == nil {
		return []domain.Habit{}, nil
	}
	return habits, nil
}

func (s *KVStore) ReplaceHabits(ctx context.Context, habits []domain.Habit) error {
	if habits == nil {
		habits = []domain.Habit{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, habitsKey, habits)
}

func (s *KVStore) ListAllProgress(ctx context.Context) ([]domain.DayProgress, error) {
	return s.listProgress(ctx, false)
}

func (s *KVStore) listProgress(ctx context.Context, source bool) ([]domain.DayProgress, error) {
	var all []domain.DayProgress
	ok, err := s.load(ctx, progressKey, &all, source)
	if err != nil {
		return nil, err
	}
	if !ok || all == nil {
		return []domain.DayProgress{}, nil
	}
	return all, nil
}

func (s *KVStore) GetProgress(ctx context.Context, date string) (domain.DayProgress, bool, error) {
	all, err := s.ListAllProgress(ctx)
	if err != nil {
		return domain.DayProgress{}, false, err
	}
	for _, p := range all {
		if p.Date == date {
			return p, true, nil
		}
	}
	return domain.DayProgress{}, false, nil
}

func (s *KVStore) SetProgress(ctx context.Context, date string, habits map[string]bool) (domain.DayProgress, error) {
	record := domain.NewDayProgress(date, habits)

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.listProgress(ctx, true)
	if err != nil {
		return domain.DayProgress{}, err
	}

	replaced := false
	for i := range all {
		if all[i].Date == date {
			all[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, record)
	}

	if err := s.save(ctx, progressKey, all); err != nil {
		return domain.DayProgress{}, err
	}
	return record, nil
}

func (s *KVStore) GetNotificationSettings(ctx context.Context) (domain.NotificationSettings, error) {
	settings := domain.DefaultNotificationSettings()

	var stored domain.NotificationSettings
	ok, err := s.load(ctx, settingsKey, &stored, false)
	if err != nil {
		return settings, err
	}
	if !ok {
		return settings, nil
	}
	return stored, nil
}

func (s *KVStore) SaveNotificationSettings(ctx context.Context, settings domain.NotificationSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, settingsKey, settings)
}
