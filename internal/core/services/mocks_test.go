package services_test

import (
	"context"
	"maps"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

// MockStore is a stateful in-memory domain.Store and domain.SettingsStore.
type MockStore struct {
	mu       sync.Mutex
	habits   []domain.Habit
	progress []domain.DayProgress
	settings *domain.NotificationSettings

	simulateError error
	replaceCalls  int
}

func NewMockStore(habits ...domain.Habit) *MockStore {
	return &MockStore{habits: append([]domain.Habit(nil), habits...)}
}

func (m *MockStore) ListHabits(ctx context.Context) ([]domain.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	return append([]domain.Habit{}, m.habits...), nil
}

func (m *MockStore) ReplaceHabits(ctx context.Context, habits []domain.Habit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	m.replaceCalls++
	m.habits = append([]domain.Habit{}, habits...)
	return nil
}

func (m *MockStore) ListAllProgress(ctx context.Context) ([]domain.DayProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	return append([]domain.DayProgress{}, m.progress...), nil
}

func (m *MockStore) GetProgress(ctx context.Context, date string) (domain.DayProgress, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return domain.DayProgress{}, false, m.simulateError
	}
	for _, p := range m.progress {
		if p.Date == date {
			return p, true, nil
		}
	}
	return domain.DayProgress{}, false, nil
}

func (m *MockStore) SetProgress(ctx context.Context, date string, habits map[string]bool) (domain.DayProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return domain.DayProgress{}, m.simulateError
	}
	rec := domain.NewDayProgress(date, habits)
	for i := range m.progress {
		if m.progress[i].Date == date {
			m.progress[i] = rec
			return rec, nil
		}
	}
	m.progress = append(m.progress, rec)
	return rec, nil
}

func (m *MockStore) GetNotificationSettings(ctx context.Context) (domain.NotificationSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return domain.DefaultNotificationSettings(), m.simulateError
	}
	if m.settings == nil {
		return domain.DefaultNotificationSettings(), nil
	}
	return *m.settings, nil
}

func (m *MockStore) SaveNotificationSettings(ctx context.Context, s domain.NotificationSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.simulateError != nil {
		return m.simulateError
	}
	m.settings = &s
	return nil
}

func (m *MockStore) seed(date string, habits map[string]bool) {
	h := make(map[string]bool, len(habits))
	maps.Copy(h, habits)
	_, _ = m.SetProgress(context.Background(), date, h)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Supported() bool {
	return m.Called().Bool(0)
}

func (m *MockNotifier) Permission() domain.Permission {
	return m.Called().Get(0).(domain.Permission)
}

func (m *MockNotifier) RequestPermission(ctx context.Context) (domain.Permission, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Permission), args.Error(1)
}

func (m *MockNotifier) Send(ctx context.Context, n domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type MockReminder struct {
	mock.Mock
}

func (m *MockReminder) Schedule(at string) error {
	return m.Called(at).Error(0)
}

func (m *MockReminder) Cancel() {
	m.Called()
}

func (m *MockReminder) Active() bool {
	return m.Called().Bool(0)
}

type recordingListener struct {
	dates []string
}

func (l *recordingListener) OnPerfectDay(ctx context.Context, date string) {
	l.dates = append(l.dates, date)
}
