package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/kanso-calendar/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-calendar/internal/adapters/notify"
	"github.com/comitanigiacomo/kanso-calendar/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calendar/internal/core/services"
)

// fixedNow is Sunday 2 June 2024, noon UTC.
var fixedNow = time.Date(2024, time.June, 2, 12, 0, 0, 0, time.UTC)

type fakeReminder struct {
	mu     sync.Mutex
	at     string
	active bool
}

func (r *fakeReminder) Schedule(at string) error {
	if _, _, err := domain.ParseReminderTime(at); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.at, r.active = at, true
	return nil
}

func (r *fakeReminder) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = false
}

func (r *fakeReminder) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

type perfectDays struct {
	mu    sync.Mutex
	dates []string
}

func (p *perfectDays) OnPerfectDay(ctx context.Context, date string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dates = append(p.dates, date)
}

type testApp struct {
	router   *gin.Engine
	store    *repository.KVStore
	notifier *notify.LogNotifier
	reminder *fakeReminder
	perfect  *perfectDays
	tokens   *services.TokenService
}

type appOptions struct {
	permission     domain.Permission
	passphraseHash string
	checks         map[string]adapterHTTP.HealthCheck
}

func newTestApp(t *testing.T, opts appOptions) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if opts.permission == "" {
		opts.permission = domain.PermissionDefault
	}

	app := &testApp{
		store:    repository.NewKVStore(repository.NewInMemoryKV(), repository.DefaultNamespace),
		notifier: notify.NewLogNotifier(opts.permission),
		reminder: &fakeReminder{},
		perfect:  &perfectDays{},
	}

	deps := adapterHTTP.RouterDependencies{
		HabitHandler:        adapterHTTP.NewHabitHandler(services.NewHabitService(app.store)),
		ProgressHandler:     adapterHTTP.NewProgressHandler(services.NewProgressService(app.store, app.perfect)),
		StatsHandler:        adapterHTTP.NewStatsHandler(services.NewStatsService(app.store, func() time.Time { return fixedNow })),
		NotificationHandler: adapterHTTP.NewNotificationHandler(services.NewNotificationService(app.store, app.notifier, app.reminder)),
		HealthChecks:        opts.checks,
		StartTime:           time.Now(),
	}

	if opts.passphraseHash != "" {
		app.tokens = services.NewTokenService("test-secret", "kanso-calendar-test", time.Hour)
		deps.TokenService = app.tokens
		deps.AuthHandler = adapterHTTP.NewAuthHandler(services.NewAuthService(
			domain.Credentials{PassphraseHash: opts.passphraseHash}, app.tokens))
	}

	app.router = adapterHTTP.NewRouter(deps)
	return app
}

func (a *testApp) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (a *testApp) seedHabits(t *testing.T, habits ...domain.Habit) {
	t.Helper()
	require.NoError(t, a.store.ReplaceHabits(context.Background(), habits))
}

var (
	habitRead  = domain.Habit{ID: "h1", Name: "Read", Color: "#3B82F6", Icon: "📚"}
	habitRun   = domain.Habit{ID: "h2", Name: "Run", Color: "#10B981", Icon: "🏃"}
	habitWater = domain.Habit{ID: "h3", Name: "Water", Color: "#F59E0B", Icon: "💧"}
)

const api = "/api/v1"

func requireStatus(t *testing.T, want int, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, want, w.Code, w.Body.String())
}
