package notify

import (
	"sync"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

// permissionGate tracks the permission state of a channel the same way a
// browser does: default can become granted, denied is sticky.
type permissionGate struct {
	mu    sync.RWMutex
	state domain.Permission
}

func newPermissionGate(initial domain.Permission) permissionGate {
	return permissionGate{state: domain.ParsePermission(string(initial))}
}

func (g *permissionGate) Permission() domain.Permission {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

func (g *permissionGate) request() domain.Permission {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == domain.PermissionDefault {
		g.state = domain.PermissionGranted
	}
	return g.state
}
