// Package session tracks who the current user is according to the
// remote API. The gate is the single authority other packages consult;
// nothing else interprets auth errors.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/eventifyseu/eventify-web/pkg/model"
)

// Status is the gate's view of the current identity.
type Status string

const (
	// StatusUninitialized means the startup probe has not run yet.
	StatusUninitialized Status = "uninitialized"
	// StatusLoading means the startup probe is in flight.
	StatusLoading Status = "loading"
	// StatusAuthenticated means the API confirmed an identity.
	StatusAuthenticated Status = "authenticated"
	// StatusAnonymous means there is no usable identity. Probe
	// failures of any kind land here rather than in an error state.
	StatusAnonymous Status = "anonymous"
)

// API is the slice of the remote client the gate needs.
type API interface {
	Me(ctx context.Context) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Logout(ctx context.Context) error
}

// Snapshot is a point-in-time copy of the gate's state.
type Snapshot struct {
	Status Status
	User   *model.User
}

// Gate is the identity state machine. Safe for concurrent use.
type Gate struct {
	api    API
	logger *slog.Logger

	mu     sync.Mutex
	status Status
	user   *model.User
}

// NewGate returns a gate in the uninitialized state.
func NewGate(api API, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{
		api:    api,
		logger: logger.With("component", "session-gate"),
		status: StatusUninitialized,
	}
}

// Snapshot returns the current status and identity. The returned user
// is a copy.
func (g *Gate) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *Gate) snapshotLocked() Snapshot {
	snap := Snapshot{Status: g.status}
	if g.user != nil {
		u := *g.user
		snap.User = &u
	}
	return snap
}

// Initialize runs the startup identity probe. The gate passes through
// loading while the probe is in flight and always lands on
// authenticated or anonymous; a network outage, an expired token and a
// plain rejection all resolve to anonymous.
func (g *Gate) Initialize(ctx context.Context) Snapshot {
	g.mu.Lock()
	g.status = StatusLoading
	g.user = nil
	g.mu.Unlock()

	user, err := g.api.Me(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		g.logger.Debug("identity probe failed, treating as anonymous", "error", err)
		g.status = StatusAnonymous
		g.user = nil
		return g.snapshotLocked()
	}

	g.status = StatusAuthenticated
	g.user = user
	return g.snapshotLocked()
}

// Refresh re-probes the identity without passing through loading. A
// failed refresh drops the gate to anonymous.
func (g *Gate) Refresh(ctx context.Context) Snapshot {
	user, err := g.api.Me(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		g.logger.Debug("identity refresh failed, treating as anonymous", "error", err)
		g.status = StatusAnonymous
		g.user = nil
		return g.snapshotLocked()
	}

	g.status = StatusAuthenticated
	g.user = user
	return g.snapshotLocked()
}

// Login exchanges credentials for an identity. On failure the gate's
// state is left exactly as it was.
func (g *Gate) Login(ctx context.Context, email, password string) (Snapshot, error) {
	user, err := g.api.Login(ctx, email, password)
	if err != nil {
		return g.Snapshot(), err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = StatusAuthenticated
	g.user = user
	return g.snapshotLocked(), nil
}

// Register creates an account and signs it in. On failure the gate's
// state is left exactly as it was.
func (g *Gate) Register(ctx context.Context, username, email, password string) (Snapshot, error) {
	user, err := g.api.Register(ctx, username, email, password)
	if err != nil {
		return g.Snapshot(), err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = StatusAuthenticated
	g.user = user
	return g.snapshotLocked(), nil
}

// Logout drops to anonymous unconditionally. The remote call is best
// effort; its error is returned for logging but the local state is
// already cleared by the time this returns.
func (g *Gate) Logout(ctx context.Context) error {
	err := g.api.Logout(ctx)

	g.mu.Lock()
	g.status = StatusAnonymous
	g.user = nil
	g.mu.Unlock()

	if err != nil {
		g.logger.Warn("remote logout failed, local session cleared anyway", "error", err)
	}
	return err
}

// HasRole reports whether the gate holds an authenticated identity with
// exactly the given role. A super-admin asking for admin gets false;
// role names never imply each other.
func (g *Gate) HasRole(role model.Role) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status == StatusAuthenticated && g.user != nil && g.user.Role == role
}

// Authenticated reports whether the gate currently holds an identity.
func (g *Gate) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status == StatusAuthenticated
}
