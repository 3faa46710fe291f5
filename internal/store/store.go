package store

import (
	"context"

	"github.com/eventifyseu/eventify-web/pkg/model"
)

// Store defines the local persistence layer. The web front-end only
// persists its own login sessions; all domain data lives behind the
// remote API.
type Store interface {
	CreateSession(ctx context.Context, sess *model.Session) error
	GetSession(ctx context.Context, id string) (*model.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
	DeleteSessionsByUserID(ctx context.Context, userID string) (int64, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
