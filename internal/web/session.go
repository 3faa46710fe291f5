package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/eventifyseu/eventify-web/internal/store"
	"github.com/eventifyseu/eventify-web/pkg/model"
)

const (
	// SessionCookieName is the name of the browser session cookie.
	SessionCookieName = "eventify_session"
	// DefaultSessionDuration is the session lifetime when the config
	// does not say otherwise.
	DefaultSessionDuration = 720 * time.Hour
)

// SessionManager handles browser session creation, validation, and cleanup.
// Each session carries the Eventify auth cookie so requests to the remote
// API can be made on the visitor's behalf.
type SessionManager struct {
	store store.Store
	ttl   time.Duration
}

// NewSessionManager creates a new session manager.
func NewSessionManager(st store.Store, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionDuration
	}
	return &SessionManager{store: st, ttl: ttl}
}

// CreateSession creates a new session for the authenticated user.
func (sm *SessionManager) CreateSession(ctx context.Context, user *model.User, token string) (*model.Session, error) {
	sessionID, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	now := time.Now()
	sess := &model.Session{
		ID:        sessionID,
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(sm.ttl),
	}

	if err := sm.store.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return sess, nil
}

// GetSession retrieves a session by ID from the store.
// Returns nil if the session doesn't exist or has expired.
func (sm *SessionManager) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	sess, err := sm.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess == nil {
		return nil, nil
	}

	if sess.IsExpired() {
		_ = sm.store.DeleteSession(ctx, sessionID)
		return nil, nil
	}

	return sess, nil
}

// DeleteSession removes a session from the store.
func (sm *SessionManager) DeleteSession(ctx context.Context, sessionID string) error {
	return sm.store.DeleteSession(ctx, sessionID)
}

// DeleteUserSessions removes every session belonging to a user. Used
// when a super-admin deletes an account.
func (sm *SessionManager) DeleteUserSessions(ctx context.Context, userID string) (int64, error) {
	return sm.store.DeleteSessionsByUserID(ctx, userID)
}

// CleanupExpiredSessions removes all expired sessions from the store.
func (sm *SessionManager) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	return sm.store.DeleteExpiredSessions(ctx)
}

// GetSessionFromRequest extracts the session from the request cookie.
func (sm *SessionManager) GetSessionFromRequest(r *http.Request) (*model.Session, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, nil // No cookie, no session
	}
	return sm.GetSession(r.Context(), cookie.Value)
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, sess *model.Session, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		Expires:  sess.ExpiresAt,
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// generateSessionID generates a cryptographically secure random session ID.
func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "sess_" + hex.EncodeToString(b), nil
}
