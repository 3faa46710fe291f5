package web

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/eventifyseu/eventify-web/pkg/model"
)

// Context keys for request-scoped data.
type contextKey string

const (
	sessionContextKey   contextKey = "session"
	requestIDContextKey contextKey = "request_id"
)

// SessionFromContext retrieves the session from the request context.
func SessionFromContext(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionContextKey).(*model.Session)
	return sess
}

// RequestIDFromContext retrieves the request ID from the request context.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// RequestIDMiddleware assigns each request a UUID and echoes it in the
// X-Request-ID response header.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggingMiddleware logs each request at debug level.
func (web *Web) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		web.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"duration", time.Since(start),
		)
	})
}

// AuthMiddleware validates the session and adds it to the request context.
// Visitors without a valid session are sent to the register page, which
// doubles as the sign-in page.
func (web *Web) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := web.sessions.GetSessionFromRequest(r)
		if err != nil {
			web.logger.Error("session lookup failed", "error", err)
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}

		if sess == nil {
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole guards a route group behind an exact role match. There is
// no hierarchy between roles; a super-admin does not pass an admin
// check. Any mismatch goes to the public entry point, which forwards
// signed-in visitors to their own landing page.
// Must be used after AuthMiddleware.
func (web *Web) RequireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromContext(r.Context())
			if sess == nil || !sess.HasRole(role) {
				http.Redirect(w, r, "/register", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// roleHome maps a role to its landing page.
func roleHome(role model.Role) string {
	switch role {
	case model.RoleAdmin:
		return "/events/my"
	case model.RoleSuperAdmin:
		return "/dashboard"
	default:
		return "/feed"
	}
}

// loginLimiter rate limits credential submissions per client IP.
type loginLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	r        rate.Limit
	burst    int
}

func newLoginLimiter(r rate.Limit, burst int) *loginLimiter {
	return &loginLimiter{
		visitors: make(map[string]*rate.Limiter),
		r:        r,
		burst:    burst,
	}
}

func (l *loginLimiter) allow(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.visitors[host]
	if !ok {
		lim = rate.NewLimiter(l.r, l.burst)
		l.visitors[host] = lim
	}
	return lim.Allow()
}

// RateLimitLogin rejects credential submissions once a client exceeds
// its budget.
func (web *Web) RateLimitLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !web.loginLimiter.allow(r.RemoteAddr) {
			web.logger.Warn("login rate limited", "remote", r.RemoteAddr)
			http.Error(w, "Too many attempts, try again later", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
