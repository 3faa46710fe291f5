package web

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/eventifyseu/eventify-web/internal/filter"
	"github.com/eventifyseu/eventify-web/internal/metrics"
	"github.com/eventifyseu/eventify-web/internal/store"
	"github.com/eventifyseu/eventify-web/pkg/eventify"
	"github.com/eventifyseu/eventify-web/pkg/model"
)

// maxImageUpload caps the size of event and club image uploads.
const maxImageUpload = 10 << 20

// API is the slice of the remote client the handlers use. The concrete
// implementation is *eventify.Client; tests substitute a fake.
type API interface {
	Me(ctx context.Context) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Logout(ctx context.Context) error

	ListEvents(ctx context.Context) ([]model.Event, error)
	ListEventsByCreator(ctx context.Context, userID string) ([]model.Event, error)
	CreateEvent(ctx context.Context, form eventify.EventForm) error
	UpdateEvent(ctx context.Context, id string, form eventify.EventForm) error
	DeleteEvent(ctx context.Context, id string) error

	ListClubs(ctx context.Context) ([]model.Club, error)
	CreateClub(ctx context.Context, form eventify.ClubForm) error
	UpdateClub(ctx context.Context, id string, form eventify.ClubForm) error
	DeleteClub(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, u eventify.NewUser) error
	UpdateUserRole(ctx context.Context, userID string, role model.Role) error
	DeleteUser(ctx context.Context, userID string) error
}

// ClientFactory builds an API client bound to a visitor's auth token.
// An empty token yields an anonymous client.
type ClientFactory func(token string) API

// Config holds web front-end configuration.
type Config struct {
	Secure     bool // Use secure cookies for HTTPS
	SessionTTL time.Duration
}

// Web handles the server-rendered front-end.
type Web struct {
	sessions     *SessionManager
	logger       *slog.Logger
	newClient    ClientFactory
	metrics      metrics.Recorder
	loginLimiter *loginLimiter
	startTime    time.Time
	secure       bool
}

// New creates the web front-end.
func New(st store.Store, newClient ClientFactory, rec metrics.Recorder, logger *slog.Logger, cfg Config) *Web {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Web{
		sessions:     NewSessionManager(st, cfg.SessionTTL),
		logger:       logger.With("component", "web"),
		newClient:    newClient,
		metrics:      rec,
		loginLimiter: newLoginLimiter(rate.Every(6*time.Second), 5),
		startTime:    time.Now(),
		secure:       cfg.Secure,
	}
}

// Sessions exposes the session manager for the cleanup loop.
func (web *Web) Sessions() *SessionManager {
	return web.sessions
}

// api returns a client bound to the current session's token, or an
// anonymous client when there is no session.
func (web *Web) api(r *http.Request) API {
	if sess := SessionFromContext(r.Context()); sess != nil {
		return web.newClient(sess.Token)
	}
	return web.newClient("")
}

// observe records the outcome and latency of a remote call.
func (web *Web) observe(op string, start time.Time, err error) {
	web.metrics.RecordAPILatency(op, time.Since(start))
	switch {
	case err == nil:
		web.metrics.RecordAPICall(op, metrics.OutcomeOK)
	case eventify.IsApplicationError(err):
		web.metrics.RecordAPICall(op, metrics.OutcomeRejected)
	default:
		web.metrics.RecordAPICall(op, metrics.OutcomeTransport)
	}
}

// --- Auth Handlers ---

// HandleRegister renders the combined sign-in / sign-up page.
func (web *Web) HandleRegister(w http.ResponseWriter, r *http.Request) {
	// Already signed in: go straight to the role's landing page.
	if sess, _ := web.sessions.GetSessionFromRequest(r); sess != nil {
		http.Redirect(w, r, roleHome(sess.Role), http.StatusSeeOther)
		return
	}

	data := map[string]any{
		"Title": "Sign in - Eventify SEU",
		"Error": r.URL.Query().Get("error"),
		"Mode":  r.URL.Query().Get("mode"),
	}
	web.render(w, "register", data)
}

// HandleLoginPost processes the sign-in form.
func (web *Web) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/register?error=Invalid+request", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		http.Redirect(w, r, "/register?error=Email+and+password+required", http.StatusSeeOther)
		return
	}

	client := web.newClient("")
	start := time.Now()
	user, err := client.Login(r.Context(), email, password)
	web.observe("auth.login", start, err)
	if err != nil {
		web.metrics.RecordLogin(false)
		web.logger.Warn("login failed", "email", email, "error", err)
		msg := eventify.Message(err, "Invalid credentials")
		http.Redirect(w, r, "/register?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}
	web.metrics.RecordLogin(true)

	web.establishSession(w, r, user, tokenOf(client))
}

// HandleRegisterPost processes the sign-up form.
func (web *Web) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/register?mode=signup&error=Invalid+request", http.StatusSeeOther)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if username == "" || email == "" || password == "" {
		http.Redirect(w, r, "/register?mode=signup&error=All+fields+required", http.StatusSeeOther)
		return
	}

	client := web.newClient("")
	start := time.Now()
	user, err := client.Register(r.Context(), username, email, password)
	web.observe("auth.register", start, err)
	if err != nil {
		web.logger.Warn("registration failed", "email", email, "error", err)
		msg := eventify.Message(err, "Registration failed")
		http.Redirect(w, r, "/register?mode=signup&error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}

	web.establishSession(w, r, user, tokenOf(client))
}

// establishSession stores a browser session for the signed-in user and
// redirects to their landing page.
func (web *Web) establishSession(w http.ResponseWriter, r *http.Request, user *model.User, token string) {
	sess, err := web.sessions.CreateSession(r.Context(), user, token)
	if err != nil {
		web.logger.Error("create session failed", "error", err)
		http.Redirect(w, r, "/register?error=Session+creation+failed", http.StatusSeeOther)
		return
	}

	SetSessionCookie(w, sess, web.secure)

	web.logger.Info("user signed in", "username", user.Username, "role", user.Role, "session", sess.ID)
	http.Redirect(w, r, roleHome(user.Role), http.StatusSeeOther)
}

// tokenOf pulls the captured auth cookie off a concrete client. Fakes
// used in tests don't carry one.
func tokenOf(client API) string {
	if c, ok := client.(*eventify.Client); ok {
		return c.Token()
	}
	return ""
}

// HandleLogout clears the session locally and invalidates it remotely.
// The local session is gone regardless of what the remote call does.
func (web *Web) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, _ := web.sessions.GetSessionFromRequest(r); sess != nil {
		start := time.Now()
		err := web.newClient(sess.Token).Logout(r.Context())
		web.observe("auth.logout", start, err)
		if err != nil {
			web.logger.Warn("remote logout failed", "error", err)
		}

		_ = web.sessions.DeleteSession(r.Context(), sess.ID)
		web.logger.Info("user signed out", "username", sess.Username, "session", sess.ID)
	}
	ClearSessionCookie(w)
	http.Redirect(w, r, "/register", http.StatusSeeOther)
}

// HandleRefresh re-probes the remote identity for the current session.
// If the token no longer works, the session is destroyed and the
// visitor starts over.
func (web *Web) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	start := time.Now()
	user, err := web.api(r).Me(r.Context())
	web.observe("auth.me", start, err)
	if err != nil {
		web.logger.Info("identity probe failed, dropping session", "session", sess.ID, "error", err)
		_ = web.sessions.DeleteSession(r.Context(), sess.ID)
		ClearSessionCookie(w)
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	// Role may have changed since sign-in. Re-issue the session.
	if user.Role != sess.Role {
		_ = web.sessions.DeleteSession(r.Context(), sess.ID)
		web.establishSession(w, r, user, sess.Token)
		return
	}

	http.Redirect(w, r, roleHome(sess.Role), http.StatusSeeOther)
}

// HandleHome sends the visitor wherever their role belongs.
func (web *Web) HandleHome(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	http.Redirect(w, r, roleHome(sess.Role), http.StatusSeeOther)
}

// --- Feed Handlers ---

// HandleFeed renders the event feed with search, club filter, and sort
// controls.
func (web *Web) HandleFeed(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	// List failures degrade to an empty feed; the outage shows up in
	// the logs, not the page.
	start := time.Now()
	events, err := web.api(r).ListEvents(r.Context())
	web.observe("events.list", start, err)
	if err != nil {
		web.logger.Error("failed to load events", "error", err)
		events = nil
	}

	state := filter.Normalize(filter.State{
		Search: r.URL.Query().Get("search"),
		Club:   r.URL.Query().Get("club"),
		Sort:   filter.Sort(r.URL.Query().Get("sort")),
	})

	data := map[string]any{
		"Title":         "Events - Eventify SEU",
		"Session":       sess,
		"Events":        filter.Apply(events, state),
		"Clubs":         filter.Clubs(events),
		"Search":        state.Search,
		"ClubFilter":    state.Club,
		"Sort":          string(state.Sort),
		"FiltersActive": state.Active(),
		"TotalEvents":   len(events),
	}
	web.render(w, "feed", data)
}

// --- Event Management Handlers (admin) ---

// HandleMyEvents renders the events created by the signed-in admin.
func (web *Web) HandleMyEvents(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	start := time.Now()
	events, err := web.api(r).ListEventsByCreator(r.Context(), sess.UserID)
	web.observe("events.listByCreator", start, err)
	if err != nil {
		web.logger.Error("failed to load own events", "error", err)
		events = nil
	}

	data := map[string]any{
		"Title":   "My Events - Eventify SEU",
		"Session": sess,
		"Events":  events,
		"Error":   r.URL.Query().Get("error"),
	}
	web.render(w, "events/my", data)
}

// HandleEventNew renders the event creation form.
func (web *Web) HandleEventNew(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	start := time.Now()
	clubs, err := web.api(r).ListClubs(r.Context())
	web.observe("clubs.list", start, err)
	if err != nil {
		web.logger.Error("failed to load clubs", "error", err)
		clubs = nil
	}

	data := map[string]any{
		"Title":   "New Event - Eventify SEU",
		"Session": sess,
		"Clubs":   clubs,
		"Error":   r.URL.Query().Get("error"),
	}
	web.render(w, "events/new", data)
}

// HandleEventCreate processes the event creation form.
func (web *Web) HandleEventCreate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	form, err := web.parseEventForm(r)
	if err != nil {
		http.Redirect(w, r, "/events/new?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	form.CreatedBy = sess.UserID

	if form.Name == "" || form.Date == "" || form.ClubID == "" {
		http.Redirect(w, r, "/events/new?error=Name%2C+date+and+club+are+required", http.StatusSeeOther)
		return
	}

	start := time.Now()
	err = web.api(r).CreateEvent(r.Context(), form)
	web.observe("events.create", start, err)
	if err != nil {
		msg := eventify.Message(err, "Failed to create event")
		http.Redirect(w, r, "/events/new?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}

	web.logger.Info("event created", "name", form.Name, "by", sess.Username)
	http.Redirect(w, r, "/events/my", http.StatusSeeOther)
}

// HandleEventEdit renders the event edit form.
func (web *Web) HandleEventEdit(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	id := r.PathValue("id")

	api := web.api(r)

	start := time.Now()
	events, err := api.ListEventsByCreator(r.Context(), sess.UserID)
	web.observe("events.listByCreator", start, err)
	if err != nil {
		web.renderError(w, sess, "Failed to load event", err)
		return
	}

	var event *model.Event
	for i := range events {
		if events[i].ID == id {
			event = &events[i]
			break
		}
	}
	if event == nil {
		web.renderNotFound(w, sess, "Event not found")
		return
	}

	clubs, err := api.ListClubs(r.Context())
	if err != nil {
		web.renderError(w, sess, "Failed to load clubs", err)
		return
	}

	data := map[string]any{
		"Title":   "Edit Event - Eventify SEU",
		"Session": sess,
		"Event":   event,
		"Clubs":   clubs,
		"Error":   r.URL.Query().Get("error"),
	}
	web.render(w, "events/edit", data)
}

// HandleEventUpdate processes the event edit form.
func (web *Web) HandleEventUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	form, err := web.parseEventForm(r)
	if err != nil {
		http.Redirect(w, r, "/events/"+id+"/edit?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	if form.Name == "" || form.Date == "" {
		http.Redirect(w, r, "/events/"+id+"/edit?error=Name+and+date+are+required", http.StatusSeeOther)
		return
	}

	start := time.Now()
	err = web.api(r).UpdateEvent(r.Context(), id, form)
	web.observe("events.update", start, err)
	if err != nil {
		msg := eventify.Message(err, "Failed to update event")
		http.Redirect(w, r, "/events/"+id+"/edit?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/events/my", http.StatusSeeOther)
}

// HandleEventDelete deletes an event and returns to the list.
func (web *Web) HandleEventDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	start := time.Now()
	err := web.api(r).DeleteEvent(r.Context(), id)
	web.observe("events.delete", start, err)
	if err != nil {
		msg := eventify.Message(err, "Failed to delete event")
		http.Redirect(w, r, "/events/my?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}

	web.logger.Info("event deleted", "id", id)
	http.Redirect(w, r, "/events/my", http.StatusSeeOther)
}

// parseEventForm reads an event submission, including an optional image
// upload. The image bytes are forwarded to the API untouched.
func (web *Web) parseEventForm(r *http.Request) (eventify.EventForm, error) {
	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		return eventify.EventForm{}, err
	}

	form := eventify.EventForm{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Date:        r.FormValue("date"),
		ClubID:      r.FormValue("club"),
	}

	for i := 0; ; i++ {
		label := strings.TrimSpace(r.FormValue("button_label_" + strconv.Itoa(i)))
		link := strings.TrimSpace(r.FormValue("button_url_" + strconv.Itoa(i)))
		if label == "" && link == "" {
			break
		}
		form.Buttons = append(form.Buttons, model.Button{Label: label, URL: link})
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return eventify.EventForm{}, err
		}
		form.Image = data
		form.ImageName = header.Filename
	}

	return form, nil
}

// --- Super-Admin Handlers ---

// HandleDashboard renders the super-admin overview.
func (web *Web) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	api := web.api(r)

	start := time.Now()
	events, err := api.ListEvents(r.Context())
	web.observe("events.list", start, err)
	if err != nil {
		web.logger.Error("failed to load events", "error", err)
		events = nil
	}

	clubs, err := api.ListClubs(r.Context())
	if err != nil {
		web.logger.Error("failed to load clubs", "error", err)
		clubs = nil
	}

	users, err := api.ListUsers(r.Context())
	if err != nil {
		web.logger.Error("failed to load users", "error", err)
		users = nil
	}

	admins := 0
	for _, u := range users {
		if u.Role == model.RoleAdmin {
			admins++
		}
	}

	data := map[string]any{
		"Title":      "Dashboard - Eventify SEU",
		"Session":    sess,
		"EventCount": len(events),
		"ClubCount":  len(clubs),
		"UserCount":  len(users),
		"AdminCount": admins,
		"Uptime":     time.Since(web.startTime).Round(time.Second).String(),
	}
	web.render(w, "dashboard", data)
}

// HandleEvents renders the full event list for moderation.
func (web *Web) HandleEvents(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	start := time.Now()
	events, err := web.api(r).ListEvents(r.Context())
	web.observe("events.list", start, err)
	if err != nil {
		web.logger.Error("failed to load events", "error", err)
		events = nil
	}

	data := map[string]any{
		"Title":   "All Events - Eventify SEU",
		"Session": sess,
		"Events":  events,
		"Error":   r.URL.Query().Get("error"),
	}
	web.render(w, "events/all", data)
}

// HandleEventModerate deletes any event, regardless of creator.
func (web *Web) HandleEventModerate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	start := time.Now()
	err := web.api(r).DeleteEvent(r.Context(), id)
	web.observe("events.delete", start, err)
	if err != nil {
		msg := eventify.Message(err, "Failed to delete event")
		http.Redirect(w, r, "/events?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/events", http.StatusSeeOther)
}

// HandleUsers renders the account management page.
func (web *Web) HandleUsers(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	start := time.Now()
	users, err := web.api(r).ListUsers(r.Context())
	web.observe("users.list", start, err)
	if err != nil {
		web.logger.Error("failed to load users", "error", err)
		users = nil
	}

	data := map[string]any{
		"Title":   "Users - Eventify SEU",
		"Session": sess,
		"Users":   users,
		"Roles":   model.Roles(),
		"Error":   r.URL.Query().Get("error"),
	}
	web.render(w, "users", data)
}

// HandleUserCreate creates an account with an explicit role.
func (web *Web) HandleUserCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/users?error=Invalid+request", http.StatusSeeOther)
		return
	}

	role := model.Role(r.FormValue("role"))
	if !role.Valid() {
		http.Redirect(w, r, "/users?error=Unknown+role", http.StatusSeeOther)
		return
	}

	u := eventify.NewUser{
		Username: strings.TrimSpace(r.FormValue("username")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		Role:     role,
	}
	if u.Username == "" || u.Email == "" || u.Password == "" {
		http.Redirect(w, r, "/users?error=All+fields+required", http.StatusSeeOther)
		return
	}

	start := time.Now()
	err := web.api(r).CreateUser(r.Context(), u)
	web.observe("users.create", start, err)
	if err != nil {
		msg := eventify.Message(err, "Failed to create user")
		http.Redirect(w, r, "/users?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// HandleUserRole changes an account's role.
func (web *Web) HandleUserRole(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/users?error=Invalid+request", http.StatusSeeOther)
		return
	}

	role := model.Role(r.FormValue("role"))
	if !role.Valid() {
		http.Redirect(w, r, "/users?error=Unknown+role", http.StatusSeeOther)
		return
	}

	start := time.Now()
	err := web.api(r).UpdateUserRole(r.Context(), id, role)
	web.observe("users.updateRole", start, err)
	if err != nil {
		msg := eventify.Message(err, "Failed to change role")
		http.Redirect(w, r, "/users?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}

	// The user's old sessions carry the old role. Drop them.
	if _, err := web.sessions.DeleteUserSessions(r.Context(), id); err != nil {
		web.logger.Error("failed to drop sessions after role change", "user_id", id, "error", err)
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// HandleUserDelete removes an account and its sessions.
func (web *Web) HandleUserDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	start := time.Now()
	err := web.api(r).DeleteUser(r.Context(), id)
	web.observe("users.delete", start, err)
	if err != nil {
		msg := eventify.Message(err, "Failed to delete user")
		http.Redirect(w, r, "/users?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}

	if _, err := web.sessions.DeleteUserSessions(r.Context(), id); err != nil {
		web.logger.Error("failed to drop sessions after delete", "user_id", id, "error", err)
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// HandleClubs renders the club management page.
func (web *Web) HandleClubs(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	start := time.Now()
	clubs, err := web.api(r).ListClubs(r.Context())
	web.observe("clubs.list", start, err)
	if err != nil {
		web.logger.Error("failed to load clubs", "error", err)
		clubs = nil
	}

	data := map[string]any{
		"Title":   "Clubs - Eventify SEU",
		"Session": sess,
		"Clubs":   clubs,
		"Error":   r.URL.Query().Get("error"),
	}
	web.render(w, "clubs", data)
}

// HandleClubCreate creates a club from a multipart form.
func (web *Web) HandleClubCreate(w http.ResponseWriter, r *http.Request) {
	form, err := web.parseClubForm(r)
	if err != nil {
		http.Redirect(w, r, "/clubs?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	if form.Name == "" {
		http.Redirect(w, r, "/clubs?error=Name+is+required", http.StatusSeeOther)
		return
	}

	start := time.Now()
	err = web.api(r).CreateClub(r.Context(), form)
	web.observe("clubs.create", start, err)
	if err != nil {
		msg := eventify.Message(err, "Failed to create club")
		http.Redirect(w, r, "/clubs?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/clubs", http.StatusSeeOther)
}

// HandleClubEdit renders the club edit form. The API has no
// single-club endpoint, so the club comes out of the full list.
func (web *Web) HandleClubEdit(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	id := r.PathValue("id")

	start := time.Now()
	clubs, err := web.api(r).ListClubs(r.Context())
	web.observe("clubs.list", start, err)
	if err != nil {
		web.renderError(w, sess, "Failed to load club", err)
		return
	}

	var club *model.Club
	for i := range clubs {
		if clubs[i].ID == id {
			club = &clubs[i]
			break
		}
	}
	if club == nil {
		web.renderNotFound(w, sess, "Club not found")
		return
	}

	data := map[string]any{
		"Title":   "Edit Club - Eventify SEU",
		"Session": sess,
		"Club":    club,
		"Error":   r.URL.Query().Get("error"),
	}
	web.render(w, "clubs/edit", data)
}

// HandleClubUpdate updates an existing club.
func (web *Web) HandleClubUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	form, err := web.parseClubForm(r)
	if err != nil {
		http.Redirect(w, r, "/clubs/"+id+"/edit?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}

	if form.Name == "" {
		http.Redirect(w, r, "/clubs/"+id+"/edit?error=Name+is+required", http.StatusSeeOther)
		return
	}

	start := time.Now()
	err = web.api(r).UpdateClub(r.Context(), id, form)
	web.observe("clubs.update", start, err)
	if err != nil {
		msg := eventify.Message(err, "Failed to update club")
		http.Redirect(w, r, "/clubs/"+id+"/edit?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/clubs", http.StatusSeeOther)
}

// HandleClubDelete removes a club.
func (web *Web) HandleClubDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	start := time.Now()
	err := web.api(r).DeleteClub(r.Context(), id)
	web.observe("clubs.delete", start, err)
	if err != nil {
		msg := eventify.Message(err, "Failed to delete club")
		http.Redirect(w, r, "/clubs?error="+url.QueryEscape(msg), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/clubs", http.StatusSeeOther)
}

func (web *Web) parseClubForm(r *http.Request) (eventify.ClubForm, error) {
	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		return eventify.ClubForm{}, err
	}

	form := eventify.ClubForm{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		FBLink:      strings.TrimSpace(r.FormValue("fbLink")),
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return eventify.ClubForm{}, err
		}
		form.Image = data
		form.ImageName = header.Filename
	}

	return form, nil
}

// --- Helper Methods ---

func (web *Web) render(w http.ResponseWriter, template string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := renderTemplate(&buf, template, data); err != nil {
		web.logger.Error("template render failed", "template", template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (web *Web) renderError(w http.ResponseWriter, sess *model.Session, message string, err error) {
	web.logger.Error(message, "error", err)
	data := map[string]any{
		"Title":   "Error - Eventify SEU",
		"Session": sess,
		"Message": message,
		"Detail":  eventify.Message(err, ""),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)

	var buf bytes.Buffer
	if rerr := renderTemplate(&buf, "error", data); rerr != nil {
		web.logger.Error("template render failed", "template", "error", "error", rerr)
		return
	}
	buf.WriteTo(w)
}

func (web *Web) renderNotFound(w http.ResponseWriter, sess *model.Session, message string) {
	data := map[string]any{
		"Title":   "Not Found - Eventify SEU",
		"Session": sess,
		"Message": message,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)

	var buf bytes.Buffer
	if err := renderTemplate(&buf, "error", data); err != nil {
		web.logger.Error("template render failed", "template", "error", "error", err)
		return
	}
	buf.WriteTo(w)
}
