package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eventifyseu/eventify-web/pkg/model"
)

const testToken = "tok_cli_test"

// startFakeAPI starts an HTTP server speaking the envelope protocol and
// returns its URL.
func startFakeAPI(t *testing.T) string {
	t.Helper()

	events := []model.Event{
		{ID: "ev1", Name: "Tech Talk", Description: "Compilers", Date: "2026-03-14T18:00:00Z",
			Club: model.Club{ID: "c1", Name: "CS Club"}},
		{ID: "ev2", Name: "Art Expo", Description: "Paintings", Date: "2026-02-01T10:00:00Z",
			Club: model.Club{ID: "c2", Name: "Art Society"}},
	}
	clubs := []model.Club{
		{ID: "c1", Name: "CS Club", Description: "Computer science"},
		{ID: "c2", Name: "Art Society", Description: "Visual arts"},
	}
	users := []model.User{
		{ID: "u1", Username: "maria", Email: "maria@seu.edu", Role: model.RoleAdmin},
		{ID: "u2", Username: "omar", Email: "omar@seu.edu", Role: model.RoleUser},
	}

	handler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/auth/login" && r.Method == http.MethodPost:
			var creds map[string]string
			json.NewDecoder(r.Body).Decode(&creds)
			if creds["email"] != "maria@seu.edu" || creds["password"] != "hunter2" {
				writeRejection(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			http.SetCookie(w, &http.Cookie{Name: "token", Value: testToken})
			writeEnvelope(w, users[0])
		case r.URL.Path == "/api/auth/me" && r.Method == http.MethodGet:
			ck, err := r.Cookie("token")
			if err != nil || ck.Value != testToken {
				writeRejection(w, http.StatusUnauthorized, "Not authenticated")
				return
			}
			writeEnvelope(w, users[0])
		case r.URL.Path == "/api/auth/logout" && r.Method == http.MethodPost:
			writeEnvelope(w, nil)
		case r.URL.Path == "/api/events" && r.Method == http.MethodGet:
			writeEnvelope(w, map[string]any{"events": events})
		case strings.HasPrefix(r.URL.Path, "/api/events/creator/") && r.Method == http.MethodGet:
			writeEnvelope(w, map[string]any{"events": events[:1]})
		case strings.HasPrefix(r.URL.Path, "/api/events/delete/") && r.Method == http.MethodDelete:
			writeEnvelope(w, nil)
		case r.URL.Path == "/api/clubs" && r.Method == http.MethodGet:
			writeEnvelope(w, map[string]any{"clubs": clubs})
		case r.URL.Path == "/api/users/" && r.Method == http.MethodGet:
			writeEnvelope(w, map[string]any{"users": users})
		case strings.HasSuffix(r.URL.Path, "/role") && r.Method == http.MethodPatch:
			writeEnvelope(w, nil)
		default:
			writeRejection(w, http.StatusNotFound, "Not found")
		}
	}

	ts := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(ts.Close)
	return ts.URL
}

func writeEnvelope(w http.ResponseWriter, data any) {
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func writeRejection(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}

// isolateHome points token storage at a throwaway directory.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("EVENTIFY_TOKEN", "")
	return home
}

func seedToken(t *testing.T, home string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(home, ".eventify_token"), []byte(testToken), 0600); err != nil {
		t.Fatalf("seed token: %v", err)
	}
}

// runCLI executes the root command with args, capturing stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()

	var errBuf bytes.Buffer
	root.SetOut(&errBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := root.Execute()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}

func TestLoginCommand(t *testing.T) {
	home := isolateHome(t)
	url := startFakeAPI(t)

	output, err := runCLI(t, "--server", url, "login", "--email", "maria@seu.edu", "--password", "hunter2")
	if err != nil {
		t.Fatalf("login error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "Signed in as maria (admin)") {
		t.Errorf("expected sign-in confirmation, got: %s", output)
	}

	data, err := os.ReadFile(filepath.Join(home, ".eventify_token"))
	if err != nil {
		t.Fatalf("read token file: %v", err)
	}
	if string(data) != testToken {
		t.Errorf("token file = %q, want %q", data, testToken)
	}
}

func TestLoginCommand_Rejected(t *testing.T) {
	home := isolateHome(t)
	url := startFakeAPI(t)

	_, err := runCLI(t, "--server", url, "login", "--email", "maria@seu.edu", "--password", "wrong")
	if err == nil {
		t.Fatal("expected error for bad credentials")
	}
	if !strings.Contains(err.Error(), "Invalid credentials") {
		t.Errorf("expected server message in error, got: %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(home, ".eventify_token")); !os.IsNotExist(statErr) {
		t.Error("expected no token file after rejected login")
	}
}

func TestWhoamiCommand(t *testing.T) {
	home := isolateHome(t)
	seedToken(t, home)
	url := startFakeAPI(t)

	output, err := runCLI(t, "--server", url, "whoami")
	if err != nil {
		t.Fatalf("whoami error: %v\noutput: %s", err, output)
	}
	if !strings.Contains(output, "maria <maria@seu.edu> role=admin") {
		t.Errorf("expected identity line, got: %s", output)
	}
}

func TestWhoamiCommand_NoToken(t *testing.T) {
	isolateHome(t)
	url := startFakeAPI(t)

	_, err := runCLI(t, "--server", url, "whoami")
	if err == nil {
		t.Fatal("expected error without a stored token")
	}
}

func TestLogoutCommand(t *testing.T) {
	home := isolateHome(t)
	seedToken(t, home)
	url := startFakeAPI(t)

	output, err := runCLI(t, "--server", url, "logout")
	if err != nil {
		t.Fatalf("logout error: %v", err)
	}
	if !strings.Contains(output, "Signed out.") {
		t.Errorf("expected sign-out confirmation, got: %s", output)
	}
	if _, statErr := os.Stat(filepath.Join(home, ".eventify_token")); !os.IsNotExist(statErr) {
		t.Error("expected token file removed after logout")
	}
}

func TestStatusCommand(t *testing.T) {
	home := isolateHome(t)
	seedToken(t, home)
	url := startFakeAPI(t)

	output, err := runCLI(t, "--server", url, "status")
	if err != nil {
		t.Fatalf("status error: %v", err)
	}
	if !strings.Contains(output, "authenticated as maria (admin)") {
		t.Errorf("expected authenticated status, got: %s", output)
	}
}

func TestStatusCommand_Anonymous(t *testing.T) {
	isolateHome(t)
	url := startFakeAPI(t)

	output, err := runCLI(t, "--server", url, "status")
	if err != nil {
		t.Fatalf("status error: %v", err)
	}
	if !strings.Contains(output, "anonymous") {
		t.Errorf("expected anonymous status, got: %s", output)
	}
}

func TestEventsListCommand(t *testing.T) {
	isolateHome(t)
	url := startFakeAPI(t)

	output, err := runCLI(t, "--server", url, "events", "list")
	if err != nil {
		t.Fatalf("events list error: %v", err)
	}
	if !strings.Contains(output, "ID") {
		t.Errorf("expected table header, got: %s", output)
	}
	if !strings.Contains(output, "Tech Talk") || !strings.Contains(output, "Art Expo") {
		t.Errorf("expected both events in output, got: %s", output)
	}
}

func TestEventsListCommand_Search(t *testing.T) {
	isolateHome(t)
	url := startFakeAPI(t)

	output, err := runCLI(t, "--server", url, "events", "list", "--search", "tech")
	if err != nil {
		t.Fatalf("events list error: %v", err)
	}
	if !strings.Contains(output, "Tech Talk") {
		t.Errorf("expected matching event, got: %s", output)
	}
	if strings.Contains(output, "Art Expo") {
		t.Errorf("expected non-matching event filtered out, got: %s", output)
	}
}

func TestEventsListCommand_ClubFilter(t *testing.T) {
	isolateHome(t)
	url := startFakeAPI(t)

	output, err := runCLI(t, "--server", url, "events", "list", "--club", "Art Society")
	if err != nil {
		t.Fatalf("events list error: %v", err)
	}
	if !strings.Contains(output, "Art Expo") {
		t.Errorf("expected club's event, got: %s", output)
	}
	if strings.Contains(output, "Tech Talk") {
		t.Errorf("expected other clubs filtered out, got: %s", output)
	}
}

func TestEventsMineCommand(t *testing.T) {
	home := isolateHome(t)
	seedToken(t, home)
	url := startFakeAPI(t)

	output, err := runCLI(t, "--server", url, "events", "mine")
	if err != nil {
		t.Fatalf("events mine error: %v", err)
	}
	if !strings.Contains(output, "Tech Talk") {
		t.Errorf("expected own event in output, got: %s", output)
	}
	if strings.Contains(output, "Art Expo") {
		t.Errorf("expected only own events, got: %s", output)
	}
}

func TestEventsDeleteCommand(t *testing.T) {
	home := isolateHome(t)
	seedToken(t, home)
	url := startFakeAPI(t)

	output, err := runCLI(t, "--server", url, "events", "delete", "ev1")
	if err != nil {
		t.Fatalf("events delete error: %v", err)
	}
	if !strings.Contains(output, "Event deleted: ev1") {
		t.Errorf("expected delete confirmation, got: %s", output)
	}
}

func TestClubsListCommand(t *testing.T) {
	isolateHome(t)
	url := startFakeAPI(t)

	output, err := runCLI(t, "--server", url, "clubs", "list")
	if err != nil {
		t.Fatalf("clubs list error: %v", err)
	}
	if !strings.Contains(output, "CS Club") || !strings.Contains(output, "Art Society") {
		t.Errorf("expected clubs in output, got: %s", output)
	}
}

func TestUsersListCommand(t *testing.T) {
	home := isolateHome(t)
	seedToken(t, home)
	url := startFakeAPI(t)

	output, err := runCLI(t, "--server", url, "users", "list")
	if err != nil {
		t.Fatalf("users list error: %v", err)
	}
	if !strings.Contains(output, "maria") || !strings.Contains(output, "omar") {
		t.Errorf("expected all users in output, got: %s", output)
	}
	if !strings.Contains(output, "admin") {
		t.Errorf("expected roles in output, got: %s", output)
	}
}

func TestUsersRoleCommand(t *testing.T) {
	home := isolateHome(t)
	seedToken(t, home)
	url := startFakeAPI(t)

	output, err := runCLI(t, "--server", url, "users", "role", "u2", "admin")
	if err != nil {
		t.Fatalf("users role error: %v", err)
	}
	if !strings.Contains(output, "u2 is now admin") {
		t.Errorf("expected role-change confirmation, got: %s", output)
	}
}

func TestUsersRoleCommand_InvalidRole(t *testing.T) {
	isolateHome(t)
	url := startFakeAPI(t)

	_, err := runCLI(t, "--server", url, "users", "role", "u2", "owner")
	if err == nil {
		t.Fatal("expected error for unknown role")
	}
	if !strings.Contains(err.Error(), "unknown role") {
		t.Errorf("expected role validation error, got: %v", err)
	}
}
