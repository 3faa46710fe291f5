package eventify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/eventifyseu/eventify-web/pkg/model"
)

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	config := DefaultConfig()
	config.BaseURL = serverURL
	config.RetryDelay = time.Millisecond
	return New(config, nil)
}

func TestClient_ListEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/api/events" {
			t.Errorf("expected /api/events, got %s", r.URL.Path)
		}
		if ck, err := r.Cookie(AuthCookieName); err != nil || ck.Value != "test-token" {
			t.Error("expected auth cookie to be replayed")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"events":[
			{"_id":"e1","name":"Tech Talk","description":"AI seminar","date":"2024-01-01","club":{"_id":"c1","name":"Science Club"}},
			{"_id":"e2","name":"Art Expo","description":"gallery night","date":"2024-06-01","club":{"_id":"c2","name":"Art Club"}}
		]}}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	client.SetToken("test-token")

	events, err := client.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Name != "Tech Talk" {
		t.Errorf("expected Tech Talk, got %s", events[0].Name)
	}
	if events[1].Club.Name != "Art Club" {
		t.Errorf("expected Art Club, got %s", events[1].Club.Name)
	}
}

func TestClient_ListEvents_MissingCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	events, err := client.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if events == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(events) != 0 {
		t.Errorf("expected 0 events, got %d", len(events))
	}
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("expected /api/auth/login, got %s", r.URL.Path)
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if body["email"] != "alice@seu.edu" || body["password"] != "secret" {
			t.Errorf("unexpected credentials: %v", body)
		}

		http.SetCookie(w, &http.Cookie{Name: AuthCookieName, Value: "jwt-abc", HttpOnly: true})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"_id":"u1","username":"alice","email":"alice@seu.edu","role":"admin"}}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	user, err := client.Login(context.Background(), "alice@seu.edu", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected alice, got %s", user.Username)
	}
	if user.Role != model.RoleAdmin {
		t.Errorf("expected admin role, got %s", user.Role)
	}
	if client.Token() != "jwt-abc" {
		t.Errorf("expected captured token jwt-abc, got %q", client.Token())
	}
}

func TestClient_Login_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Invalid credentials"}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	client.SetToken("previous-token")

	_, err := client.Login(context.Background(), "alice@seu.edu", "wrong")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsApplicationError(err) {
		t.Errorf("expected application error, got %v", err)
	}
	if got := Message(err, "fallback"); got != "Invalid credentials" {
		t.Errorf("expected server message, got %q", got)
	}
	// Failed login must not disturb the existing token.
	if client.Token() != "previous-token" {
		t.Errorf("token changed on failed login: %q", client.Token())
	}
}

func TestClient_Logout_AlwaysClearsToken(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr bool
	}{
		{
			name: "clean logout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success":true}`))
			},
			wantErr: false,
		},
		{
			name: "malformed response body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`this is not json`))
			},
			wantErr: true,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := testClient(t, server.URL)
			client.SetToken("some-token")

			err := client.Logout(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Logout() error = %v, wantErr %v", err, tt.wantErr)
			}
			if client.Token() != "" {
				t.Errorf("expected token cleared, got %q", client.Token())
			}
		})
	}
}

func TestClient_Me_NoToken(t *testing.T) {
	client := testClient(t, "http://unused.invalid")

	_, err := client.Me(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsTransportError(err) {
		t.Errorf("expected transport-class error, got %v", err)
	}
}

func TestClient_Retry(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"clubs":[{"_id":"c1","name":"Science Club"}]}}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	clubs, err := client.ListClubs(context.Background())
	if err != nil {
		t.Fatalf("expected success after retries, got error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if len(clubs) != 1 || clubs[0].Name != "Science Club" {
		t.Errorf("unexpected clubs: %v", clubs)
	}
}

func TestClient_MutationNotRetried(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	err := client.DeleteEvent(context.Background(), "e1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if attempts != 1 {
		t.Errorf("expected single attempt for mutation, got %d", attempts)
	}
}

func TestClient_NonEnvelopeResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	err := client.DeleteClub(context.Background(), "c1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !IsTransportError(err) {
		t.Errorf("expected transport error, got %v", err)
	}
	if IsApplicationError(err) {
		t.Error("non-envelope response must not classify as application error")
	}
}

func TestClient_CreateEvent_Multipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart form: %v", err)
		}

		if got := r.FormValue("name"); got != "Tech Talk" {
			t.Errorf("name = %q", got)
		}
		if got := r.FormValue("club"); got != "c1" {
			t.Errorf("club = %q", got)
		}
		if got := r.FormValue("createdBy"); got != "u1" {
			t.Errorf("createdBy = %q", got)
		}

		var buttons []model.Button
		if err := json.Unmarshal([]byte(r.FormValue("buttons")), &buttons); err != nil {
			t.Errorf("buttons not valid JSON: %v", err)
		}
		if len(buttons) != 1 || buttons[0].Label != "RSVP" {
			t.Errorf("unexpected buttons: %v", buttons)
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("expected image part: %v", err)
		}
		defer file.Close()
		if header.Filename != "poster.png" {
			t.Errorf("image filename = %q", header.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	err := client.CreateEvent(context.Background(), EventForm{
		Name:        "Tech Talk",
		Description: "AI seminar",
		Date:        "2024-01-01T18:00",
		ClubID:      "c1",
		CreatedBy:   "u1",
		Buttons:     []model.Button{{Label: "RSVP", URL: "https://example.com"}},
		Image:       []byte("png-bytes"),
		ImageName:   "poster.png",
	})
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}
}

func TestClient_UpdateClub_Multipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/api/clubs/update/c1" {
			t.Errorf("expected /api/clubs/update/c1, got %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("expected multipart form: %v", err)
		}

		if got := r.FormValue("name"); got != "Chess Society" {
			t.Errorf("name = %q", got)
		}
		if got := r.FormValue("fbLink"); got != "https://fb.example/chess" {
			t.Errorf("fbLink = %q", got)
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("expected image part: %v", err)
		}
		defer file.Close()
		if header.Filename != "logo.png" {
			t.Errorf("image filename = %q", header.Filename)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	err := client.UpdateClub(context.Background(), "c1", ClubForm{
		Name:        "Chess Society",
		Description: "Now with rapid",
		FBLink:      "https://fb.example/chess",
		Image:       []byte("png-bytes"),
		ImageName:   "logo.png",
	})
	if err != nil {
		t.Fatalf("UpdateClub() error = %v", err)
	}
}

func TestClient_UpdateUserRole(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/api/users/u1/role" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["userId"] != "u1" || body["role"] != "admin" {
			t.Errorf("unexpected body: %v", body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL)

	if err := client.UpdateUserRole(context.Background(), "u1", model.RoleAdmin); err != nil {
		t.Fatalf("UpdateUserRole() error = %v", err)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{
			name:     "application rejection with message",
			err:      newRejection("events.create", 400, "Date must be in the future"),
			fallback: "something went wrong",
			want:     "Date must be in the future",
		},
		{
			name:     "transport error falls back",
			err:      wrapError("events.list", context.DeadlineExceeded),
			fallback: "something went wrong",
			want:     "something went wrong",
		},
		{
			name:     "plain error falls back",
			err:      os.ErrClosed,
			fallback: "something went wrong",
			want:     "something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err, tt.fallback); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_With(t *testing.T) {
	config := DefaultConfig()

	config2 := config.WithToken("my-token")
	if config2.Token != "my-token" {
		t.Errorf("WithToken did not set token")
	}
	if config.Token != "" {
		t.Error("WithToken modified original config")
	}

	config3 := config.WithTimeout(time.Minute)
	if config3.Timeout != time.Minute {
		t.Errorf("WithTimeout did not set timeout")
	}

	config4 := config.WithRetries(5, 2*time.Second)
	if config4.MaxRetries != 5 || config4.RetryDelay != 2*time.Second {
		t.Errorf("WithRetries did not set retry settings")
	}
}

func TestLoadToken(t *testing.T) {
	t.Run("env takes precedence", func(t *testing.T) {
		t.Setenv("EVENTIFY_TOKEN", "env-token")
		t.Setenv("HOME", t.TempDir())

		token, err := LoadToken()
		if err != nil {
			t.Fatalf("LoadToken() error = %v", err)
		}
		if token != "env-token" {
			t.Errorf("expected env-token, got %q", token)
		}
	})

	t.Run("file fallback", func(t *testing.T) {
		t.Setenv("EVENTIFY_TOKEN", "")
		home := t.TempDir()
		t.Setenv("HOME", home)

		if err := os.WriteFile(home+"/"+tokenFileName, []byte("file-token\n"), 0600); err != nil {
			t.Fatal(err)
		}

		token, err := LoadToken()
		if err != nil {
			t.Fatalf("LoadToken() error = %v", err)
		}
		if token != "file-token" {
			t.Errorf("expected file-token, got %q", token)
		}
	})

	t.Run("no token anywhere", func(t *testing.T) {
		t.Setenv("EVENTIFY_TOKEN", "")
		t.Setenv("HOME", t.TempDir())

		if _, err := LoadToken(); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
