// ABOUTME: Tests for the cloud database client and session handling.
// ABOUTME: Uses httptest servers standing in for the REST and auth endpoints.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectBuildsFilterQuery(t *testing.T) {
	var gotPath, gotQuery, gotAuth, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("user_id")
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("apikey")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":"r1","name":"Push"}]`)
	}))
	defer server.Close()

	c := New(server.URL, "anon", "token-123")

	var rows []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	err := c.Select(context.Background(), "workouts", map[string]string{"user_id": "uid-1"}, &rows)
	require.NoError(t, err)

	if gotPath != "/rest/v1/workouts" {
		t.Errorf("Path = %q, want /rest/v1/workouts", gotPath)
	}
	if gotQuery != "eq.uid-1" {
		t.Errorf("Filter = %q, want eq.uid-1", gotQuery)
	}
	if gotAuth != "Bearer token-123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotKey != "anon" {
		t.Errorf("apikey = %q", gotKey)
	}
	require.Len(t, rows, 1)
	if rows[0].Name != "Push" {
		t.Errorf("Row = %+v", rows[0])
	}
}

func TestSelectAnonFallback(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, `[]`)
	}))
	defer server.Close()

	c := New(server.URL, "anon", "")
	var rows []struct{}
	require.NoError(t, c.Select(context.Background(), "workouts", nil, &rows))

	if gotAuth != "Bearer anon" {
		t.Errorf("Authorization = %q, want anon key bearer", gotAuth)
	}
}

func TestUpsertSendsMergePrefer(t *testing.T) {
	var gotPrefer string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrefer = r.Header.Get("Prefer")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := New(server.URL, "anon", "token")
	rows := []map[string]string{{"id": "r1"}}
	require.NoError(t, c.Upsert(context.Background(), "workouts", rows))

	if gotPrefer != "resolution=merge-duplicates,return=minimal" {
		t.Errorf("Prefer = %q", gotPrefer)
	}

	var sent []map[string]string
	require.NoError(t, json.Unmarshal(gotBody, &sent))
	require.Len(t, sent, 1)
}

func TestErrorStatusWrapsErrRemoteCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusForbidden)
	}))
	defer server.Close()

	c := New(server.URL, "anon", "token")

	var rows []struct{}
	err := c.Select(context.Background(), "workouts", nil, &rows)
	if !errors.Is(err, ErrRemoteCall) {
		t.Errorf("Expected ErrRemoteCall, got %v", err)
	}

	err = c.Upsert(context.Background(), "workouts", []struct{}{})
	if !errors.Is(err, ErrRemoteCall) {
		t.Errorf("Expected ErrRemoteCall, got %v", err)
	}
}

func TestSignIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" || r.URL.Query().Get("grant_type") != "password" {
			http.NotFound(w, r)
			return
		}
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["email"] != "a@b.com" || creds["password"] != "secret" {
			http.Error(w, "invalid login", http.StatusBadRequest)
			return
		}
		io.WriteString(w, `{"access_token":"at","refresh_token":"rt","user":{"id":"uid-1","email":"a@b.com"}}`)
	}))
	defer server.Close()

	c := New(server.URL, "anon", "")
	session, err := c.SignIn(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)

	if session.UserID != "uid-1" || session.AccessToken != "at" || session.RefreshToken != "rt" {
		t.Errorf("Session = %+v", session)
	}
	if session.Server != server.URL || session.AnonKey != "anon" {
		t.Errorf("Session endpoint fields wrong: %+v", session)
	}
	if session.DeviceID == "" {
		t.Error("Expected generated device ID")
	}
	if !session.IsConfigured() {
		t.Error("Signed-in session should be configured")
	}
}

func TestSignInBadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	c := New(server.URL, "anon", "")
	_, err := c.SignIn(context.Background(), "a@b.com", "wrong")
	if !errors.Is(err, ErrRemoteCall) {
		t.Errorf("Expected ErrRemoteCall, got %v", err)
	}
}

func TestCurrentUserNoToken(t *testing.T) {
	c := New("http://unused.invalid", "anon", "")

	u, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	if u != nil {
		t.Errorf("Expected nil user without token, got %+v", u)
	}
}

func TestCurrentUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, `{"id":"uid-1","email":"a@b.com"}`)
	}))
	defer server.Close()

	c := New(server.URL, "anon", "token")
	u, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	require.NotNil(t, u)
	if u.ID != "uid-1" {
		t.Errorf("User = %+v", u)
	}
}

func TestCurrentUserEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	}))
	defer server.Close()

	c := New(server.URL, "anon", "stale-token")
	u, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	if u != nil {
		t.Errorf("Anonymous response should yield nil user, got %+v", u)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	s := &Session{
		Server:      "https://sync.example.com",
		AnonKey:     "anon",
		UserID:      "uid-1",
		Email:       "a@b.com",
		AccessToken: "at",
		DeviceID:    GenerateDeviceID(),
	}
	require.NoError(t, SaveSession(s))

	loaded, err := LoadSession()
	require.NoError(t, err)
	if loaded.UserID != "uid-1" || loaded.AccessToken != "at" {
		t.Errorf("Loaded session = %+v", loaded)
	}
	if !loaded.IsConfigured() {
		t.Error("Loaded session should be configured")
	}

	require.NoError(t, ClearSession())

	cleared, err := LoadSession()
	require.NoError(t, err)
	if cleared.IsConfigured() {
		t.Error("Cleared session should not be configured")
	}

	// Clearing twice is fine.
	require.NoError(t, ClearSession())
}

func TestGenerateDeviceIDUnique(t *testing.T) {
	if GenerateDeviceID() == GenerateDeviceID() {
		t.Error("Device IDs should be unique")
	}
}
