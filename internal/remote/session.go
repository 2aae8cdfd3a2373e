// ABOUTME: Cloud session persistence and the authenticated-user check.
// ABOUTME: Session lives in a JSON file under the XDG config directory.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
)

// User identifies the authenticated cloud account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session stores cloud credentials between runs.
type Session struct {
	Server       string `json:"server"`
	AnonKey      string `json:"anon_key"`
	UserID       string `json:"user_id"`
	Email        string `json:"email,omitempty"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	DeviceID     string `json:"device_id"`
}

// SessionPath returns the session file path under XDG config.
func SessionPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ferro", "session.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ferro", "session.json")
}

// LoadSession reads the session file. A missing file yields an empty
// session, not an error.
func LoadSession() (*Session, error) {
	data, err := os.ReadFile(SessionPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Session{}, nil
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSession persists the session file with owner-only permissions.
func SaveSession(s *Session) error {
	path := SessionPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// ClearSession removes the session file; absent is fine.
func ClearSession() error {
	path := SessionPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path)
}

// IsConfigured reports whether the session can authenticate calls.
func (s *Session) IsConfigured() bool {
	return s.Server != "" && s.AccessToken != "" && s.UserID != ""
}

// GenerateDeviceID creates a new unique device ID.
func GenerateDeviceID() string {
	return ulid.Make().String()
}

// SignIn authenticates with email and password and returns a filled
// session (server, tokens, user id).
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/auth/v1/token?grant_type=password"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		User         User   `json:"user"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("sign in: decode response: %w", err)
	}

	return &Session{
		Server:       c.baseURL,
		AnonKey:      c.anonKey,
		UserID:       resp.User.ID,
		Email:        resp.User.Email,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		DeviceID:     GenerateDeviceID(),
	}, nil
}

// CurrentUser validates the bearer token against the auth endpoint and
// returns the account. A client with no token returns nil, nil: not an
// error, just no session.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	if c.token == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}

	var u User
	if err := json.Unmarshal(body, &u); err != nil {
		return nil, fmt.Errorf("current user: decode response: %w", err)
	}
	if u.ID == "" {
		return nil, nil
	}
	return &u, nil
}
