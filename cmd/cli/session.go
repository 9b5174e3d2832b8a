package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// session is the signed-in account persisted between invocations.
type session struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
}

var errNoSession = errors.New("not signed in")

func sessionPath(dir string) string { return filepath.Join(dir, "session.json") }

func guestDBPath(dir string) string { return filepath.Join(dir, "guest.db") }

func saveSession(dir string, s session) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(sessionPath(dir), b, 0o600)
}

// loadSession returns errNoSession when there is no unexpired session.
func loadSession(dir string, now time.Time) (session, error) {
	b, err := os.ReadFile(sessionPath(dir))
	if errors.Is(err, os.ErrNotExist) {
		return session{}, errNoSession
	}
	if err != nil {
		return session{}, err
	}
	var s session
	if err := json.Unmarshal(b, &s); err != nil {
		return session{}, err
	}
	if s.AccessToken == "" || s.UserID == "" || !now.Before(s.ExpiresAt) {
		return session{}, errNoSession
	}
	return s, nil
}

func clearSession(dir string) error {
	err := os.Remove(sessionPath(dir))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
