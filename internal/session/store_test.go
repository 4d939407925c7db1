// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package session_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/acheiapp/achei/internal/model"
	"github.com/acheiapp/achei/internal/session"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
}

func sampleSession() model.Session {
	return model.Session{
		Token: "abc",
		User: model.User{
			ID:       1,
			Name:     "Maria Souza",
			Document: "111.444.777-35",
			Email:    "maria@example.com",
			Type:     model.UserCitizen,
		},
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save(sampleSession()); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected session, got nil")
	}
	if got.Token != "abc" || got.User.ID != 1 || got.User.Type != model.UserCitizen {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestStore_LoadMissingFileIsAnonymous(t *testing.T) {
	s := newTestStore(t)
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil session for missing file, got %+v", got)
	}
}

func TestStore_MalformedFileSelfHeals(t *testing.T) {
	cases := []string{
		"{not json at all",
		`"just a string"`,
		`{"token": ""}`,
		"",
	}
	for _, raw := range cases {
		s := newTestStore(t)
		if err := os.WriteFile(s.Path(), []byte(raw), 0o600); err != nil {
			t.Fatalf("seed file: %v", err)
		}

		got, err := s.Load()
		if err != nil {
			t.Fatalf("load(%q): unexpected error %v", raw, err)
		}
		if got != nil {
			t.Errorf("load(%q): expected anonymous, got %+v", raw, got)
		}
		// the broken file is gone; the next load starts clean
		if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
			t.Errorf("load(%q): malformed file was not removed", raw)
		}
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(sampleSession()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if got, _ := s.Load(); got != nil {
		t.Errorf("expected anonymous after clear, got %+v", got)
	}
}

func TestStore_FilePermissions(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(sampleSession()); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(s.Path())
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected 0600 session file, got %v", info.Mode().Perm())
	}
	data, _ := os.ReadFile(s.Path())
	if !strings.Contains(string(data), `"token"`) {
		t.Errorf("session file does not look like the composite document: %s", data)
	}
}
