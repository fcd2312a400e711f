// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package auth_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/mdhender/xtab/web/auth"
)

func TestSessionLifecycle(t *testing.T) {
	sessions := auth.NewSessionStore()

	session := sessions.Create(auth.User{Handle: "operator"})
	if session.ID == "" {
		t.Fatal("want non-empty session id")
	}
	if session.User.Handle != "operator" {
		t.Errorf("handle: want %q, got %q", "operator", session.User.Handle)
	}

	got := sessions.Get(session.ID)
	if got == nil {
		t.Fatal("get: want session, got nil")
	}
	if got.ID != session.ID {
		t.Errorf("id: want %q, got %q", session.ID, got.ID)
	}

	if sessions.Get("no-such-session") != nil {
		t.Error("get unknown id: want nil")
	}

	sessions.Delete(session.ID)
	if sessions.Get(session.ID) != nil {
		t.Error("get after delete: want nil")
	}
}

func TestExpiredSession(t *testing.T) {
	sessions := auth.NewSessionStore()
	session := sessions.Create(auth.User{Handle: "operator"})
	session.ExpiresAt = time.Now().Add(-time.Minute)

	if sessions.Get(session.ID) != nil {
		t.Error("get expired session: want nil")
	}
}

func TestGetSessionFromRequest(t *testing.T) {
	sessions := auth.NewSessionStore()
	session := sessions.Create(auth.User{Handle: "operator"})

	r, _ := http.NewRequest(http.MethodGet, "/api/resources", nil)
	if auth.GetSessionFromRequest(r, sessions) != nil {
		t.Error("no cookie: want nil")
	}

	r.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: session.ID})
	got := auth.GetSessionFromRequest(r, sessions)
	if got == nil || got.ID != session.ID {
		t.Errorf("with cookie: want session %q, got %+v", session.ID, got)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash must not equal the password")
	}
	if !auth.CheckPassword("hunter2", hash) {
		t.Error("check: want success with correct password")
	}
	if auth.CheckPassword("wrong", hash) {
		t.Error("check: want failure with wrong password")
	}
}
