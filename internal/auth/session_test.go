package auth

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/campshare/campshare/internal/db"
)

func testSessionStore(t *testing.T) (*SessionStore, *User) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	d, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if err := d.Close(); err != nil {
			t.Errorf("close db: %v", err)
		}
	})

	users := NewUserStore(d)
	u, err := users.Create("alice", "hunter2")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	return NewSessionStore(d), u
}

func sessionRequest(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}
	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(cookies[0])
	return r
}

func TestCreateAndValidate(t *testing.T) {
	store, user := testSessionStore(t)

	w := httptest.NewRecorder()
	if err := store.Create(w, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	identity, err := store.Validate(sessionRequest(t, w))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if identity.UserID != user.ID {
		t.Errorf("user id = %d, want %d", identity.UserID, user.ID)
	}
	if identity.Username != "alice" {
		t.Errorf("username = %q, want %q", identity.Username, "alice")
	}
}

func TestValidateNoCookie(t *testing.T) {
	store, _ := testSessionStore(t)

	r := httptest.NewRequest("GET", "/", nil)
	if _, err := store.Validate(r); err == nil {
		t.Error("expected error for missing cookie")
	}
}

func TestValidateUnknownSession(t *testing.T) {
	store, _ := testSessionStore(t)

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{Name: cookieName, Value: "bogus"})
	if _, err := store.Validate(r); err == nil {
		t.Error("expected error for unknown session")
	}
}

func TestDestroy(t *testing.T) {
	store, user := testSessionStore(t)

	w := httptest.NewRecorder()
	if err := store.Create(w, user); err != nil {
		t.Fatalf("create: %v", err)
	}
	r := sessionRequest(t, w)

	w2 := httptest.NewRecorder()
	if err := store.Destroy(w2, r); err != nil {
		t.Fatalf("destroy: %v", err)
	}

	if _, err := store.Validate(r); err == nil {
		t.Error("expected error after destroy")
	}
}

func TestCleanup(t *testing.T) {
	store, user := testSessionStore(t)

	w := httptest.NewRecorder()
	if err := store.Create(w, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Force the session into the past, then clean up.
	cookie := w.Result().Cookies()[0]
	if _, err := store.db.Exec(
		"UPDATE sessions SET expires_at = ? WHERE id = ?",
		time.Now().Add(-time.Hour), cookie.Value,
	); err != nil {
		t.Fatalf("expire session: %v", err)
	}

	if err := store.Cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	if _, err := store.Validate(sessionRequest(t, w)); err == nil {
		t.Error("expected error after cleanup")
	}
}
