package auth

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/campshare/campshare/internal/db"
)

func testUserStore(t *testing.T) *UserStore {
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
	return NewUserStore(d)
}

func TestCreateAndAuthenticate(t *testing.T) {
	store := testUserStore(t)

	u, err := store.Create("alice", "hunter2")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if u.Username != "alice" {
		t.Errorf("username = %q, want %q", u.Username, "alice")
	}

	got, err := store.Authenticate("alice", "hunter2")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("id = %d, want %d", got.ID, u.ID)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	store := testUserStore(t)

	if _, err := store.Create("alice", "hunter2"); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := store.Authenticate("alice", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	store := testUserStore(t)

	_, err := store.Authenticate("nobody", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestCreateDuplicateUsername(t *testing.T) {
	store := testUserStore(t)

	if _, err := store.Create("alice", "hunter2"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.Create("alice", "other"); err == nil {
		t.Error("expected error for duplicate username")
	}
}

func TestCreateRequiresFields(t *testing.T) {
	store := testUserStore(t)

	if _, err := store.Create("", "pw"); err == nil {
		t.Error("expected error for empty username")
	}
	if _, err := store.Create("bob", ""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestAllUsernames(t *testing.T) {
	store := testUserStore(t)

	for _, name := range []string{"alice", "bob"} {
		if _, err := store.Create(name, "pw"); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	usernames, err := store.AllUsernames()
	if err != nil {
		t.Fatalf("all usernames: %v", err)
	}
	if len(usernames) != 2 {
		t.Errorf("got %d usernames, want 2", len(usernames))
	}
}
