package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/campshare/campshare/internal/auth"
)

type loginData struct {
	Error    string
	Identity *auth.Identity
	Flash    *Flash
}

// handleLogin renders the login form and processes submissions.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.render(w, "login.html", loginData{Flash: popFlash(w, r)})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := s.users.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.render(w, "login.html", loginData{Error: "Invalid username or password."})
			return
		}
		slog.Error("authenticating", "err", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	if err := s.sessions.Create(w, user); err != nil {
		slog.Error("creating session", "err", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("login success", "username", user.Username, "method", "password")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleRegister renders the registration form and creates accounts.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.render(w, "register.html", loginData{Flash: popFlash(w, r)})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := s.users.Create(username, password)
	if err != nil {
		s.render(w, "register.html", loginData{Error: err.Error()})
		return
	}

	if err := s.sessions.Create(w, user); err != nil {
		slog.Error("creating session", "err", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	setFlash(w, "green", "Welcome to CampShare, "+user.Username+"!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLogout destroys the session and redirects home.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Destroy(w, r); err != nil {
		slog.Error("destroying session", "err", err)
	}
	setFlash(w, "green", "Logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
