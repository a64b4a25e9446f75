// Package web provides the HTTP server and handlers for campshare.
package web

import (
	"database/sql"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"github.com/campshare/campshare/internal/auth"
	"github.com/campshare/campshare/internal/campground"
	"github.com/campshare/campshare/internal/comment"
	"github.com/campshare/campshare/internal/geocode"
	"github.com/campshare/campshare/internal/imagestore"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server is the campshare HTTP server.
type Server struct {
	campgrounds *campground.Service
	comments    *comment.Service
	users       *auth.UserStore
	sessions    *auth.SessionStore
	passkeys    *auth.PasskeyStore
	pkHandlers  *passkeyHandlers
	templates   *template.Template
	mux         *http.ServeMux
}

// NewServer creates a web server over the given database and
// external collaborators.
func NewServer(db *sql.DB, geocoder geocode.Geocoder, images imagestore.Store, baseURL string) (*Server, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	campRepo := campground.NewRepository(db)
	s := &Server{
		campgrounds: campground.NewService(campRepo, geocoder, images),
		comments:    comment.NewService(comment.NewRepository(db), campRepo),
		users:       auth.NewUserStore(db),
		sessions:    auth.NewSessionStore(db),
		passkeys:    auth.NewPasskeyStore(db),
		templates:   tmpl,
		mux:         http.NewServeMux(),
	}

	pk, err := newPasskeyHandlers(baseURL, s.passkeys, s.sessions, s.users)
	if err != nil {
		return nil, fmt.Errorf("configuring passkeys: %w", err)
	}
	s.pkHandlers = pk

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/campgrounds", s.handleCreate)
	s.mux.HandleFunc("/campgrounds/new", s.handleNewForm)
	s.mux.HandleFunc("/campgrounds/", s.handleCampgroundRoute)
	s.mux.HandleFunc("/login", s.handleLogin)
	s.mux.HandleFunc("/register", s.handleRegister)
	s.mux.HandleFunc("/logout", s.handleLogout)
	s.mux.HandleFunc("/passkey/register/begin", pk.handleBeginRegistration)
	s.mux.HandleFunc("/passkey/register/finish", pk.handleFinishRegistration)
	s.mux.HandleFunc("/passkey/login/begin", pk.handleBeginLogin)
	s.mux.HandleFunc("/passkey/login/finish", pk.handleFinishLogin)

	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}

// handleCampgroundRoute routes /campgrounds/{id}/* requests.
func (s *Server) handleCampgroundRoute(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/campgrounds/")
	parts := strings.Split(rest, "/")

	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	switch {
	case len(parts) == 1:
		if r.Method == http.MethodPost {
			s.handleUpdate(w, r, id)
			return
		}
		s.handleShow(w, r, id)
	case len(parts) == 2 && parts[1] == "edit":
		s.handleEditForm(w, r, id)
	case len(parts) == 2 && parts[1] == "delete":
		s.handleDelete(w, r, id)
	case len(parts) == 2 && parts[1] == "comments":
		s.handleCommentCreate(w, r, id)
	case len(parts) == 3 && parts[1] == "comments":
		s.handleCommentUpdate(w, r, id, parts[2])
	case len(parts) == 4 && parts[1] == "comments" && parts[3] == "delete":
		s.handleCommentDelete(w, r, id, parts[2])
	default:
		http.NotFound(w, r)
	}
}

// identity resolves the request's session into an Identity.
// Anonymous requests yield nil.
func (s *Server) identity(r *http.Request) *auth.Identity {
	identity, err := s.sessions.Validate(r)
	if err != nil {
		return nil
	}
	return identity
}

// render executes a full page template.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
	}
}
