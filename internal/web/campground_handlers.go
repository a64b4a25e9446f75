package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/campshare/campshare/internal/auth"
	"github.com/campshare/campshare/internal/campground"
	"github.com/campshare/campshare/internal/comment"
	"github.com/campshare/campshare/internal/imagestore"
)

const maxUploadBytes = 32 << 20

type indexData struct {
	Campgrounds []*campground.Campground
	Identity    *auth.Identity
	Flash       *Flash
}

type showData struct {
	Campground *campground.Campground
	Comments   []*comment.Comment
	Identity   *auth.Identity
	Flash      *Flash
}

type formData struct {
	Campground *campground.Campground
	Identity   *auth.Identity
	Flash      *Flash
}

// handleIndex renders the campground list page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	campgrounds, err := s.campgrounds.List()
	if err != nil {
		// Log and render an empty list; the page must not crash.
		slog.Error("listing campgrounds", "err", err)
		campgrounds = nil
	}

	s.render(w, "index.html", indexData{
		Campgrounds: campgrounds,
		Identity:    s.identity(r),
		Flash:       popFlash(w, r),
	})
}

// handleNewForm renders the new campground form.
func (s *Server) handleNewForm(w http.ResponseWriter, r *http.Request) {
	identity := s.identity(r)
	if identity == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	s.render(w, "new.html", formData{Identity: identity, Flash: popFlash(w, r)})
}

// handleCreate creates a campground from a multipart form post.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	identity := s.identity(r)
	if identity == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		setFlash(w, "red", "An image file is required.")
		http.Redirect(w, r, "/campgrounds/new", http.StatusSeeOther)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("closing upload", "err", closeErr)
		}
	}()

	_, err = s.campgrounds.Create(identity, campground.Fields{
		Name:        r.FormValue("name"),
		Price:       r.FormValue("price"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
	}, campground.ImageUpload{
		Filename: header.Filename,
		Data:     file,
		Size:     header.Size,
	})
	if err != nil {
		s.campgroundError(w, r, err, "/campgrounds/new")
		return
	}

	setFlash(w, "green", "Campground added successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleShow renders a campground's detail page with its comments.
func (s *Server) handleShow(w http.ResponseWriter, r *http.Request, id int64) {
	c, err := s.campgrounds.Get(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	comments, err := s.comments.ListForCampground(id)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error loading comments: %v", err), http.StatusInternalServerError)
		return
	}

	s.render(w, "show.html", showData{
		Campground: c,
		Comments:   comments,
		Identity:   s.identity(r),
		Flash:      popFlash(w, r),
	})
}

// handleEditForm renders the edit form for the campground's owner.
func (s *Server) handleEditForm(w http.ResponseWriter, r *http.Request, id int64) {
	identity := s.identity(r)
	if identity == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	c, err := s.campgrounds.Get(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if !auth.CanModify(identity, c.Author.ID) {
		s.renderDenied(w, identity)
		return
	}

	s.render(w, "edit.html", formData{Campground: c, Identity: identity, Flash: popFlash(w, r)})
}

// handleUpdate overwrites a campground from a multipart form post.
// The image file is optional; omitting it keeps the current image.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request, id int64) {
	identity := s.identity(r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	var img *campground.ImageUpload
	file, header, err := r.FormFile("image")
	if err == nil {
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				slog.Warn("closing upload", "err", closeErr)
			}
		}()
		img = &campground.ImageUpload{
			Filename: header.Filename,
			Data:     file,
			Size:     header.Size,
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	_, err = s.campgrounds.Update(identity, id, campground.Fields{
		Name:        r.FormValue("name"),
		Price:       r.FormValue("price"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
	}, img)
	if err != nil {
		s.campgroundError(w, r, err, fmt.Sprintf("/campgrounds/%d/edit", id))
		return
	}

	setFlash(w, "green", "Campground updated successfully!")
	http.Redirect(w, r, fmt.Sprintf("/campgrounds/%d", id), http.StatusSeeOther)
}

// handleDelete removes a campground.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, id int64) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := s.campgrounds.Delete(s.identity(r), id); err != nil {
		s.campgroundError(w, r, err, "/")
		return
	}

	setFlash(w, "green", "Campground deleted successfully!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// campgroundError maps a workflow error onto the response. The two
// authorization failures are deliberately asymmetric: anonymous users
// are redirected to login, wrong owners get an inline denial.
func (s *Server) campgroundError(w http.ResponseWriter, r *http.Request, err error, backURL string) {
	switch {
	case errors.Is(err, auth.ErrAnonymous):
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case errors.Is(err, auth.ErrNotOwner):
		s.renderDenied(w, s.identity(r))
	case errors.Is(err, campground.ErrNotFound), errors.Is(err, comment.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, campground.ErrInvalidAddress):
		setFlash(w, "red", "Invalid Address. Please input correct location.")
		http.Redirect(w, r, backURL, http.StatusSeeOther)
	case errors.Is(err, imagestore.ErrNotImage):
		setFlash(w, "red", "Only image files (jpg, jpeg, png, gif) are allowed.")
		http.Redirect(w, r, backURL, http.StatusSeeOther)
	default:
		slog.Error("campground workflow", "err", err)
		setFlash(w, "red", "Something went wrong. Please try again.")
		http.Redirect(w, r, backURL, http.StatusSeeOther)
	}
}

// renderDenied renders the inline permission denial page.
func (s *Server) renderDenied(w http.ResponseWriter, identity *auth.Identity) {
	w.WriteHeader(http.StatusForbidden)
	s.render(w, "denied.html", formData{Identity: identity})
}
