package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// handleCommentCreate attaches a comment to a campground.
func (s *Server) handleCommentCreate(w http.ResponseWriter, r *http.Request, campgroundID int64) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	text := strings.TrimSpace(r.FormValue("text"))
	if text == "" {
		http.Error(w, "Comment text is required", http.StatusBadRequest)
		return
	}

	if _, err := s.comments.Create(s.identity(r), campgroundID, text); err != nil {
		s.campgroundError(w, r, err, fmt.Sprintf("/campgrounds/%d", campgroundID))
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/campgrounds/%d", campgroundID), http.StatusSeeOther)
}

// handleCommentUpdate overwrites a comment's body. The campground id
// in the path only decides where to redirect afterwards; authorization
// runs against the comment's own author.
func (s *Server) handleCommentUpdate(w http.ResponseWriter, r *http.Request, campgroundID int64, commentIDStr string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	commentID, err := strconv.ParseInt(commentIDStr, 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	text := strings.TrimSpace(r.FormValue("text"))
	if text == "" {
		http.Error(w, "Comment text is required", http.StatusBadRequest)
		return
	}

	if err := s.comments.Update(s.identity(r), commentID, text); err != nil {
		s.campgroundError(w, r, err, fmt.Sprintf("/campgrounds/%d", campgroundID))
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/campgrounds/%d", campgroundID), http.StatusSeeOther)
}

// handleCommentDelete removes a comment. Same authorization scope as
// update.
func (s *Server) handleCommentDelete(w http.ResponseWriter, r *http.Request, campgroundID int64, commentIDStr string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	commentID, err := strconv.ParseInt(commentIDStr, 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := s.comments.Delete(s.identity(r), commentID); err != nil {
		s.campgroundError(w, r, err, fmt.Sprintf("/campgrounds/%d", campgroundID))
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/campgrounds/%d", campgroundID), http.StatusSeeOther)
}
