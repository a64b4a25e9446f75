package comment

import (
	"github.com/campshare/campshare/internal/auth"
	"github.com/campshare/campshare/internal/campground"
)

// Service runs the comment workflow against a parent campground.
type Service struct {
	repo        *Repository
	campgrounds *campground.Repository
}

// NewService creates a comment service.
func NewService(repo *Repository, campgrounds *campground.Repository) *Service {
	return &Service{repo: repo, campgrounds: campgrounds}
}

// ListForCampground returns a campground's comments in insertion order.
func (s *Service) ListForCampground(campgroundID int64) ([]*Comment, error) {
	return s.repo.ListByCampgroundID(campgroundID)
}

// Create attaches a new comment to the parent campground. The parent
// must exist; the comment joins the tail of its comment sequence.
func (s *Service) Create(identity *auth.Identity, campgroundID int64, text string) (*Comment, error) {
	if identity == nil {
		return nil, auth.ErrAnonymous
	}

	if _, err := s.campgrounds.GetByID(campgroundID); err != nil {
		return nil, err
	}

	return s.repo.Insert(campgroundID, text, campground.Author{
		ID:       identity.UserID,
		Username: identity.Username,
	})
}

// Update overwrites a comment's body. Authorization is checked
// against the comment's own author, looked up by comment id.
func (s *Service) Update(identity *auth.Identity, commentID int64, text string) error {
	existing, err := s.repo.GetByID(commentID)
	if err != nil {
		return err
	}

	if !auth.CanModify(identity, existing.Author.ID) {
		if identity == nil {
			return auth.ErrAnonymous
		}
		return auth.ErrNotOwner
	}

	return s.repo.UpdateText(commentID, text)
}

// Delete removes a comment. Same authorization scope as Update.
func (s *Service) Delete(identity *auth.Identity, commentID int64) error {
	existing, err := s.repo.GetByID(commentID)
	if err != nil {
		return err
	}

	if !auth.CanModify(identity, existing.Author.ID) {
		if identity == nil {
			return auth.ErrAnonymous
		}
		return auth.ErrNotOwner
	}

	return s.repo.Delete(commentID)
}
