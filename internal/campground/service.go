package campground

import (
	"errors"
	"fmt"
	"io"

	"github.com/campshare/campshare/internal/auth"
	"github.com/campshare/campshare/internal/geocode"
	"github.com/campshare/campshare/internal/imagestore"
)

// ErrInvalidAddress is returned when the geocoder has no match for
// the supplied location text.
var ErrInvalidAddress = errors.New("invalid address")

// Fields are the user-supplied campground attributes.
type Fields struct {
	Name        string
	Price       string
	Description string
	Location    string
}

// ImageUpload is an attached image file.
type ImageUpload struct {
	Filename string
	Data     io.Reader
	Size     int64
}

// Service runs the campground workflow: geocode, upload, persist.
type Service struct {
	repo     *Repository
	geocoder geocode.Geocoder
	images   imagestore.Store
}

// NewService creates a campground service.
func NewService(repo *Repository, geocoder geocode.Geocoder, images imagestore.Store) *Service {
	return &Service{repo: repo, geocoder: geocoder, images: images}
}

// List returns all campgrounds in insertion order.
func (s *Service) List() ([]*Campground, error) {
	return s.repo.List()
}

// Get returns one campground by ID. Any lookup failure surfaces as
// ErrNotFound to the caller.
func (s *Service) Get(id int64) (*Campground, error) {
	return s.repo.GetByID(id)
}

// Create geocodes the location, uploads the image, and persists a new
// campground with an author snapshot of the current identity.
// Failure at any step leaves no record behind: the write happens last.
func (s *Service) Create(identity *auth.Identity, fields Fields, img ImageUpload) (*Campground, error) {
	if identity == nil {
		return nil, auth.ErrAnonymous
	}

	// Reject bad filenames before consuming the geocoder or the upload.
	if !imagestore.AllowedImageFile(img.Filename) {
		return nil, imagestore.ErrNotImage
	}

	matches, err := s.geocoder.Geocode(fields.Location)
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", fields.Location, err)
	}
	if len(matches) == 0 {
		return nil, ErrInvalidAddress
	}

	stored, err := s.images.Upload(img.Filename, img.Data, img.Size)
	if err != nil {
		return nil, fmt.Errorf("uploading image: %w", err)
	}

	c := &Campground{
		Name:        fields.Name,
		Price:       fields.Price,
		Description: fields.Description,
		Location:    matches[0].FormattedAddress,
		Lat:         matches[0].Lat,
		Lng:         matches[0].Lng,
		ImageURL:    stored.URL,
		ImageKey:    stored.Key,
		Author:      Author{ID: identity.UserID, Username: identity.Username},
	}

	saved, err := s.repo.Insert(c)
	if err != nil {
		return nil, fmt.Errorf("saving campground: %w", err)
	}

	return saved, nil
}

// Update geocodes the new location, optionally replaces the image,
// and overwrites the mutable fields. img may be nil to keep the
// current image. Only the record's owner may update it.
func (s *Service) Update(identity *auth.Identity, id int64, fields Fields, img *ImageUpload) (*Campground, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if !auth.CanModify(identity, existing.Author.ID) {
		if identity == nil {
			return nil, auth.ErrAnonymous
		}
		return nil, auth.ErrNotOwner
	}

	matches, err := s.geocoder.Geocode(fields.Location)
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", fields.Location, err)
	}
	if len(matches) == 0 {
		return nil, ErrInvalidAddress
	}

	if img != nil {
		// Best effort: the old object is gone once Remove succeeds,
		// even if the upload after it fails.
		if existing.ImageKey != "" {
			if err := s.images.Remove(existing.ImageKey); err != nil {
				return nil, fmt.Errorf("removing old image: %w", err)
			}
		}

		stored, err := s.images.Upload(img.Filename, img.Data, img.Size)
		if err != nil {
			return nil, fmt.Errorf("uploading image: %w", err)
		}

		existing.ImageURL = stored.URL
		existing.ImageKey = stored.Key
	}

	existing.Name = fields.Name
	existing.Price = fields.Price
	existing.Description = fields.Description
	existing.Location = matches[0].FormattedAddress
	existing.Lat = matches[0].Lat
	existing.Lng = matches[0].Lng

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}

	return s.repo.GetByID(id)
}

// Delete removes a campground. The stored image is left in the object
// store. Only the record's owner may delete it.
func (s *Service) Delete(identity *auth.Identity, id int64) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	if !auth.CanModify(identity, existing.Author.ID) {
		if identity == nil {
			return auth.ErrAnonymous
		}
		return auth.ErrNotOwner
	}

	return s.repo.Delete(id)
}
