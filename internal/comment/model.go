// Package comment provides the comment domain model, data access,
// and the comment workflow.
package comment

import (
	"errors"
	"time"

	"github.com/campshare/campshare/internal/campground"
)

// ErrNotFound is returned when a comment id does not exist.
var ErrNotFound = errors.New("comment not found")

// Comment represents a user note on a campground.
type Comment struct {
	ID           int64             `json:"id"`
	CampgroundID int64             `json:"campground_id"`
	Text         string            `json:"text"`
	Author       campground.Author `json:"author"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
