// Package campground provides the campground domain model, data
// access, and the create/update/delete workflow.
package campground

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a campground id does not exist.
var ErrNotFound = errors.New("campground not found")

// Author is the identity snapshot taken when a record is created.
// It is never re-synced to the user's current profile.
type Author struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Campground represents a listed campground.
type Campground struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	ImageURL    string    `json:"image_url"`
	ImageKey    string    `json:"image_key"`
	Author      Author    `json:"author"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// scanCampground scans a campground from a database row.
func scanCampground(row interface{ Scan(...interface{}) error }) (*Campground, error) {
	var c Campground
	err := row.Scan(
		&c.ID, &c.Name, &c.Price, &c.Description,
		&c.Location, &c.Lat, &c.Lng,
		&c.ImageURL, &c.ImageKey,
		&c.Author.ID, &c.Author.Username,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// isNoRows reports whether err is sql.ErrNoRows.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
