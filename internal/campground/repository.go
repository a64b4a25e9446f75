package campground

import (
	"database/sql"
	"fmt"
)

// Repository provides CRUD operations for campgrounds.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a campground repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, name, price, description, location, lat, lng, image_url, image_key, author_id, author_username, created_at, updated_at`

const insertSQL = `INSERT INTO campgrounds
	(name, price, description, location, lat, lng, image_url, image_key, author_id, author_username)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Insert adds a new campground and returns it with its generated ID.
// The author columns are written once here and never updated.
func (r *Repository) Insert(c *Campground) (*Campground, error) {
	result, err := r.db.Exec(insertSQL,
		c.Name, c.Price, c.Description,
		c.Location, c.Lat, c.Lng,
		c.ImageURL, c.ImageKey,
		c.Author.ID, c.Author.Username,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting campground: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return r.GetByID(id)
}

// GetByID returns a campground by its ID.
func (r *Repository) GetByID(id int64) (*Campground, error) {
	query := fmt.Sprintf("SELECT %s FROM campgrounds WHERE id = ?", selectColumns)
	row := r.db.QueryRow(query, id)

	c, err := scanCampground(row)
	if isNoRows(err) {
		return nil, fmt.Errorf("campground %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying campground %d: %w", id, err)
	}

	return c, nil
}

// List returns all campgrounds in insertion order.
func (r *Repository) List() ([]*Campground, error) {
	query := fmt.Sprintf("SELECT %s FROM campgrounds ORDER BY id", selectColumns)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("listing campgrounds: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var campgrounds []*Campground
	for rows.Next() {
		c, err := scanCampground(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning campground: %w", err)
		}
		campgrounds = append(campgrounds, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating campgrounds: %w", err)
	}

	return campgrounds, nil
}

// Update overwrites the mutable fields of a campground. The author
// snapshot is deliberately left untouched.
func (r *Repository) Update(c *Campground) error {
	result, err := r.db.Exec(
		`UPDATE campgrounds SET
			name = ?, price = ?, description = ?,
			location = ?, lat = ?, lng = ?,
			image_url = ?, image_key = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		c.Name, c.Price, c.Description,
		c.Location, c.Lat, c.Lng,
		c.ImageURL, c.ImageKey,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating campground: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("campground %d: %w", c.ID, ErrNotFound)
	}

	return nil
}

// Delete removes a campground by ID. Comments cascade.
func (r *Repository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM campgrounds WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting campground: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("campground %d: %w", id, ErrNotFound)
	}

	return nil
}
