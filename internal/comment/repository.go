package comment

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/campshare/campshare/internal/campground"
)

// Repository provides CRUD operations for comments.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a comment repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `id, campground_id, text, author_id, author_username, created_at, updated_at`

// Insert creates a new comment on a campground.
func (r *Repository) Insert(campgroundID int64, text string, author campground.Author) (*Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("comment text is required")
	}

	result, err := r.db.Exec(
		"INSERT INTO comments (campground_id, text, author_id, author_username) VALUES (?, ?, ?, ?)",
		campgroundID, text, author.ID, author.Username,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting insert id: %w", err)
	}

	return r.GetByID(id)
}

// GetByID returns a comment by its ID.
func (r *Repository) GetByID(id int64) (*Comment, error) {
	query := fmt.Sprintf("SELECT %s FROM comments WHERE id = ?", selectColumns)

	c, err := scanComment(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying comment %d: %w", id, err)
	}

	return c, nil
}

// ListByCampgroundID returns all comments for a campground in
// insertion order (oldest first).
func (r *Repository) ListByCampgroundID(campgroundID int64) ([]*Comment, error) {
	query := fmt.Sprintf("SELECT %s FROM comments WHERE campground_id = ? ORDER BY id", selectColumns)

	rows, err := r.db.Query(query, campgroundID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	var comments []*Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating comments: %w", err)
	}

	return comments, nil
}

// UpdateText overwrites a comment's body.
func (r *Repository) UpdateText(id int64, text string) error {
	if text == "" {
		return fmt.Errorf("comment text is required")
	}

	result, err := r.db.Exec(
		"UPDATE comments SET text = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		text, id,
	)
	if err != nil {
		return fmt.Errorf("updating comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}

	return nil
}

// Delete removes a comment by ID.
func (r *Repository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}

	return nil
}

func scanComment(row interface{ Scan(...interface{}) error }) (*Comment, error) {
	var c Comment
	err := row.Scan(
		&c.ID, &c.CampgroundID, &c.Text,
		&c.Author.ID, &c.Author.Username,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
