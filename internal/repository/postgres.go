package repository

import (
	"context"
	"fmt"

	"geopindrop/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the subset of pgxpool.Pool the repository uses. Satisfied by
// *pgxpool.Pool in production and by pgxmock in unit tests.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository implements pin persistence on PostgreSQL.
type Repository struct {
	db Database
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db Database) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the pins table if it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS pins (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		surname VARCHAR(255) NOT NULL,
		info TEXT,
		address VARCHAR(255) NOT NULL,
		city VARCHAR(255) NOT NULL,
		latitude VARCHAR(255) NOT NULL,
		longitude VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("repository: failed to create pins table: %w", err)
	}
	return nil
}

// Insert persists a new pin and returns the identifier assigned by the
// database. The id and created_at fields of the argument are ignored.
func (r *Repository) Insert(ctx context.Context, pin models.Pin) (int64, error) {
	sql := `
		INSERT INTO pins (name, surname, info, address, city, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, sql,
		pin.Name, pin.Surname, pin.Info, pin.Address, pin.City, pin.Latitude, pin.Longitude,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to insert pin: %w", err)
	}

	return id, nil
}

// Delete removes the pin with the given id and returns the number of rows
// removed. A missing id is not an error, it simply removes zero rows.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM pins WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to delete pin: %w", err)
	}

	return tag.RowsAffected(), nil
}

// List returns all pins, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Pin, error) {
	sql := `
		SELECT id, name, surname, COALESCE(info, ''), address, city, latitude, longitude, created_at
		FROM pins
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query pins: %w", err)
	}
	defer rows.Close()

	var pins []models.Pin
	for rows.Next() {
		var pin models.Pin
		err := rows.Scan(
			&pin.ID,
			&pin.Name,
			&pin.Surname,
			&pin.Info,
			&pin.Address,
			&pin.City,
			&pin.Latitude,
			&pin.Longitude,
			&pin.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan pin: %w", err)
		}
		pins = append(pins, pin)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return pins, nil
}
