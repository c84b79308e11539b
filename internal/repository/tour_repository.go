package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/tour-booking/internal/model"
)

// TourRepo provides read access to the tour catalog plus the single insert
// path used by the seeding routine. Tours are never updated or deleted, so
// no other write operations exist.
type TourRepo struct{ DB *sql.DB }

func NewTourRepo(db *sql.DB) *TourRepo { return &TourRepo{DB: db} }

// Create inserts a tour and returns it with the generated id. Only the
// seeding routine calls this.
func (r *TourRepo) Create(ctx context.Context, t model.Tour) (model.Tour, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO tours (name, description, price, duration, image) VALUES (?,?,?,?,?)",
		t.Name, t.Description, t.PriceCents, t.Duration, t.Image)
	if err != nil {
		return model.Tour{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Tour{}, err
	}
	t.ID = uint64(id)
	return t, nil
}

// ListAll returns the full catalog in storage order.
func (r *TourRepo) ListAll(ctx context.Context) ([]model.Tour, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,description,price,duration,image FROM tours ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tours := make([]model.Tour, 0)
	for rows.Next() {
		var t model.Tour
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.PriceCents, &t.Duration, &t.Image); err != nil {
			return nil, err
		}
		tours = append(tours, t)
	}
	return tours, rows.Err()
}

// GetByID fetches a single tour. Returns ErrNotFound when the id is unknown.
func (r *TourRepo) GetByID(ctx context.Context, id uint64) (model.Tour, error) {
	var t model.Tour
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,description,price,duration,image FROM tours WHERE id=? LIMIT 1",
		id).Scan(&t.ID, &t.Name, &t.Description, &t.PriceCents, &t.Duration, &t.Image)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Tour{}, ErrNotFound
	}
	return t, err
}
