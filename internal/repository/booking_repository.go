package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/tour-booking/internal/model"
)

// BookingRepo persists bookings and reads them back joined with their tour.
// Bookings are append-only: no update or delete operations exist.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// BookingWithTour is a booking row joined with its tour record, the shape
// the booking-list endpoint returns.
type BookingWithTour struct {
	Booking model.Booking
	Tour    model.Tour
}

// Create inserts a booking for the given user and tour and returns the
// stored row, including the database-assigned booked_at timestamp. The
// caller is responsible for validating that both references exist; the
// authenticated-session contract guarantees the user, and handlers check
// the tour before calling.
func (r *BookingRepo) Create(ctx context.Context, userID, tourID uint64) (model.Booking, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (user_id, tour_id) VALUES (?,?)",
		userID, tourID)
	if err != nil {
		return model.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Booking{}, err
	}
	// Read the row back to pick up the booked_at default.
	var b model.Booking
	err = r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,tour_id,booked_at FROM bookings WHERE id=? LIMIT 1",
		uint64(id)).Scan(&b.ID, &b.UserID, &b.TourID, &b.BookedAt)
	return b, err
}

// ListByUser returns all bookings belonging to userID, each inner-joined
// with its tour. A booking whose tour vanished would not appear, which is
// acceptable because tours are never deleted.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingWithTour, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT b.id, b.user_id, b.tour_id, b.booked_at,
		       t.id, t.name, t.description, t.price, t.duration, t.image
		FROM bookings b
		INNER JOIN tours t ON t.id = b.tour_id
		WHERE b.user_id = ?
		ORDER BY b.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]BookingWithTour, 0)
	for rows.Next() {
		var bt BookingWithTour
		if err := rows.Scan(
			&bt.Booking.ID, &bt.Booking.UserID, &bt.Booking.TourID, &bt.Booking.BookedAt,
			&bt.Tour.ID, &bt.Tour.Name, &bt.Tour.Description, &bt.Tour.PriceCents,
			&bt.Tour.Duration, &bt.Tour.Image,
		); err != nil {
			return nil, err
		}
		out = append(out, bt)
	}
	return out, rows.Err()
}
