package handler

import (
	"context"
	"time"

	"github.com/iliyamo/tour-booking/internal/model"
	"github.com/iliyamo/tour-booking/internal/repository"
)

// The handler package declares the narrow store interfaces it consumes so
// tests can substitute in-memory implementations. The repository types
// satisfy them.

// UserStore is the user slice of the persistence gateway.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// SessionStore covers session creation and teardown; resolution lives in
// the session middleware.
type SessionStore interface {
	Create(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error
	Delete(ctx context.Context, tokenHash string) error
}

// TourStore is the read-only catalog surface.
type TourStore interface {
	ListAll(ctx context.Context) ([]model.Tour, error)
	GetByID(ctx context.Context, id uint64) (model.Tour, error)
}

// BookingStore creates bookings and lists them joined with their tour.
type BookingStore interface {
	Create(ctx context.Context, userID, tourID uint64) (model.Booking, error)
	ListByUser(ctx context.Context, userID uint64) ([]repository.BookingWithTour, error)
}
