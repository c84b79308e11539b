package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tour-booking/internal/middleware"
	"github.com/iliyamo/tour-booking/internal/model"
	"github.com/iliyamo/tour-booking/internal/queue"
	"github.com/iliyamo/tour-booking/internal/repository"
)

// BookingHandler serves the authenticated booking endpoints. Both routes
// sit behind the RequireAuth middleware, so an identity is always present
// when they run.
//
// Publish, when non-nil, is called after a successful booking with the
// created event; failures are the publisher's problem and never fail the
// request. main wires it to the RabbitMQ publisher.
type BookingHandler struct {
	Tours    TourStore
	Bookings BookingStore
	Publish  func(ctx context.Context, ev queue.BookingCreatedEvent) error
}

func NewBookingHandler(t TourStore, b BookingStore) *BookingHandler {
	return &BookingHandler{Tours: t, Bookings: b}
}

type createBookingReq struct {
	TourID uint64 `json:"tourId"`
}

type bookingResp struct {
	ID       uint64    `json:"id"`
	UserID   uint64    `json:"userId"`
	TourID   uint64    `json:"tourId"`
	BookedAt time.Time `json:"bookedAt"`
}

type bookingWithTourResp struct {
	bookingResp
	Tour tourResp `json:"tour"`
}

func toBookingResp(b model.Booking) bookingResp {
	return bookingResp{ID: b.ID, UserID: b.UserID, TourID: b.TourID, BookedAt: b.BookedAt}
}

// Create books a tour for the authenticated user. The tour is validated
// first and a missing tour is a 404. The existence check and the insert
// are not wrapped in one transaction; tours are never deleted, so the
// check cannot go stale between the two statements.
func (h *BookingHandler) Create(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req createBookingReq
	if err := c.Bind(&req); err != nil || req.TourID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tourId required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tour, err := h.Tours.GetByID(ctx, req.TourID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tour not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	b, err := h.Bookings.Create(ctx, uid, tour.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	if h.Publish != nil {
		ev := queue.BookingCreatedEvent{
			BookingID:  b.ID,
			UserID:     b.UserID,
			TourID:     tour.ID,
			TourName:   tour.Name,
			PriceCents: tour.PriceCents,
			BookedAt:   b.BookedAt.UTC().Format(time.RFC3339),
		}
		go func() {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer pubCancel()
			_ = h.Publish(pubCtx, ev) // best effort, publisher logs its own errors
		}()
	}

	return c.JSON(http.StatusCreated, toBookingResp(b))
}

// List returns the authenticated user's bookings, each joined with its tour.
func (h *BookingHandler) List(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Bookings.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]bookingWithTourResp, 0, len(items))
	for _, it := range items {
		out = append(out, bookingWithTourResp{
			bookingResp: toBookingResp(it.Booking),
			Tour:        toTourResp(it.Tour),
		})
	}
	return c.JSON(http.StatusOK, out)
}
