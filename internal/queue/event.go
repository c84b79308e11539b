// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully created.
// It contains enough information for downstream consumers to log, notify,
// or trigger analytics without querying the primary database.
type BookingCreatedEvent struct {
	BookingID  uint64 `json:"booking_id"`
	UserID     uint64 `json:"user_id"`
	TourID     uint64 `json:"tour_id"`
	TourName   string `json:"tour_name"`
	PriceCents int64  `json:"price_cents"`
	BookedAt   string `json:"booked_at"`
}
