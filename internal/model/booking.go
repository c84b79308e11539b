package model

import "time"

// Booking records a user's booking of a specific tour. A booking is
// created exactly once per booking action and is never mutated or deleted.
// BookedAt is assigned by the database at insert time.
//
// Fields:
//  ID       – primary key identifier.
//  UserID   – user who made the booking (references users.id).
//  TourID   – tour being booked (references tours.id).
//  BookedAt – server-assigned creation timestamp.
type Booking struct {
	ID       uint64    // bookings.id
	UserID   uint64    // bookings.user_id
	TourID   uint64    // bookings.tour_id
	BookedAt time.Time // bookings.booked_at
}
