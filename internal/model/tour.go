package model

// Tour represents a row in the `tours` table. Tours form the public
// catalog; they are inserted once by the seeding routine and treated as
// read-only afterwards. All columns are NOT NULL.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – display name of the tour.
//  Description – marketing description shown on the detail page.
//  PriceCents  – price in the smallest currency unit, never negative.
//  Duration    – free-text duration label (e.g. "3 days").
//  Image       – URI of the cover image.
type Tour struct {
	ID          uint64 // tours.id
	Name        string // tours.name
	Description string // tours.description
	PriceCents  int64  // tours.price
	Duration    string // tours.duration
	Image       string // tours.image
}
