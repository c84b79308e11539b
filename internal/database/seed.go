package database

import (
	"context"
	"log"

	"github.com/iliyamo/tour-booking/internal/model"
)

// TourCatalog is the slice of the tour repository the seeder needs. It is
// satisfied by *repository.TourRepo.
type TourCatalog interface {
	ListAll(ctx context.Context) ([]model.Tour, error)
	Create(ctx context.Context, t model.Tour) (model.Tour, error)
}

// seedTours is the initial catalog, inserted once when the tours table is
// empty. Prices are whole currency units carried over from the original
// catalog data.
var seedTours = []model.Tour{
	{
		Name:        "Grand Canyon Expedition",
		Description: "Explore the depths of the Grand Canyon with our expert guides. 3 days of hiking and camping.",
		PriceCents:  499,
		Duration:    "3 days",
		Image:       "https://images.unsplash.com/photo-1542332213-9b5a5a3fad35?auto=format&fit=crop&q=80&w=1000",
	},
	{
		Name:        "Kyoto Cherry Blossom Tour",
		Description: "Experience the magic of cherry blossom season in Kyoto, Japan. Visit ancient temples and gardens.",
		PriceCents:  1200,
		Duration:    "5 days",
		Image:       "https://images.unsplash.com/photo-1493976040374-85c8e12f0c0e?auto=format&fit=crop&q=80&w=1000",
	},
	{
		Name:        "Safari in Serengeti",
		Description: "Witness the great migration and see the big five in their natural habitat in Tanzania.",
		PriceCents:  2500,
		Duration:    "7 days",
		Image:       "https://images.unsplash.com/photo-1516426122078-c23e76319801?auto=format&fit=crop&q=80&w=1000",
	},
	{
		Name:        "Paris City Break",
		Description: "Romantic getaway to the city of lights. Includes Eiffel Tower dinner and Louvre tour.",
		PriceCents:  899,
		Duration:    "4 days",
		Image:       "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?auto=format&fit=crop&q=80&w=1000",
	},
}

// SeedTours inserts the initial catalog when the tours table is empty and
// is a no-op otherwise, so re-running the server never duplicates tours.
func SeedTours(ctx context.Context, catalog TourCatalog) error {
	existing, err := catalog.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	log.Printf("seeding %d tours", len(seedTours))
	for _, t := range seedTours {
		if _, err := catalog.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
