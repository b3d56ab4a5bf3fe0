package store

import (
	"time"

	"cardhaven-backend/models"
)

// seedProducts membangun katalog default yang dipasang saat startup.
// Timestamp dibuat berjenjang agar urutan terbaru-lebih-dulu deterministik.
func seedProducts() []models.Product {
	now := time.Now()
	return []models.Product{
		{
			ID:          "seed-pro-toolkit",
			Title:       "Pro Seller Toolkit",
			Description: "Lifetime license for the full seller automation suite. Instant delivery, free updates included.",
			Price:       "$49.99",
			Image:       "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?w=800",
			Tags:        []string{"Bestseller", "Lifetime", "Instant"},
			Rating:      5,
			Reviews:     124,
			Featured:    true,
			Type:        "software",
			Category:    "General",
			JoinLink:    "#",
			CreatedAt:   now,
		},
		{
			ID:          "seed-vip-community",
			Title:       "VIP Resellers Community",
			Description: "Private community with daily drops, restock alerts and direct supplier contacts.",
			Price:       "$89.99",
			Image:       "https://images.unsplash.com/photo-1552664730-d307ca884978?w=800",
			Tags:        []string{"VIP", "Private", "Top Tier"},
			Rating:      5,
			Reviews:     89,
			Featured:    true,
			Type:        "community",
			Category:    "General",
			JoinLink:    "#",
			CreatedAt:   now.Add(-1 * time.Minute),
		},
		{
			ID:          "seed-starter-course",
			Title:       "Storefront Starter Course",
			Description: "Step-by-step video course covering listings, pricing and fulfilment from zero.",
			Price:       "$19.99",
			Image:       "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=800",
			Tags:        []string{"Beginner", "Video", "Certificate"},
			Rating:      4,
			Reviews:     256,
			Featured:    false,
			Type:        "course",
			Category:    "General",
			JoinLink:    "#",
			CreatedAt:   now.Add(-2 * time.Minute),
		},
		{
			ID:          "seed-bulk-pack",
			Title:       "Bulk License Pack (10x)",
			Description: "Pack of 10 toolkit licenses at a volume discount. Perfect for teams and agencies.",
			Price:       "$149.99",
			Image:       "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?w=800",
			Tags:        []string{"Bulk", "Value Pack", "Teams"},
			Rating:      5,
			Reviews:     67,
			Featured:    false,
			Type:        "software",
			Category:    "General",
			JoinLink:    "#",
			CreatedAt:   now.Add(-3 * time.Minute),
		},
	}
}
