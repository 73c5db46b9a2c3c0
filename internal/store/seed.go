package store

import "github.com/zeromade/storefront/internal/models"

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// SeedProducts is the initial catalog written on first run when no data file
// exists yet.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Premium Black Hoodie",
			Category:      "Hoodies",
			Price:         2499,
			OriginalPrice: intPtr(3499),
			Image:         "/assets/products/hoodie-black.jpg",
			Rating:        4.8,
			Reviews:       128,
			Badge:         strPtr("Best Seller"),
			Slug:          "premium-black-hoodie",
			Colors:        []string{"Black", "Gray", "Navy"},
			Sizes:         []string{"S", "M", "L", "XL"},
		},
		{
			ID:       "2",
			Name:     "Essential White Tee",
			Category: "T-Shirts",
			Price:    999,
			Image:    "/assets/products/tshirt-white.jpg",
			Rating:   4.9,
			Reviews:  256,
			Slug:     "essential-white-tee",
			Colors:   []string{"White", "Black", "Gray"},
			Sizes:    []string{"S", "M", "L", "XL", "XXL"},
		},
		{
			ID:            "3",
			Name:          "Navy Comfort Joggers",
			Category:      "Pants",
			Price:         1899,
			OriginalPrice: intPtr(2499),
			Image:         "/assets/products/joggers-navy.jpg",
			Rating:        4.7,
			Reviews:       89,
			Badge:         strPtr("20% Off"),
			Slug:          "navy-comfort-joggers",
			Colors:        []string{"Navy", "Black", "Gray"},
			Sizes:         []string{"S", "M", "L", "XL"},
		},
		{
			ID:       "4",
			Name:     "Urban Gray Bomber",
			Category: "Jackets",
			Price:    3999,
			Image:    "/assets/products/jacket-gray.jpg",
			Rating:   4.9,
			Reviews:  67,
			Badge:    strPtr("New"),
			Slug:     "urban-gray-bomber",
			Colors:   []string{"Gray", "Black", "Olive"},
			Sizes:    []string{"S", "M", "L", "XL"},
		},
		{
			ID:            "5",
			Name:          "Burgundy Crewneck",
			Category:      "Sweaters",
			Price:         1799,
			OriginalPrice: intPtr(2299),
			Image:         "/assets/products/sweater-burgundy.jpg",
			Rating:        4.6,
			Reviews:       45,
			Slug:          "burgundy-crewneck",
			Colors:        []string{"Burgundy", "Navy", "Green"},
			Sizes:         []string{"S", "M", "L", "XL"},
		},
		{
			ID:       "6",
			Name:     "Olive Cargo Pants",
			Category: "Pants",
			Price:    2199,
			Image:    "/assets/products/cargo-olive.jpg",
			Rating:   4.8,
			Reviews:  112,
			Badge:    strPtr("Trending"),
			Slug:     "olive-cargo-pants",
			Colors:   []string{"Olive", "Black", "Khaki"},
			Sizes:    []string{"28", "30", "32", "34", "36"},
		},
		{
			ID:            "7",
			Name:          "Classic Black Polo",
			Category:      "T-Shirts",
			Price:         1299,
			OriginalPrice: intPtr(1699),
			Image:         "/assets/products/polo-black.jpg",
			Rating:        4.7,
			Reviews:       78,
			Slug:          "classic-black-polo",
			Colors:        []string{"Black", "White", "Navy"},
			Sizes:         []string{"S", "M", "L", "XL"},
		},
		{
			ID:            "8",
			Name:          "Beige Denim Jacket",
			Category:      "Jackets",
			Price:         3499,
			OriginalPrice: intPtr(4499),
			Image:         "/assets/products/denim-beige.jpg",
			Rating:        4.9,
			Reviews:       34,
			Badge:         strPtr("Limited"),
			Slug:          "beige-denim-jacket",
			Colors:        []string{"Beige", "Blue", "Black"},
			Sizes:         []string{"S", "M", "L", "XL"},
		},
	}
}
