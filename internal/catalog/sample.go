package catalog

import "github.com/sk-sazzad/tinystepsbd/internal/domain"

// sampleProducts is the last-resort catalog shown when both the live
// API and the cache are unavailable
var sampleProducts = []domain.Product{
	{
		ID:          "TSB_001",
		Name:        "Cotton Romper Set",
		Price:       650,
		Category:    "Newborn",
		Size:        "0-6M",
		Color:       "Sky Blue",
		Description: "Soft breathable cotton romper set for newborns.",
		ImageURL:    PlaceholderImage,
	},
	{
		ID:          "TSB_002",
		Name:        "Printed Frock",
		Price:       850,
		Category:    "Girls",
		Size:        "2-3Y",
		Color:       "Pink",
		Description: "Floral printed frock with matching hairband.",
		ImageURL:    PlaceholderImage,
	},
	{
		ID:          "TSB_003",
		Name:        "Polo Shirt and Shorts",
		Price:       750,
		Category:    "Boys",
		Size:        "3-4Y",
		Color:       "Navy",
		Description: "Two-piece polo shirt and shorts set.",
		ImageURL:    PlaceholderImage,
	},
	{
		ID:          "TSB_004",
		Name:        "Hooded Winter Jacket",
		Price:       1450,
		Category:    "Winter",
		Size:        "4-5Y",
		Color:       "Red",
		Description: "Warm fleece-lined hooded jacket.",
		ImageURL:    PlaceholderImage,
	},
	{
		ID:          "TSB_005",
		Name:        "Soft Sole Baby Shoes",
		Price:       450,
		Category:    "Shoes",
		Size:        "6-12M",
		Color:       "White",
		Description: "Anti-slip soft sole first walker shoes.",
		ImageURL:    PlaceholderImage,
	},
	{
		ID:          "TSB_006",
		Name:        "Stacking Rings Toy",
		Price:       550,
		Category:    "Toys",
		Size:        "N/A",
		Color:       "Multicolor",
		Description: "BPA-free stacking rings for motor skill play.",
		ImageURL:    PlaceholderImage,
	},
}
