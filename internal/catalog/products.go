package catalog

import "github.com/elitecart/storefront/internal/domain"

// sampleProducts is the demo storefront's fixed product set, Indian
// pricing in INR.
var sampleProducts = []domain.Product{
	{
		ID:            1,
		Name:          "iPhone 15 Pro",
		Price:         134900,
		OriginalPrice: 149900,
		Discount:      10,
		Rating:        4.8,
		Reviews:       2847,
		Image:         "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=400&h=400&fit=crop",
		Category:      "Smartphones",
		Brand:         "Apple",
		InStock:       true,
		Description:   "Latest iPhone with titanium design and A17 Pro chip",
		Features:      []string{"A17 Pro Chip", "48MP Camera", "Titanium Design", "USB-C"},
	},
	{
		ID:            2,
		Name:          "MacBook Air M2",
		Price:         114900,
		OriginalPrice: 124900,
		Discount:      8,
		Rating:        4.9,
		Reviews:       1923,
		Image:         "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=400&h=400&fit=crop",
		Category:      "Laptops",
		Brand:         "Apple",
		InStock:       true,
		Description:   "Supercharged by the M2 chip, redesigned around it",
		Features:      []string{"M2 Chip", "18-hour battery", "13.6-inch display", "1080p Camera"},
	},
	{
		ID:            3,
		Name:          "Sony WH-1000XM5 Headphones",
		Price:         29990,
		OriginalPrice: 34990,
		Discount:      14,
		Rating:        4.7,
		Reviews:       3156,
		Image:         "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop",
		Category:      "Electronics",
		Brand:         "Sony",
		InStock:       true,
		Description:   "Industry-leading noise canceling headphones",
		Features:      []string{"Active Noise Canceling", "30-hour battery", "Quick Charge", "Multipoint Connection"},
	},
	{
		ID:            4,
		Name:          "Canon EOS R6 Camera",
		Price:         209995,
		OriginalPrice: 229995,
		Discount:      9,
		Rating:        4.6,
		Reviews:       876,
		Image:         "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=400&h=400&fit=crop",
		Category:      "Electronics",
		Brand:         "Canon",
		InStock:       true,
		Description:   "Full-frame mirrorless camera for creators",
		Features:      []string{"20.1MP Sensor", "4K Video", "In-body Stabilization", "Dual Pixel AF"},
	},
	{
		ID:            5,
		Name:          "Gaming Mechanical Keyboard",
		Price:         8999,
		OriginalPrice: 12999,
		Discount:      31,
		Rating:        4.5,
		Reviews:       2341,
		Image:         "https://images.unsplash.com/photo-1541140532154-b024d705b90a?w=400&h=400&fit=crop",
		Category:      "Electronics",
		Brand:         "Razer",
		InStock:       true,
		Description:   "Premium mechanical keyboard for gaming",
		Features:      []string{"Mechanical Switches", "RGB Lighting", "Programmable Keys", "Gaming Mode"},
	},
	{
		ID:            6,
		Name:          "Wireless Charging Pad",
		Price:         2499,
		OriginalPrice: 3999,
		Discount:      38,
		Rating:        4.3,
		Reviews:       1567,
		Image:         "https://images.unsplash.com/photo-1586953208448-b95a79798f07?w=400&h=400&fit=crop",
		Category:      "Electronics",
		Brand:         "Belkin",
		InStock:       true,
		Description:   "Fast wireless charging for compatible devices",
		Features:      []string{"15W Fast Charging", "LED Indicator", "Case Compatible", "Safety Features"},
	},
	{
		ID:            7,
		Name:          "Samsung Galaxy S24",
		Price:         79999,
		OriginalPrice: 89999,
		Discount:      11,
		Rating:        4.6,
		Reviews:       1845,
		Image:         "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=400&h=400&fit=crop",
		Category:      "Smartphones",
		Brand:         "Samsung",
		InStock:       true,
		Description:   "AI-powered flagship with stunning display",
		Features:      []string{"AI Photography", "120Hz Display", "5000mAh Battery", "S Pen Support"},
	},
	{
		ID:            8,
		Name:          "Dell XPS 13 Laptop",
		Price:         105990,
		OriginalPrice: 115990,
		Discount:      9,
		Rating:        4.4,
		Reviews:       967,
		Image:         "https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=400&h=400&fit=crop",
		Category:      "Laptops",
		Brand:         "Dell",
		InStock:       true,
		Description:   "Compact powerhouse with InfinityEdge display",
		Features:      []string{"InfinityEdge Display", "Intel Core i7", "16GB RAM", "512GB SSD"},
	},
	{
		ID:            9,
		Name:          "Boat Airdopes Earbuds",
		Price:         1999,
		OriginalPrice: 2999,
		Discount:      33,
		Rating:        4.2,
		Reviews:       5632,
		Image:         "https://images.unsplash.com/photo-1572569511254-d8f925fe2cbb?w=400&h=400&fit=crop",
		Category:      "Electronics",
		Brand:         "Boat",
		InStock:       true,
		Description:   "True wireless earbuds with punchy bass",
	},
	{
		ID:            10,
		Name:          "Mi Smart TV 55\"",
		Price:         39999,
		OriginalPrice: 49999,
		Discount:      20,
		Rating:        4.5,
		Reviews:       2198,
		Image:         "https://images.unsplash.com/photo-1593784991095-a205069470b6?w=400&h=400&fit=crop",
		Category:      "Electronics",
		Brand:         "Xiaomi",
		InStock:       true,
		Description:   "4K Android TV with Dolby Vision",
	},
}
