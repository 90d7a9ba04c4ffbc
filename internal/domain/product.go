package domain

type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Discount      int      `json:"discount"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	InStock       bool     `json:"inStock"`
	Description   string   `json:"description"`
	Features      []string `json:"features,omitempty"`
}

// CartItem converts a product into a fresh cart entry with quantity 1.
func (p Product) CartItem() CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	}
}
