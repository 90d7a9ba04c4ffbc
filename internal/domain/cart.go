package domain

// CartItem is one cart entry: the product attributes the UI needs plus a
// mutable quantity. Identity is the product id; the cart holds at most
// one entry per id.
type CartItem struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}
