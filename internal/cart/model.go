package cart

// Product is what the menu hands to AddItem.
type Product struct {
	Name        string
	Description string
	Price       int64 // whole tenge
	Image       string
}

// Item is one cart line. Name is the natural dedup key; Quantity never goes
// below 1; a quantity change that would reach zero removes the line instead.
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Quantity    int    `json:"quantity"`
}

// Totals summarizes the cart for the order screen and the nav badge.
type Totals struct {
	Lines    int   // distinct line items
	Units    int   // summed quantity, shown in the nav badge
	Subtotal int64 // sum of price * quantity
}
