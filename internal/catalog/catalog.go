// Package catalog is the static menu the storefront sells from. Prices are
// whole tenge.
package catalog

import "github.com/dkenzhe/lavka/internal/cart"

var items = []cart.Product{
	{Name: "Burger", Description: "Beef patty, cheddar, pickles, house sauce", Price: 1500, Image: "img/burger.jpg"},
	{Name: "Doner", Description: "Chicken doner wrap with fresh vegetables", Price: 1200, Image: "img/doner.jpg"},
	{Name: "Lagman", Description: "Hand-pulled noodles with beef and peppers", Price: 1800, Image: "img/lagman.jpg"},
	{Name: "Plov", Description: "Rice with lamb, carrots and chickpeas", Price: 1700, Image: "img/plov.jpg"},
	{Name: "Manty", Description: "Steamed dumplings with minced lamb, 5 pcs", Price: 1400, Image: "img/manty.jpg"},
	{Name: "Lemonade", Description: "House citrus lemonade, 0.4 l", Price: 600, Image: "img/lemonade.jpg"},
	{Name: "Cheesecake", Description: "Baked cheesecake with berry sauce", Price: 1100, Image: "img/cheesecake.jpg"},
}

// Items returns the menu in display order.
func Items() []cart.Product {
	out := make([]cart.Product, len(items))
	copy(out, items)
	return out
}

// Find returns the product with the given name, or false.
func Find(name string) (cart.Product, bool) {
	for _, p := range items {
		if p.Name == name {
			return p, true
		}
	}
	return cart.Product{}, false
}
