package fakestore

import "fmt"

// Product mirrors one entry of the catalog endpoint's JSON array.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// Rating aggregates the provider's review summary for a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// FormattedPrice returns the price with a currency-agnostic symbol prefix.
func (p Product) FormattedPrice() string {
	return fmt.Sprintf("$ %.2f", p.Price)
}

// FormattedRating returns the rate with one decimal and the count in parentheses.
func (p Product) FormattedRating() string {
	return fmt.Sprintf("%.1f (%d)", p.Rating.Rate, p.Rating.Count)
}
