package domain

// Category groups products in the catalog.
type Category struct {
	ID   int64
	Name string
}

// Product is a purchasable catalog item. Rating is nil until the first
// review is aggregated into it.
type Product struct {
	ID         int64
	Name       string
	Price      float64
	StockCount int
	CategoryID *int64
	Rating     *float64
}
