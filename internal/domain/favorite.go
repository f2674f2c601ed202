package domain

import "time"

// FavoriteList is a customer's single wishlist. One list per customer.
type FavoriteList struct {
	ID         int64
	TotalPrice float64
	CreateDate time.Time
	CustomerID int64
}

// FavoriteListItem links a product into a favorite list.
type FavoriteListItem struct {
	FavoriteID int64
	ProductID  int64
	Quantity   int
}
