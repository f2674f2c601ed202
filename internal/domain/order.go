package domain

import "time"

// Order is a placed order. Status is a plain completed/pending flag; no
// state machine exists for it.
type Order struct {
	ID         int64
	OrderDate  time.Time
	TotalPrice float64
	Status     bool
	CustomerID int64
	AddressID  int64
}

// OrderItem links a product into an order with its quantity.
type OrderItem struct {
	OrderID   int64
	ProductID int64
	Quantity  int
}

// Payment records money captured for an order. Schema only; no payment
// processing happens in this service.
type Payment struct {
	ID          int64
	Amount      float64
	Method      string
	PaymentDate time.Time
	OrderID     int64
	CustomerID  int64
}

// DiscountCode is a percentage discount attached to an order. Redemption
// rules live outside this service.
type DiscountCode struct {
	ID         int64
	Code       string
	Percentage float64
	Status     bool
	OrderID    int64
}

// GiftCard is a fixed-value credit attached to an order.
type GiftCard struct {
	ID      int64
	Value   float64
	Code    string
	Status  bool
	OrderID int64
}
