package domain

// Address is a shipping address belonging to a customer.
type Address struct {
	ID           int64
	StreetName   string
	StreetNumber string
	Country      string
	City         string
	PostalCode   string
	Province     string
	CustomerID   int64
}
