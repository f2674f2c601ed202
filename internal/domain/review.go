package domain

// Review is a customer's rating of a product. Comment lines are stored
// as a text array, matching the catalog schema.
type Review struct {
	ID         int64
	Rating     int
	Comment    []string
	CustomerID int64
	ProductID  int64
}
