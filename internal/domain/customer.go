package domain

// Customer is the domain model for registered storefront customers.
// Username is the immutable login identifier; PasswordHash always holds
// a bcrypt hash, never the plaintext.
type Customer struct {
	ID            int64
	FirstName     string
	LastName      string
	Username      string
	PasswordHash  string
	WalletBalance float64
	PhoneNumbers  []string
}
