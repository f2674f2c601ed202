package domain

import "time"

// OrderHistoryLog is an audit entry capturing a JSON snapshot of an
// order's assembled details at the time it was served.
type OrderHistoryLog struct {
	ID           int64
	CustomerID   int64
	OrderID      int64
	OrderDetails []byte
	LoggedAt     time.Time
}
