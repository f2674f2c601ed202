package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCustomerRegistered EventType = "customer_registered"
	EventCustomerUpdated    EventType = "customer_updated"
	EventCustomerDeleted    EventType = "customer_deleted"
	EventOrderViewed        EventType = "order_viewed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Username  string      `json:"username"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CustomerRegisteredPayload payload.
type CustomerRegisteredPayload struct {
	CustomerID int64  `json:"customer_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

// CustomerUpdatedPayload payload. Fields lists which attributes changed;
// plaintext or hashed passwords never ride on events.
type CustomerUpdatedPayload struct {
	CustomerID int64    `json:"customer_id"`
	Fields     []string `json:"fields"`
}

// CustomerDeletedPayload payload.
type CustomerDeletedPayload struct {
	CustomerID int64 `json:"customer_id"`
}

// OrderViewedPayload carries the assembled order details snapshot for the
// audit log.
type OrderViewedPayload struct {
	CustomerID int64  `json:"customer_id"`
	OrderID    int64  `json:"order_id"`
	Snapshot   []byte `json:"snapshot"`
}
