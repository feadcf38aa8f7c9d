package models

import "time"

// OrderStatus is the closed set of order states.
//
// Every state is reachable from every other by an admin-issued update; there
// is no enforced ordering and no enforced terminality. In practice completed
// and cancelled are terminal.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known order states.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is a single line of an order. Price and ProductName are snapshots
// taken from the catalog at order time and must not change even if the
// underlying product later does.
type OrderItem struct {
	ProductID   string  `bson:"product_id"   json:"product_id"`
	Quantity    int     `bson:"quantity"     json:"quantity"`
	Price       float64 `bson:"price"        json:"price"`
	ProductName string  `bson:"product_name" json:"product_name"`
}

// Order is a purchase record. TotalAmount is computed server-side as the sum
// of item price times quantity and never trusted from the client. Orders are
// never deleted; only the status (and updated_at) ever changes after creation.
type Order struct {
	ID                  string      `bson:"_id"                            json:"id"`
	UserID              string      `bson:"user_id"                        json:"user_id"`
	Items               []OrderItem `bson:"items"                          json:"items"`
	TotalAmount         float64     `bson:"total_amount"                   json:"total_amount"`
	Status              OrderStatus `bson:"status"                         json:"status"`
	PaymentMethod       string      `bson:"payment_method"                 json:"payment_method"`
	DeliveryAddress     string      `bson:"delivery_address,omitempty"     json:"delivery_address,omitempty"`
	SpecialInstructions string      `bson:"special_instructions,omitempty" json:"special_instructions,omitempty"`
	CreatedAt           time.Time   `bson:"created_at"                     json:"created_at"`
	UpdatedAt           time.Time   `bson:"updated_at"                     json:"updated_at"`
}
