package entity

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPreparing OrderStatus = "PREPARING"
	OrderServed    OrderStatus = "SERVED"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderServed, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status ends the order lifecycle.
func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

type OrderType string

const (
	OrderDineIn   OrderType = "DINE_IN"
	OrderTakeaway OrderType = "TAKEAWAY"
)

func (t OrderType) Valid() bool {
	return t == OrderDineIn || t == OrderTakeaway
}

// Order is immutable once placed except for Status. TotalAmount is the sum of
// the item subtotals computed at creation and is never recomputed afterwards.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Status      OrderStatus `gorm:"not null" json:"status"`
	Type        OrderType   `gorm:"not null" json:"type"`
	TableNumber string      `json:"tableNumber"`
	TotalAmount float64     `gorm:"not null" json:"totalAmount"`

	// IdempotencyKey lets a client retry order submission without creating a
	// duplicate. Empty means no deduplication.
	IdempotencyKey string `gorm:"index" json:"idempotencyKey,omitempty"`

	CreatedAt time.Time `json:"createdAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}
