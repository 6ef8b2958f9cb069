package entity

// OrderItem is an immutable line of an order. ProductName and UnitPrice are
// snapshots taken when the order is placed, so later catalog edits or product
// deletions never change historical orders.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"orderId"`
	ProductID   uint    `json:"productId"`
	ProductName string  `gorm:"not null" json:"productName"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	UnitPrice   float64 `gorm:"not null" json:"unitPrice"`
	Modifiers   string  `json:"modifiers,omitempty"`
	Subtotal    float64 `gorm:"not null" json:"subtotal"`
}
