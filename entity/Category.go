package entity

// Category groups products for display. DisplayOrder is the sort key for
// category listings; ties fall back to insertion order.
type Category struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Description  string `gorm:"default:''" json:"description"`
	DisplayOrder int    `gorm:"default:0" json:"displayOrder"`

	Products []Product `json:"-"`
}
