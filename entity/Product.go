package entity

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	CategoryID  uint    `json:"categoryId"`
	Available   bool    `json:"available"`
	ImageURL    string  `gorm:"column:image_url;default:''" json:"imageUrl"`

	// CategoryName is resolved from the category on every read; it is never a
	// column of its own in the relational schema.
	CategoryName string `gorm:"-" json:"categoryName"`
}
