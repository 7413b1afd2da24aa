package catalogd

import "time"

// Product is the stored catalog record. The JSON shape is the wire
// contract the storefront's gateway client decodes.
type Product struct {
	ID          string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string    `gorm:"type:varchar(512)" json:"image"`
	CreatedAt   time.Time `gorm:"type:datetime(3)" json:"-"`
	UpdatedAt   time.Time `gorm:"type:datetime(3)" json:"-"`
}

func (Product) TableName() string { return "products" }
