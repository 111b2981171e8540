package models

import "time"

// Order is one purchased line item. Product name, image and unit price are
// copied from the cart at checkout, so later catalog edits never rewrite
// order history. ProductID is kept for linking back to the live product page.
type Order struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"index;not null" json:"username"`
	OrderRef     string    `gorm:"index" json:"order_ref"`
	ProductID    uint      `gorm:"not null" json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	UnitPrice    float64   `json:"unit_price"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	OrderTime    time.Time `gorm:"autoCreateTime" json:"order_time"`
}
