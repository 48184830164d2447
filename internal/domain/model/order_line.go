package model

import "time"

// 注文と商品の関連（数量つき）。注文と同時に作られ、以後不変
type OrderLine struct {
	OrderID   int64     `gorm:"primaryKey" json:"order_id"`
	ProductID int64     `gorm:"primaryKey" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	Order   *Order   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT" json:"-"`
}
