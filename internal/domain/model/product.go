package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	//在庫数（コミット後にマイナスになってはいけない）
	CurrentQuantity int64           `gorm:"not null" json:"current_quantity"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`

	//発注点（これ以下なら要補充）
	ReorderPoint int64     `gorm:"not null;default:0" json:"reorder_point"`
	SupplierID   int64     `gorm:"not null;index" json:"supplier_id"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:RESTRICT" json:"-"`
}
