package model

import "time"

// 顧客の配送先住所（1顧客に複数）
type CustomerLocation struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64     `gorm:"not null;index" json:"customer_id"`
	Address    string    `gorm:"type:varchar(500);not null" json:"address"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}
