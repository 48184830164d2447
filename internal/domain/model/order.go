package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64     `gorm:"not null;index" json:"customer_id"`
	OrderDate  time.Time `gorm:"type:date;not null" json:"order_date"`

	//納品予定日
	DeliveryDate time.Time `gorm:"type:date" json:"delivery_date"`

	//支払期日
	DueDate time.Time `gorm:"type:date" json:"due_date"`

	//作成時に明細から確定。以後は再計算しない（キャンセル後も履歴表示用に残す）
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`

	//支払いレジャーの合計が total 以上かのキャッシュ。レジャー書込と同一Txで更新する
	PaymentComplete bool `gorm:"not null;default:false" json:"payment_complete"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT" json:"-"`
}
