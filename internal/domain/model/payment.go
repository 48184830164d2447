package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusPaid      PaymentStatus = "Paid"
	PaymentStatusCancelled PaymentStatus = "Cancelled"
	PaymentStatusRefunded  PaymentStatus = "Refunded"
)

// 支払いレジャーの1行。追記専用（ライフサイクル処理からは更新も削除もしない）
// 金額プラス＝入金、マイナス＝返金
type Payment struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID int64 `gorm:"not null;index" json:"order_id"`

	AmountPaid  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount_paid"`
	PaymentDate time.Time       `gorm:"type:date;not null" json:"payment_date"`

	//Pending/Paid/Cancelled/Refunded のほか呼び出し側の任意タグも許す
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;index" json:"payment_status"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	Order *Order `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}
