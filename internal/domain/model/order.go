package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
)

// 注文。商品との関連は order_products の中間テーブル。
type Order struct {
	ID         int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64    `gorm:"not null;index" json:"customer_id"`
	Customer   Customer `gorm:"foreignKey:CustomerID" json:"customer"`

	//注文に含まれる商品（各1点）
	Products []Product `gorm:"many2many:order_products;" json:"products"`

	OrderDate time.Time   `gorm:"not null;index" json:"order_date"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 合計金額はカラムに持たず、読み出しのたびに商品単価から計算する。
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		total = total.Add(p.Price)
	}
	return total
}
