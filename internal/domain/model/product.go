package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// これを下回った商品が「低在庫」として補充対象になる
const LowStockThreshold int64 = 10

type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	//単価（作成時に > 0 を保証）
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	//在庫数（常に >= 0。補充で加算、注文で減算）
	Stock int64 `gorm:"not null;default:0" json:"stock"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
