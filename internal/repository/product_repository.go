package repository

import (
	"context"
	"errors"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// 一覧検索の条件
type ProductFilter struct {
	NameContains string
	PriceGte     *decimal.Decimal
	PriceLte     *decimal.Decimal
	StockGte     *int64
	StockLte     *int64

	//true: stock < 10 / false: stock >= 10 / nil: 条件なし
	LowStock *bool
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	Create(ctx context.Context, p model.Product) (model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	// idsの並び順のまま返す
	FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error)

	List(ctx context.Context, f ProductFilter) ([]model.Product, error)
}
