package repository

import (
	"context"
	"time"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"
)

// 一覧検索の条件（期日範囲・ステータス・関連エンティティをまたぐ絞り込み）
type OrderFilter struct {
	OrderDateGte *time.Time
	OrderDateLte *time.Time
	Status       model.OrderStatus

	//顧客名の部分一致（JOIN）
	CustomerName string

	//商品名の部分一致（JOIN、重複排除）
	ProductName string

	//特定の商品を含む注文
	ProductID *int64
}

type OrderRepository interface {
	// 注文と商品の関連をまとめて保存する。商品行そのものは変更しない。
	Create(ctx context.Context, order model.Order) (model.Order, error)

	//顧客と商品をPreloadして返す
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	List(ctx context.Context, f OrderFilter) ([]model.Order, error)
}
