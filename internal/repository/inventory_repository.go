package repository

import (
	"context"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"
)

// 在庫の増減と履歴保存を約束。
// 更新は必ずDB側の相対更新（stock = stock ± delta）で行い、
// アプリ側で読んだ値からの書き戻しはしない。
type InventoryRepository interface {
	// stock < threshold の商品IDをID昇順で返す
	ListIDsBelowStock(ctx context.Context, threshold int64) ([]int64, error)

	// 対象IDすべての在庫に delta を加算し、更新行数を返す
	IncrementStockByIDs(ctx context.Context, ids []int64, delta int64) (int64, error)

	// 在庫を qty 減らす（0未満にはしない）
	DecrementStockClamped(ctx context.Context, productID int64, qty int64) error

	// 調整履歴作成
	CreateAdjustments(ctx context.Context, adjs []model.StockAdjustment) error
}
