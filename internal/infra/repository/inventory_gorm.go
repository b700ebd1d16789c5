package repository

import (
	"context"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"
	repo "github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/repository"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// しきい値未満の商品IDをID昇順で返す
func (r *InventoryGormRepository) ListIDsBelowStock(ctx context.Context, threshold int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("stock < ?", threshold).
		Order("id asc").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// 対象IDの在庫を一括加算。更新行数を返す。
// 相対更新（stock = stock + ?）なので並行実行でも加算が失われない。
func (r *InventoryGormRepository) IncrementStockByIDs(ctx context.Context, ids []int64, delta int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id IN ?", ids).
		Update("stock", gorm.Expr("stock + ?", delta))

	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// 在庫を減らす。0未満にはしない。
func (r *InventoryGormRepository) DecrementStockClamped(ctx context.Context, productID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("GREATEST(stock - ?, 0)", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 調整履歴の一括作成
func (r *InventoryGormRepository) CreateAdjustments(ctx context.Context, adjs []model.StockAdjustment) error {
	if len(adjs) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&adjs).Error; err != nil {
		return err
	}
	return nil
}
