package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"
	repo "github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 注文本体と order_products の関連行を保存する。
// Omit("Products.*") により商品行そのものは更新しない。
func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Omit("Products.*").Create(&order).Error; err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		First(&o, orderID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) List(ctx context.Context, f repo.OrderFilter) ([]model.Order, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{})

	if f.OrderDateGte != nil {
		q = q.Where("orders.order_date >= ?", *f.OrderDateGte)
	}
	if f.OrderDateLte != nil {
		q = q.Where("orders.order_date <= ?", *f.OrderDateLte)
	}
	if f.Status != "" {
		q = q.Where("orders.status = ?", f.Status)
	}

	//顧客名での絞り込みはJOINが要る
	if strings.TrimSpace(f.CustomerName) != "" {
		q = q.Joins("JOIN customers ON customers.id = orders.customer_id").
			Where("customers.name ILIKE ?", "%"+strings.TrimSpace(f.CustomerName)+"%")
	}

	//商品側の条件は中間テーブル経由。1注文に複数商品が当たるので重複排除する。
	if strings.TrimSpace(f.ProductName) != "" || f.ProductID != nil {
		q = q.Joins("JOIN order_products ON order_products.order_id = orders.id").
			Joins("JOIN products ON products.id = order_products.product_id").
			Distinct("orders.*")

		if strings.TrimSpace(f.ProductName) != "" {
			q = q.Where("products.name ILIKE ?", "%"+strings.TrimSpace(f.ProductName)+"%")
		}
		if f.ProductID != nil {
			q = q.Where("order_products.product_id = ?", *f.ProductID)
		}
	}

	var orders []model.Order
	err := q.Preload("Customer").
		Preload("Products").
		Order("orders.id asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
