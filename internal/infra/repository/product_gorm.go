package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"
	repo "github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// idsの並び順のまま返す。
// IN句の結果順はDB任せなので、取得後にids順へ並べ直す。
func (r *ProductGormRepository) FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	var products []model.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}

	byID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	ordered := make([]model.Product, 0, len(products))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// 条件つき一覧
func (r *ProductGormRepository) List(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{})

	if strings.TrimSpace(f.NameContains) != "" {
		q = q.Where("name ILIKE ?", "%"+strings.TrimSpace(f.NameContains)+"%")
	}
	if f.PriceGte != nil {
		q = q.Where("price >= ?", *f.PriceGte)
	}
	if f.PriceLte != nil {
		q = q.Where("price <= ?", *f.PriceLte)
	}
	if f.StockGte != nil {
		q = q.Where("stock >= ?", *f.StockGte)
	}
	if f.StockLte != nil {
		q = q.Where("stock <= ?", *f.StockLte)
	}
	if f.LowStock != nil {
		if *f.LowStock {
			q = q.Where("stock < ?", model.LowStockThreshold)
		} else {
			q = q.Where("stock >= ?", model.LowStockThreshold)
		}
	}

	var products []model.Product
	if err := q.Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
