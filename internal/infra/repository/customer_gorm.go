package repository

import (
	"context"
	"errors"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"
	repo "github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/repository"

	"gorm.io/gorm"
)

type customerGormRepository struct {
	db *gorm.DB
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewCustomerGormRepository(db *gorm.DB) repo.CustomerRepository {
	return &customerGormRepository{db: db}
}

// 顧客を新規作成
func (r *customerGormRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// IDで顧客を1件取得
func (r *customerGormRepository) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// 条件つき一覧
func (r *customerGormRepository) List(ctx context.Context, f repo.CustomerFilter) ([]model.Customer, error) {
	q := r.db.WithContext(ctx).Model(&model.Customer{})

	if f.NameContains != "" {
		q = q.Where("name ILIKE ?", "%"+f.NameContains+"%")
	}
	if f.EmailContains != "" {
		q = q.Where("email ILIKE ?", "%"+f.EmailContains+"%")
	}
	if f.CreatedAtGte != nil {
		q = q.Where("created_at >= ?", *f.CreatedAtGte)
	}
	if f.CreatedAtLte != nil {
		q = q.Where("created_at <= ?", *f.CreatedAtLte)
	}
	if f.PhonePrefix != "" {
		q = q.Where("phone LIKE ?", f.PhonePrefix+"%")
	}

	var customers []model.Customer
	if err := q.Order("id asc").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// メール重複チェック
func (r *customerGormRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
