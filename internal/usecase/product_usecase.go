package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"
	repo "github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	products repo.ProductRepository
	tx       repo.TransactionManager
}

// DI
func NewProductUsecase(products repo.ProductRepository, tx repo.TransactionManager) *ProductUsecase {
	return &ProductUsecase{products: products, tx: tx}
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       *int64 // 省略時は0
}

type CreateProductOutput struct {
	Product *model.Product `json:"product"`
	Errors  []FieldError   `json:"errors"`
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) CreateProductOutput {
	var errs []FieldError

	// 名前（空白のみも不可）
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name cannot be empty"})
	}

	// 単価は正の値だけ
	if !in.Price.IsPositive() {
		errs = append(errs, FieldError{Field: "price", Message: "Price must be greater than 0"})
	}

	// 在庫は負数禁止
	if in.Stock != nil && *in.Stock < 0 {
		errs = append(errs, FieldError{Field: "stock", Message: "Stock cannot be negative"})
	}

	if len(errs) > 0 {
		return CreateProductOutput{Errors: errs}
	}

	var stock int64
	if in.Stock != nil {
		stock = *in.Stock
	}

	p, err := u.products.Create(ctx, model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       stock,
	})
	if err != nil {
		return CreateProductOutput{Errors: []FieldError{{Field: fieldAll, Message: err.Error()}}}
	}

	return CreateProductOutput{Product: &p}
}

type ReplenishLowStockInput struct {
	IncrementBy int64
}

type ReplenishLowStockOutput struct {
	Success         bool            `json:"success"`
	Message         string          `json:"message"`
	UpdatedCount    int64           `json:"updated_count"`
	UpdatedProducts []model.Product `json:"updated_products"`
}

// ReplenishLowStockは在庫がしきい値（10）未満の商品をまとめて補充する。
//
// 選択・加算・再取得を1トランザクションで行う。対象IDは加算前に確定させ、
// 再取得はそのIDだけを読むので、実行中に他の行の在庫が変わっても結果はぶれない。
// 加算はDB側の相対更新なので、同時に2回走っても加算が失われることはない。
// 意図的に冪等ではない：しきい値未満のまま2回呼べば2回加算される（補充の仕様）。
//
// ストレージ系の失敗はGoのerrorとしては返さず、必ずsuccess=falseの結果に畳む。
func (u *ProductUsecase) ReplenishLowStock(ctx context.Context, in ReplenishLowStockInput) ReplenishLowStockOutput {
	if in.IncrementBy <= 0 {
		return ReplenishLowStockOutput{
			Success:         false,
			Message:         "incrementBy must be a positive integer",
			UpdatedProducts: []model.Product{},
		}
	}

	var updated []model.Product

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 対象IDを先に確定（ID昇順）
		ids, err := r.Inventory().ListIDsBelowStock(ctx, model.LowStockThreshold)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		// 一括加算
		if _, err := r.Inventory().IncrementStockByIDs(ctx, ids, in.IncrementBy); err != nil {
			return err
		}

		// 調整履歴も同じトランザクションで残す
		adjs := make([]model.StockAdjustment, 0, len(ids))
		for _, id := range ids {
			adjs = append(adjs, model.StockAdjustment{
				ProductID: id,
				Delta:     in.IncrementBy,
				Reason:    "low stock replenishment",
			})
		}
		if err := r.Inventory().CreateAdjustments(ctx, adjs); err != nil {
			return err
		}

		// 加算後の値を確定済みIDで読み直す
		updated, err = r.Products().FindByIDs(ctx, ids)
		return err
	})
	if err != nil {
		return ReplenishLowStockOutput{
			Success:         false,
			Message:         "Error updating low-stock products: " + err.Error(),
			UpdatedProducts: []model.Product{},
		}
	}

	if len(updated) == 0 {
		return ReplenishLowStockOutput{
			Success:         true,
			Message:         "No products with stock less than 10 found",
			UpdatedProducts: []model.Product{},
		}
	}

	return ReplenishLowStockOutput{
		Success:         true,
		Message:         fmt.Sprintf("Successfully updated %d low-stock products", len(updated)),
		UpdatedCount:    int64(len(updated)),
		UpdatedProducts: updated,
	}
}

type ListProductsInput struct {
	Name     string
	PriceGte *decimal.Decimal
	PriceLte *decimal.Decimal
	StockGte *int64
	StockLte *int64
	LowStock *bool
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	return u.products.List(ctx, repo.ProductFilter{
		NameContains: in.Name,
		PriceGte:     in.PriceGte,
		PriceLte:     in.PriceLte,
		StockGte:     in.StockGte,
		StockLte:     in.StockLte,
		LowStock:     in.LowStock,
	})
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, ErrNotFound
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}
