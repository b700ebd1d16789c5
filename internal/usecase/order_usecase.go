package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"
	repo "github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/repository"
)

type OrderUsecase struct {
	orders repo.OrderRepository
	tx     repo.TransactionManager
}

// DI
func NewOrderUsecase(orders repo.OrderRepository, tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{orders: orders, tx: tx}
}

// IDはGraphQLの入力をそのまま受ける（文字列）。
// 数値に解釈できないIDは「存在しないID」として扱う。
type CreateOrderInput struct {
	CustomerID string
	ProductIDs []string
	OrderDate  *time.Time // 省略時は現在時刻
}

type CreateOrderOutput struct {
	Order  *model.Order `json:"order"`
	Errors []FieldError `json:"errors"`
}

// CreateOrderは注文を作成し、各商品の在庫を1ずつ引き当てる。
// 検証・作成・在庫減算は1トランザクション。検証エラーが1つでもあれば何も書かない。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) CreateOrderOutput {
	var out CreateOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var errs []FieldError

		// 顧客の存在確認
		var customerID int64
		if id, err := strconv.ParseInt(in.CustomerID, 10, 64); err == nil {
			customerID = id
		}

		if customerID > 0 {
			if _, err := r.Customers().FindByID(ctx, customerID); err != nil {
				if err != repo.ErrNotFound {
					return err
				}
				customerID = 0
			}
		}
		if customerID == 0 {
			errs = append(errs, FieldError{Field: "customer_id", Message: "Customer not found"})
		}

		// 商品の存在確認。見つかったものだけ注文に載せる。
		// 同じIDの重複は1点として扱う（在庫も1しか引かない）。
		products := make([]model.Product, 0, len(in.ProductIDs))
		seen := make(map[string]struct{}, len(in.ProductIDs))
		for idx, rawID := range in.ProductIDs {
			if _, dup := seen[rawID]; dup {
				continue
			}
			seen[rawID] = struct{}{}

			pid, parseErr := strconv.ParseInt(rawID, 10, 64)
			if parseErr == nil && pid > 0 {
				p, err := r.Products().FindByID(ctx, pid)
				if err == nil {
					products = append(products, p)
					continue
				}
				if err != repo.ErrNotFound {
					return err
				}
			}
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("product_ids[%d]", idx),
				Message: fmt.Sprintf("Product with ID %s not found", rawID),
			})
		}

		// 有効な商品が1つもない注文は作らせない
		if len(products) == 0 {
			errs = append(errs, FieldError{
				Field:   "product_ids",
				Message: "At least one valid product is required",
			})
		}

		if len(errs) > 0 {
			out.Errors = errs
			return nil
		}

		orderDate := time.Now()
		if in.OrderDate != nil {
			orderDate = *in.OrderDate
		}

		created, err := r.Orders().Create(ctx, model.Order{
			CustomerID: customerID,
			Products:   products,
			OrderDate:  orderDate,
			Status:     model.OrderStatusPending,
		})
		if err != nil {
			return err
		}

		// 商品ごとに在庫を1引き当てる（0未満にはしない）
		for _, p := range products {
			if err := r.Inventory().DecrementStockClamped(ctx, p.ID, 1); err != nil {
				return err
			}
		}

		// 顧客・商品込みで読み直して返す
		full, err := r.Orders().FindByID(ctx, created.ID)
		if err != nil {
			return err
		}
		out.Order = &full
		return nil
	})
	if err != nil {
		return CreateOrderOutput{Errors: []FieldError{{Field: fieldAll, Message: err.Error()}}}
	}

	return out
}

type ListOrdersInput struct {
	OrderDateGte *time.Time
	OrderDateLte *time.Time
	Status       string
	CustomerName string
	ProductName  string
	ProductID    *int64
}

func (u *OrderUsecase) ListOrders(ctx context.Context, in ListOrdersInput) ([]model.Order, error) {
	return u.orders.List(ctx, repo.OrderFilter{
		OrderDateGte: in.OrderDateGte,
		OrderDateLte: in.OrderDateLte,
		Status:       model.OrderStatus(in.Status),
		CustomerName: in.CustomerName,
		ProductName:  in.ProductName,
		ProductID:    in.ProductID,
	})
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, ErrNotFound
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return model.Order{}, ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}
