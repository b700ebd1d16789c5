package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"
	repo "github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/repository"
	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/validator"
)

// 対象が存在しない（queryはnullを返す）
var ErrNotFound = errors.New("not found")

// FieldErrorはmutationのレスポンスに載せるフィールド単位のエラー。
// mutationはGoのerrorを返さず、必ずこの形で失敗を報告する。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// 入力起因でないエラー（DB等）はこのフィールド名で返す
const fieldAll = "__all__"

type CustomerUsecase struct {
	customers repo.CustomerRepository
	tx        repo.TransactionManager
}

// DI
func NewCustomerUsecase(customers repo.CustomerRepository, tx repo.TransactionManager) *CustomerUsecase {
	return &CustomerUsecase{customers: customers, tx: tx}
}

type CreateCustomerInput struct {
	Name  string
	Email string
	Phone string // 任意
}

type CreateCustomerOutput struct {
	Customer *model.Customer `json:"customer"`
	Message  string          `json:"message"`
	Errors   []FieldError    `json:"errors"`
}

func (u *CustomerUsecase) CreateCustomer(ctx context.Context, in CreateCustomerInput) CreateCustomerOutput {
	var errs []FieldError

	// 名前（空白のみも不可）
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name cannot be empty"})
	}

	// メール形式
	if !validator.IsEmailLike(in.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email format"})
	}

	// 電話形式（空ならスキップ）
	if in.Phone != "" && !validator.IsPhoneLike(in.Phone) {
		errs = append(errs, FieldError{
			Field:   "phone",
			Message: "Phone must be in format: +1234567890 or 1234567890",
		})
	}

	// メール重複
	exists, err := u.customers.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return CreateCustomerOutput{Errors: []FieldError{{Field: fieldAll, Message: err.Error()}}}
	}
	if exists {
		errs = append(errs, FieldError{Field: "email", Message: "Email already exists"})
	}

	if len(errs) > 0 {
		return CreateCustomerOutput{Errors: errs}
	}

	c, err := u.customers.Create(ctx, model.Customer{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	})
	if err != nil {
		return CreateCustomerOutput{Errors: []FieldError{{Field: fieldAll, Message: err.Error()}}}
	}

	return CreateCustomerOutput{
		Customer: &c,
		Message:  "Customer created successfully",
	}
}

type BulkCreateCustomersOutput struct {
	Customers []model.Customer `json:"customers"`
	Errors    []FieldError     `json:"errors"`
}

// BulkCreateCustomersは1トランザクションで全行を処理する。
// 行単位の失敗はスキップして続行し、成功した行だけコミットする（部分成功）。
func (u *CustomerUsecase) BulkCreateCustomers(ctx context.Context, inputs []CreateCustomerInput) BulkCreateCustomersOutput {
	created := make([]model.Customer, 0, len(inputs))
	var errs []FieldError

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		for i, in := range inputs {
			// 名前
			if strings.TrimSpace(in.Name) == "" {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("customers[%d].name", i),
					Message: "Name cannot be empty",
				})
				continue
			}

			// メール形式
			if !validator.IsEmailLike(in.Email) {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("customers[%d].email", i),
					Message: "Invalid email format",
				})
				continue
			}

			// メール重複（既存行とも同一バッチの作成済み行とも衝突させない）
			exists, err := r.Customers().ExistsByEmail(ctx, in.Email)
			if err != nil {
				return err
			}
			if exists {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("customers[%d].email", i),
					Message: "Email already exists",
				})
				continue
			}

			// 電話形式
			if in.Phone != "" && !validator.IsPhoneLike(in.Phone) {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("customers[%d].phone", i),
					Message: "Invalid phone format",
				})
				continue
			}

			c, err := r.Customers().Create(ctx, model.Customer{
				Name:  in.Name,
				Email: in.Email,
				Phone: in.Phone,
			})
			if err != nil {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("customers[%d]", i),
					Message: err.Error(),
				})
				continue
			}
			created = append(created, c)
		}
		return nil
	})
	if err != nil {
		//トランザクションごと失敗したときは部分成功扱いにしない
		return BulkCreateCustomersOutput{
			Customers: []model.Customer{},
			Errors:    []FieldError{{Field: fieldAll, Message: err.Error()}},
		}
	}

	return BulkCreateCustomersOutput{Customers: created, Errors: errs}
}

type ListCustomersInput struct {
	Name         string
	Email        string
	CreatedAtGte *time.Time
	CreatedAtLte *time.Time
	PhonePattern string // 前方一致（例: "+1"）
}

func (u *CustomerUsecase) ListCustomers(ctx context.Context, in ListCustomersInput) ([]model.Customer, error) {
	return u.customers.List(ctx, repo.CustomerFilter{
		NameContains:  in.Name,
		EmailContains: in.Email,
		CreatedAtGte:  in.CreatedAtGte,
		CreatedAtLte:  in.CreatedAtLte,
		PhonePrefix:   in.PhonePattern,
	})
}

func (u *CustomerUsecase) GetCustomer(ctx context.Context, customerID int64) (model.Customer, error) {
	if customerID <= 0 {
		return model.Customer{}, ErrNotFound
	}

	c, err := u.customers.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return model.Customer{}, ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}
