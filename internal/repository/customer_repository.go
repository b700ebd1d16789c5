package repository

import (
	"context"
	"time"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"
)

// 一覧検索の条件（部分一致・登録日の範囲・電話番号の前方一致）
type CustomerFilter struct {
	NameContains  string
	EmailContains string
	CreatedAtGte  *time.Time
	CreatedAtLte  *time.Time
	PhonePrefix   string
}

// 顧客の永続化（保存・取得）だけを約束。
type CustomerRepository interface {
	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)
	List(ctx context.Context, f CustomerFilter) ([]model.Customer, error)

	//メール重複チェック用
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
