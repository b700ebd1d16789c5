package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/domain/model"
	repo "github.com/EinsteinDipondo/alx-backend-graphql-crm/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Customer)
	return created, args.Error(1)
}

func (m *CustomerRepoMock) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) List(ctx context.Context, f repo.CustomerFilter) ([]model.Customer, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Customer)
	return items, args.Error(1)
}

func (m *CustomerRepoMock) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) List(ctx context.Context, f repo.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (model.Order, error) {
	args := m.Called(ctx, order)
	created, _ := args.Get(0).(model.Order)
	return created, args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context, f repo.OrderFilter) ([]model.Order, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) ListIDsBelowStock(ctx context.Context, threshold int64) ([]int64, error) {
	args := m.Called(ctx, threshold)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *InventoryRepoMock) IncrementStockByIDs(ctx context.Context, ids []int64, delta int64) (int64, error) {
	args := m.Called(ctx, ids, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *InventoryRepoMock) DecrementStockClamped(ctx context.Context, productID int64, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

func (m *InventoryRepoMock) CreateAdjustments(ctx context.Context, adjs []model.StockAdjustment) error {
	args := m.Called(ctx, adjs)
	return args.Error(0)
}

// =====================
// TransactionManagerの代役
// =====================

type txReposStub struct {
	customers repo.CustomerRepository
	products  repo.ProductRepository
	orders    repo.OrderRepository
	inventory repo.InventoryRepository
}

func (r txReposStub) Customers() repo.CustomerRepository  { return r.customers }
func (r txReposStub) Products() repo.ProductRepository    { return r.products }
func (r txReposStub) Orders() repo.OrderRepository        { return r.orders }
func (r txReposStub) Inventory() repo.InventoryRepository { return r.inventory }

// fnをそのまま実行するだけ。beginErrを入れるとトランザクション開始の失敗を再現する。
type txManagerStub struct {
	repos    txReposStub
	beginErr error
}

func (m *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	if m.beginErr != nil {
		return m.beginErr
	}
	return fn(m.repos)
}

// =====================
// 在庫つきインメモリ実装（相対更新の検証用）
// =====================

// inventoryFakeは在庫テーブルの振る舞いを状態ごと再現する。
// 並行実行テストで使うのでmutexで守る。
type inventoryFake struct {
	mu    sync.Mutex
	stock map[int64]int64
	adjs  []model.StockAdjustment
}

func newInventoryFake(stock map[int64]int64) *inventoryFake {
	return &inventoryFake{stock: stock}
}

func (f *inventoryFake) ListIDsBelowStock(ctx context.Context, threshold int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var ids []int64
	for id, s := range f.stock {
		if s < threshold {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *inventoryFake) IncrementStockByIDs(ctx context.Context, ids []int64, delta int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, id := range ids {
		if _, ok := f.stock[id]; ok {
			f.stock[id] += delta
			n++
		}
	}
	return n, nil
}

func (f *inventoryFake) DecrementStockClamped(ctx context.Context, productID int64, qty int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.stock[productID]
	if !ok {
		return repo.ErrNotFound
	}
	s -= qty
	if s < 0 {
		s = 0
	}
	f.stock[productID] = s
	return nil
}

func (f *inventoryFake) CreateAdjustments(ctx context.Context, adjs []model.StockAdjustment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.adjs = append(f.adjs, adjs...)
	return nil
}

func (f *inventoryFake) stockOf(id int64) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stock[id]
}

func (f *inventoryFake) adjustmentsFor(id int64) []model.StockAdjustment {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.StockAdjustment
	for _, a := range f.adjs {
		if a.ProductID == id {
			out = append(out, a)
		}
	}
	return out
}

// productFakeはinventoryFakeの在庫を読むProductRepository。
// ReplenishLowStockのテストで「加算後の値の読み直し」に使う。
type productFake struct {
	inv   *inventoryFake
	names map[int64]string
}

func (f *productFake) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in replenish tests")
}

func (f *productFake) FindByID(ctx context.Context, id int64) (model.Product, error) {
	panic("not used in replenish tests")
}

func (f *productFake) FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	f.inv.mu.Lock()
	defer f.inv.mu.Unlock()

	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Product{ID: id, Name: f.names[id], Stock: f.inv.stock[id]})
	}
	return out, nil
}

func (f *productFake) List(ctx context.Context, f2 repo.ProductFilter) ([]model.Product, error) {
	panic("not used in replenish tests")
}
