package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"mall_query_v1/internal/model"
)

// ==================== 接口定义 ====================

// ShopRepository 分店、商店、商品与供应商查询
type ShopRepository interface {
	ListBranchNames(ctx context.Context) ([]string, error)
	ListStoreNames(ctx context.Context) ([]string, error)
	ListStoreNamesByBranch(ctx context.Context, branch string) ([]string, error)
	ListGoodsByStore(ctx context.Context, storeName string) ([]GoodsRow, error)
	GetSupplierByName(ctx context.Context, name string) (*model.Supplier, error)
}

// GoodsRow goods JOIN g_name 的结果行
type GoodsRow struct {
	Name          string              `gorm:"column:name"`
	Price         decimal.NullDecimal `gorm:"column:price"`
	StockQuantity int                 `gorm:"column:stock_quantity"`
}

// ==================== 仓储实现 ====================

type shopRepo struct {
	db *gorm.DB
}

// NewShopRepository 创建商店仓储
func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepo{db: db}
}

func (r *shopRepo) ListBranchNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&model.ShoppingMall{}).
		Distinct().
		Order("branch_name").
		Pluck("branch_name", &names).Error
	return names, err
}

func (r *shopRepo) ListStoreNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&model.Shop{}).
		Distinct().
		Order("store_name").
		Pluck("store_name", &names).Error
	return names, err
}

func (r *shopRepo) ListStoreNamesByBranch(ctx context.Context, branch string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&model.Shop{}).
		Where("branch_name = ?", branch).
		Order("store_name").
		Pluck("store_name", &names).Error
	return names, err
}

func (r *shopRepo) ListGoodsByStore(ctx context.Context, storeName string) ([]GoodsRow, error) {
	var rows []GoodsRow
	err := r.db.WithContext(ctx).
		Table("goods").
		Select("goods.name, g_name.price, goods.stock_quantity").
		Joins("JOIN g_name ON g_name.name = goods.name").
		Where("goods.store_name = ?", storeName).
		Order("goods.name").
		Scan(&rows).Error
	return rows, err
}

// GetSupplierByName 不存在时返回 gorm.ErrRecordNotFound
func (r *shopRepo) GetSupplierByName(ctx context.Context, name string) (*model.Supplier, error) {
	var supplier model.Supplier
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&supplier).Error; err != nil {
		return nil, err
	}
	return &supplier, nil
}
