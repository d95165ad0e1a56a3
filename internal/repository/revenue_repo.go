package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RevenueRepository 营业额聚合，SUM 由数据库计算
type RevenueRepository interface {
	TopStores(ctx context.Context, limit int) ([]StoreRevenueRow, error)
	BranchTotal(ctx context.Context, branch string) (decimal.Decimal, error)
	BranchStores(ctx context.Context, branch string) ([]StoreRevenueRow, error)
}

// StoreRevenueRow 单店营业额
type StoreRevenueRow struct {
	StoreName string          `gorm:"column:store_name"`
	Revenue   decimal.Decimal `gorm:"column:revenue"`
}

type revenueRepo struct {
	db *gorm.DB
}

// NewRevenueRepository 创建营业额仓储
func NewRevenueRepository(db *gorm.DB) RevenueRepository {
	return &revenueRepo{db: db}
}

// TopStores 营业额降序，同额按 store_name 升序
func (r *revenueRepo) TopStores(ctx context.Context, limit int) ([]StoreRevenueRow, error) {
	var rows []StoreRevenueRow
	err := r.db.WithContext(ctx).
		Table("shopping_sheet").
		Select("store_name, SUM(price) AS revenue").
		Group("store_name").
		Order("revenue DESC, store_name ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// BranchTotal 分店下所有商店的营业额合计，无交易时为 0
func (r *revenueRepo) BranchTotal(ctx context.Context, branch string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Table("shopping_sheet").
		Select("COALESCE(SUM(shopping_sheet.price), 0)").
		Joins("JOIN shops ON shops.store_name = shopping_sheet.store_name").
		Where("shops.branch_name = ?", branch).
		Row().
		Scan(&total)
	return total, err
}

// BranchStores 分店下每家商店的营业额，无交易的商店记为 0
func (r *revenueRepo) BranchStores(ctx context.Context, branch string) ([]StoreRevenueRow, error) {
	var rows []StoreRevenueRow
	err := r.db.WithContext(ctx).
		Table("shops").
		Select("shops.store_name AS store_name, COALESCE(SUM(shopping_sheet.price), 0) AS revenue").
		Joins("LEFT JOIN shopping_sheet ON shopping_sheet.store_name = shops.store_name").
		Where("shops.branch_name = ?", branch).
		Group("shops.store_name").
		Order("revenue DESC, shops.store_name ASC").
		Scan(&rows).Error
	return rows, err
}
