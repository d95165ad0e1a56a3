package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"mall_query_v1/internal/model"
)

// PurchaseRepository 进货明细查询
type PurchaseRepository interface {
	ListByStore(ctx context.Context, storeName string) ([]model.PurchaseDetail, error)
	// ListBetween time 落在 [from, to) 的明细
	ListBetween(ctx context.Context, from, to time.Time) ([]model.PurchaseDetail, error)
}

type purchaseRepo struct {
	db *gorm.DB
}

// NewPurchaseRepository 创建进货明细仓储
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db: db}
}

func (r *purchaseRepo) ListByStore(ctx context.Context, storeName string) ([]model.PurchaseDetail, error) {
	var list []model.PurchaseDetail
	err := r.db.WithContext(ctx).
		Where("store_name = ?", storeName).
		Order("time, serial_number").
		Find(&list).Error
	return list, err
}

func (r *purchaseRepo) ListBetween(ctx context.Context, from, to time.Time) ([]model.PurchaseDetail, error) {
	var list []model.PurchaseDetail
	err := r.db.WithContext(ctx).
		Where("time >= ? AND time < ?", timeArg(r.db, from), timeArg(r.db, to)).
		Order("time, serial_number").
		Find(&list).Error
	return list, err
}
