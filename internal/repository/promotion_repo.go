package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"mall_query_v1/internal/model"
)

// PromotionRepository 促销活动查询
type PromotionRepository interface {
	// ListByStore startAfter 非空时只返回 start_time 晚于该时刻的活动
	ListByStore(ctx context.Context, storeName string, startAfter *time.Time) ([]model.PromotionalCampaign, error)
	ListByMethod(ctx context.Context, method string) ([]model.PromotionalCampaign, error)
	// ListOverlapping 与 [from, to) 有交集的活动
	ListOverlapping(ctx context.Context, from, to time.Time) ([]model.PromotionalCampaign, error)
}

type promotionRepo struct {
	db *gorm.DB
}

// NewPromotionRepository 创建促销仓储
func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepo{db: db}
}

func (r *promotionRepo) ListByStore(ctx context.Context, storeName string, startAfter *time.Time) ([]model.PromotionalCampaign, error) {
	query := r.db.WithContext(ctx).Where("store_name = ?", storeName)
	if startAfter != nil {
		query = query.Where("start_time > ?", timeArg(r.db, *startAfter))
	}

	var list []model.PromotionalCampaign
	err := query.Order("start_time, name").Find(&list).Error
	return list, err
}

func (r *promotionRepo) ListByMethod(ctx context.Context, method string) ([]model.PromotionalCampaign, error) {
	var list []model.PromotionalCampaign
	err := r.db.WithContext(ctx).
		Where("method = ?", method).
		Order("start_time, store_name, name").
		Find(&list).Error
	return list, err
}

func (r *promotionRepo) ListOverlapping(ctx context.Context, from, to time.Time) ([]model.PromotionalCampaign, error) {
	var list []model.PromotionalCampaign
	err := r.db.WithContext(ctx).
		Where("start_time < ? AND end_time >= ?", timeArg(r.db, to), timeArg(r.db, from)).
		Order("start_time, store_name, name").
		Find(&list).Error
	return list, err
}
