package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"mall_query_v1/internal/model"
)

// TransactionRepository 交易流水查询，结果按 time, store_name 升序
type TransactionRepository interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]model.ShoppingSheet, error)
	ListByPayment(ctx context.Context, payment string) ([]model.ShoppingSheet, error)
}

type transactionRepo struct {
	db *gorm.DB
}

// NewTransactionRepository 创建交易仓储
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) ListBetween(ctx context.Context, from, to time.Time) ([]model.ShoppingSheet, error) {
	var list []model.ShoppingSheet
	err := r.db.WithContext(ctx).
		Where("time >= ? AND time < ?", timeArg(r.db, from), timeArg(r.db, to)).
		Order("time, store_name").
		Find(&list).Error
	return list, err
}

func (r *transactionRepo) ListByPayment(ctx context.Context, payment string) ([]model.ShoppingSheet, error) {
	var list []model.ShoppingSheet
	err := r.db.WithContext(ctx).
		Where("payment = ?", payment).
		Order("time, store_name").
		Find(&list).Error
	return list, err
}
