package service

import (
	"context"
	"fmt"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/model"
	"mall_query_v1/internal/repository"
)

// TransactionService 交易流水查询
type TransactionService struct {
	transactionRepo repository.TransactionRepository
	opts            QueryOptions
}

// NewTransactionService 创建交易服务
func NewTransactionService(transactionRepo repository.TransactionRepository, opts QueryOptions) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo, opts: opts}
}

// ListByDate 指定日期的交易，没有时返回 NotFoundError
func (s *TransactionService) ListByDate(ctx context.Context, date string) ([]dto.TransactionResp, error) {
	from, to, err := s.opts.dayRange(date)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	sheets, err := s.transactionRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("按日期查询交易失败: %w", err)
	}
	if len(sheets) == 0 {
		return nil, NotFound("transactions", "date", date)
	}
	return toTransactions(sheets), nil
}

// ListByPayment 指定付款方式的交易，没有时返回 NotFoundError
func (s *TransactionService) ListByPayment(ctx context.Context, payment string) ([]dto.TransactionResp, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	sheets, err := s.transactionRepo.ListByPayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("按付款方式查询交易失败: %w", err)
	}
	if len(sheets) == 0 {
		return nil, NotFound("transactions", "payment", payment)
	}
	return toTransactions(sheets), nil
}

func toTransactions(sheets []model.ShoppingSheet) []dto.TransactionResp {
	list := make([]dto.TransactionResp, 0, len(sheets))
	for _, sheet := range sheets {
		list = append(list, dto.TransactionResp{
			StoreName: sheet.StoreName,
			Time:      dto.NewDateTime(&sheet.Time),
			Price:     dto.NewMoney(sheet.Price),
			Payment:   sheet.Payment,
		})
	}
	return list
}
