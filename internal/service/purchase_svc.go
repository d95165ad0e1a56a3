package service

import (
	"context"
	"fmt"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/repository"
)

// PurchaseService 进货明细查询
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	opts         QueryOptions
}

// NewPurchaseService 创建进货明细服务
func NewPurchaseService(purchaseRepo repository.PurchaseRepository, opts QueryOptions) *PurchaseService {
	return &PurchaseService{purchaseRepo: purchaseRepo, opts: opts}
}

// ListShopPurchases 商店进货明细，没有时返回空列表
func (s *PurchaseService) ListShopPurchases(ctx context.Context, shopName string) ([]dto.ShopPurchaseResp, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	details, err := s.purchaseRepo.ListByStore(ctx, shopName)
	if err != nil {
		return nil, fmt.Errorf("查询商店进货明细失败: %w", err)
	}

	list := make([]dto.ShopPurchaseResp, 0, len(details))
	for _, d := range details {
		list = append(list, dto.ShopPurchaseResp{
			SerialNumber: d.SerialNumber,
			Supplier:     d.Supplier,
			Time:         dto.NewDateTime(d.Time),
			Goods:        d.Goods,
			Amount:       d.Amount,
		})
	}
	return list, nil
}

// ListByDate 指定日期的进货明细，没有时返回 NotFoundError
func (s *PurchaseService) ListByDate(ctx context.Context, date string) ([]dto.DatePurchaseResp, error) {
	from, to, err := s.opts.dayRange(date)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	details, err := s.purchaseRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("按日期查询进货明细失败: %w", err)
	}
	if len(details) == 0 {
		return nil, NotFound("purchase details", "date", date)
	}

	list := make([]dto.DatePurchaseResp, 0, len(details))
	for _, d := range details {
		list = append(list, dto.DatePurchaseResp{
			SerialNumber: d.SerialNumber,
			StoreName:    d.StoreName,
			Supplier:     d.Supplier,
			Time:         dto.NewDateTime(d.Time),
			Goods:        d.Goods,
			Amount:       d.Amount,
		})
	}
	return list, nil
}
