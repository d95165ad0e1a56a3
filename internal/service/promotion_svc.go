package service

import (
	"context"
	"fmt"
	"time"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/model"
	"mall_query_v1/internal/repository"
)

// PromotionService 促销活动查询
type PromotionService struct {
	promotionRepo repository.PromotionRepository
	opts          QueryOptions
}

// NewPromotionService 创建促销服务
func NewPromotionService(promotionRepo repository.PromotionRepository, opts QueryOptions) *PromotionService {
	return &PromotionService{promotionRepo: promotionRepo, opts: opts}
}

// ListShopPromotions 商店促销；upcoming 为 true 时只返回今天 00:00 之后开始的活动
func (s *PromotionService) ListShopPromotions(ctx context.Context, shopName string, upcoming bool) ([]dto.ShopPromotionResp, error) {
	var startAfter *time.Time
	if upcoming {
		today := s.opts.startOfToday()
		startAfter = &today
	}

	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	campaigns, err := s.promotionRepo.ListByStore(ctx, shopName, startAfter)
	if err != nil {
		return nil, fmt.Errorf("查询商店促销失败: %w", err)
	}

	list := make([]dto.ShopPromotionResp, 0, len(campaigns))
	for _, c := range campaigns {
		list = append(list, dto.ShopPromotionResp{
			Name:      c.Name,
			StartTime: dto.NewDateTime(c.StartTime),
			EndTime:   dto.NewDateTime(c.EndTime),
			Method:    c.Method,
		})
	}
	return list, nil
}

// ListByMethod 按促销方式查询，没有时返回 NotFoundError
func (s *PromotionService) ListByMethod(ctx context.Context, method string) ([]dto.MethodPromotionResp, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	campaigns, err := s.promotionRepo.ListByMethod(ctx, method)
	if err != nil {
		return nil, fmt.Errorf("按方式查询促销失败: %w", err)
	}
	if len(campaigns) == 0 {
		return nil, NotFound("promotions", "method", method)
	}

	list := make([]dto.MethodPromotionResp, 0, len(campaigns))
	for _, c := range campaigns {
		list = append(list, dto.MethodPromotionResp{
			StoreName:     c.StoreName,
			PromotionName: c.Name,
			StartTime:     dto.NewDateTime(c.StartTime),
			EndTime:       dto.NewDateTime(c.EndTime),
		})
	}
	return list, nil
}

// ListByDate 在指定日期进行中的促销，没有时返回 NotFoundError
func (s *PromotionService) ListByDate(ctx context.Context, date string) ([]dto.DatePromotionResp, error) {
	from, to, err := s.opts.dayRange(date)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	campaigns, err := s.promotionRepo.ListOverlapping(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("按日期查询促销失败: %w", err)
	}
	if len(campaigns) == 0 {
		return nil, NotFound("promotions", "date", date)
	}

	return toDatePromotions(campaigns), nil
}

func toDatePromotions(campaigns []model.PromotionalCampaign) []dto.DatePromotionResp {
	list := make([]dto.DatePromotionResp, 0, len(campaigns))
	for _, c := range campaigns {
		list = append(list, dto.DatePromotionResp{
			StoreName:     c.StoreName,
			PromotionName: c.Name,
			StartTime:     dto.NewDateTime(c.StartTime),
			EndTime:       dto.NewDateTime(c.EndTime),
			Method:        c.Method,
		})
	}
	return list
}
