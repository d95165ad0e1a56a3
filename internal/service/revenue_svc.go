package service

import (
	"context"
	"fmt"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/repository"
)

// TopStoresLimit 营业额排行返回的商店数
const TopStoresLimit = 10

// RevenueService 营业额统计
type RevenueService struct {
	revenueRepo repository.RevenueRepository
	opts        QueryOptions
}

// NewRevenueService 创建营业额服务
func NewRevenueService(revenueRepo repository.RevenueRepository, opts QueryOptions) *RevenueService {
	return &RevenueService{revenueRepo: revenueRepo, opts: opts}
}

// TopStores 营业额前十的商店
func (s *RevenueService) TopStores(ctx context.Context) ([]dto.StoreRevenueResp, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	rows, err := s.revenueRepo.TopStores(ctx, TopStoresLimit)
	if err != nil {
		return nil, fmt.Errorf("查询营业额排行失败: %w", err)
	}
	return rank(rows), nil
}

// BranchTotal 分店总营业额，没有交易时为 0
func (s *RevenueService) BranchTotal(ctx context.Context, branch string) (*dto.BranchRevenueResp, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	total, err := s.revenueRepo.BranchTotal(ctx, branch)
	if err != nil {
		return nil, fmt.Errorf("查询分店营业额失败: %w", err)
	}
	return &dto.BranchRevenueResp{
		BranchName:   branch,
		TotalRevenue: dto.NewMoney(total),
	}, nil
}

// BranchStores 分店内各商店营业额排名，分店没有商店时返回 NotFoundError
func (s *RevenueService) BranchStores(ctx context.Context, branch string) ([]dto.StoreRevenueResp, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	rows, err := s.revenueRepo.BranchStores(ctx, branch)
	if err != nil {
		return nil, fmt.Errorf("查询分店商店营业额失败: %w", err)
	}
	if len(rows) == 0 {
		return nil, NotFound("revenue data", "branch", branch)
	}
	return rank(rows), nil
}

// rank 按结果顺序编号，从 1 开始，同额也依次递增
func rank(rows []repository.StoreRevenueRow) []dto.StoreRevenueResp {
	list := make([]dto.StoreRevenueResp, 0, len(rows))
	for i, row := range rows {
		list = append(list, dto.StoreRevenueResp{
			Rank:      i + 1,
			StoreName: row.StoreName,
			Revenue:   dto.NewMoney(row.Revenue),
		})
	}
	return list
}
