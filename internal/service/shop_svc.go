package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/repository"
)

// ShopService 分店、商店、商品与供应商查询
type ShopService struct {
	shopRepo repository.ShopRepository
	opts     QueryOptions
}

// NewShopService 创建商店服务
func NewShopService(shopRepo repository.ShopRepository, opts QueryOptions) *ShopService {
	return &ShopService{shopRepo: shopRepo, opts: opts}
}

// ListBranches 全部分店名
func (s *ShopService) ListBranches(ctx context.Context) ([]string, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	names, err := s.shopRepo.ListBranchNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询分店列表失败: %w", err)
	}
	return nonNil(names), nil
}

// ListStores 全部商店名
func (s *ShopService) ListStores(ctx context.Context) ([]string, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	names, err := s.shopRepo.ListStoreNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询商店列表失败: %w", err)
	}
	return nonNil(names), nil
}

// ListStoresByBranch 分店下的商店名，没有时返回空列表
func (s *ShopService) ListStoresByBranch(ctx context.Context, branch string) ([]string, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	names, err := s.shopRepo.ListStoreNamesByBranch(ctx, branch)
	if err != nil {
		return nil, fmt.Errorf("查询分店商店失败: %w", err)
	}
	return nonNil(names), nil
}

// ListGoods 商店商品及单价
func (s *ShopService) ListGoods(ctx context.Context, shopName string) ([]dto.GoodsResp, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	rows, err := s.shopRepo.ListGoodsByStore(ctx, shopName)
	if err != nil {
		return nil, fmt.Errorf("查询商店商品失败: %w", err)
	}

	list := make([]dto.GoodsResp, 0, len(rows))
	for _, row := range rows {
		list = append(list, dto.GoodsResp{
			Name:  row.Name,
			Price: dto.NullableMoney(row.Price),
			Stock: row.StockQuantity,
		})
	}
	return list, nil
}

// GetSupplier 按名称查询供应商
func (s *ShopService) GetSupplier(ctx context.Context, name string) (*dto.SupplierResp, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	supplier, err := s.shopRepo.GetSupplierByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSupplierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("查询供应商失败: %w", err)
	}

	return &dto.SupplierResp{
		Name:    supplier.Name,
		Address: supplier.Address,
		Contact: supplier.Contact,
	}, nil
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
