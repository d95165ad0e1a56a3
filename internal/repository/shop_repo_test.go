package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mall_query_v1/internal/testutil"
)

func TestShopRepo_ListNames(t *testing.T) {
	repo := NewShopRepository(testutil.NewSeededDB(t))
	ctx := context.Background()

	branches, err := repo.ListBranchNames(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"台北忠孝館", "新竹巨城", "台中廣三", "高雄夢時代"}, branches)

	stores, err := repo.ListStoreNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"商店1", "商店2", "商店3", "商店4", "商店5"}, stores)
}

func TestShopRepo_ListStoreNamesByBranch(t *testing.T) {
	repo := NewShopRepository(testutil.NewSeededDB(t))
	ctx := context.Background()

	stores, err := repo.ListStoreNamesByBranch(ctx, "台北忠孝館")
	require.NoError(t, err)
	assert.Equal(t, []string{"商店1", "商店2", "商店3"}, stores)

	stores, err = repo.ListStoreNamesByBranch(ctx, "高雄夢時代")
	require.NoError(t, err)
	assert.Empty(t, stores)
}

func TestShopRepo_ListGoodsByStore(t *testing.T) {
	repo := NewShopRepository(testutil.NewSeededDB(t))

	rows, err := repo.ListGoodsByStore(context.Background(), "商店1")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byName := map[string]GoodsRow{}
	for _, row := range rows {
		byName[row.Name] = row
	}
	assert.Equal(t, "65", byName["奶茶"].Price.Decimal.String())
	assert.Equal(t, 120, byName["奶茶"].StockQuantity)
	assert.Equal(t, "120.5", byName["蛋糕"].Price.Decimal.String())
	assert.False(t, byName["試吃品"].Price.Valid, "价格为 NULL")
}

func TestShopRepo_GetSupplierByName(t *testing.T) {
	repo := NewShopRepository(testutil.NewSeededDB(t))
	ctx := context.Background()

	supplier, err := repo.GetSupplierByName(ctx, "統一企業")
	require.NoError(t, err)
	assert.Equal(t, "06-2532121", supplier.Contact)

	_, err = repo.GetSupplierByName(ctx, "不存在")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
