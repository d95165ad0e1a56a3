package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall_query_v1/internal/testutil"
)

func TestRevenueRepo_TopStores(t *testing.T) {
	repo := NewRevenueRepository(testutil.NewSeededDB(t))

	rows, err := repo.TopStores(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// 商店1 与 商店2 同为 300.50，按名称升序
	assert.Equal(t, "商店1", rows[0].StoreName)
	assert.Equal(t, "300.5", rows[0].Revenue.String())
	assert.Equal(t, "商店2", rows[1].StoreName)
	assert.Equal(t, "商店4", rows[2].StoreName)

	rows, err = repo.TopStores(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRevenueRepo_BranchTotal(t *testing.T) {
	repo := NewRevenueRepository(testutil.NewSeededDB(t))
	ctx := context.Background()

	total, err := repo.BranchTotal(ctx, "台北忠孝館")
	require.NoError(t, err)
	assert.Equal(t, "601", total.String())

	total, err = repo.BranchTotal(ctx, "台中廣三")
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestRevenueRepo_BranchStores(t *testing.T) {
	repo := NewRevenueRepository(testutil.NewSeededDB(t))
	ctx := context.Background()

	rows, err := repo.BranchStores(ctx, "台北忠孝館")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "商店1", rows[0].StoreName)
	assert.Equal(t, "商店2", rows[1].StoreName)
	assert.Equal(t, "商店3", rows[2].StoreName)
	assert.True(t, rows[2].Revenue.IsZero())

	rows, err = repo.BranchStores(ctx, "高雄夢時代")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
