package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall_query_v1/internal/testutil"
)

func TestPurchaseRepo_ListByStore(t *testing.T) {
	repo := NewPurchaseRepository(testutil.NewSeededDB(t))

	list, err := repo.ListByStore(context.Background(), "商店1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].SerialNumber)
	assert.Equal(t, int64(3), list[1].SerialNumber)
	assert.Nil(t, list[1].Supplier)
}

func TestPurchaseRepo_ListBetween(t *testing.T) {
	repo := NewPurchaseRepository(testutil.NewSeededDB(t))

	from := testutil.At(2024, 1, 5, 0, 0, 0)
	list, err := repo.ListBetween(context.Background(), from, from.AddDate(0, 0, 1))
	require.NoError(t, err)

	// 23:59:59.5 属于当天，次日 00:00:00 不属于
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].SerialNumber)
	assert.Equal(t, int64(2), list[1].SerialNumber)
}

func TestPurchaseRepo_ListBetween_NonUTC(t *testing.T) {
	repo := NewPurchaseRepository(testutil.NewSeededDB(t))
	taipei, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	// 台北 2024-01-06 = [01-05 16:00Z, 01-06 16:00Z)
	from := time.Date(2024, 1, 6, 0, 0, 0, 0, taipei)
	list, err := repo.ListBetween(context.Background(), from, from.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].SerialNumber)
	assert.Equal(t, int64(3), list[1].SerialNumber)
}
