package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall_query_v1/internal/testutil"
)

func TestPromotionRepo_ListByStore(t *testing.T) {
	repo := NewPromotionRepository(testutil.NewSeededDB(t))
	ctx := context.Background()

	list, err := repo.ListByStore(ctx, "商店1", nil)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "週年慶", list[0].Name)
	assert.Equal(t, "新春特賣", list[1].Name)

	cutoff := testutil.At(2025, 1, 1, 0, 0, 0)
	list, err = repo.ListByStore(ctx, "商店1", &cutoff)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "新春特賣", list[0].Name)
}

func TestPromotionRepo_ListByMethod(t *testing.T) {
	repo := NewPromotionRepository(testutil.NewSeededDB(t))

	list, err := repo.ListByMethod(context.Background(), "滿千送百")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "商店1", list[0].StoreName)
	assert.Equal(t, "商店2", list[1].StoreName)
}

func TestPromotionRepo_ListOverlapping(t *testing.T) {
	repo := NewPromotionRepository(testutil.NewSeededDB(t))
	ctx := context.Background()

	tests := []struct {
		name string
		day  int
		want int
	}{
		{"只有商店1", 10, 1},
		{"两店重叠", 20, 2},
		{"结束当天仍算", 31, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from := testutil.At(2024, 10, tt.day, 0, 0, 0)
			list, err := repo.ListOverlapping(ctx, from, from.AddDate(0, 0, 1))
			require.NoError(t, err)
			assert.Len(t, list, tt.want)
		})
	}

	from := testutil.At(2024, 11, 16, 0, 0, 0)
	list, err := repo.ListOverlapping(ctx, from, from.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPromotionRepo_ListOverlapping_NonUTC(t *testing.T) {
	repo := NewPromotionRepository(testutil.NewSeededDB(t))
	taipei, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	// 商店2 週年慶 11-15 23:59:59Z 结束，台北时间已是 11-16
	from := time.Date(2024, 11, 16, 0, 0, 0, 0, taipei)
	list, err := repo.ListOverlapping(context.Background(), from, from.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "商店2", list[0].StoreName)
}
