package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall_query_v1/internal/model"
	"mall_query_v1/internal/testutil"
)

func TestEmployeeRepo_ListByStore(t *testing.T) {
	repo := NewEmployeeRepository(testutil.NewSeededDB(t))

	list, err := repo.ListByStore(context.Background(), "商店1")
	require.NoError(t, err)
	require.Len(t, list, 3)

	for _, e := range list {
		switch e.Name {
		case "王小明":
			assert.True(t, e.ShiftTime.Valid)
			assert.Equal(t, "09:00", e.ShiftTime.StartText())
		case "陳家琪":
			assert.Equal(t, "11:00~21:30", e.ShiftTime.Hours())
		case "李四":
			assert.True(t, e.ShiftTime.Malformed())
			assert.Equal(t, "all day", e.ShiftTime.Raw)
		}
	}

	list, err = repo.ListByStore(context.Background(), "不存在的商店")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEmployeeRepo_ListByBranch(t *testing.T) {
	repo := NewEmployeeRepository(testutil.NewSeededDB(t))

	list, err := repo.ListByBranch(context.Background(), "台北忠孝館")
	require.NoError(t, err)
	require.Len(t, list, 2)

	list, err = repo.ListByBranch(context.Background(), "台中廣三")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEmployeeRepo_ListByPosition(t *testing.T) {
	repo := NewEmployeeRepository(testutil.NewSeededDB(t))

	rows, err := repo.ListByPosition(context.Background(), "保全")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	locations := map[string]string{}
	for _, row := range rows {
		locations[row.Name] = row.Location
		assert.True(t, row.ShiftTime.Valid, row.Name)
	}
	assert.Equal(t, map[string]string{
		"夜班員": "台北忠孝館",
		"林士昇": "新竹巨城",
		"張三":  "商店2",
	}, locations)
}

func TestEmployeeRepo_ListByPosition_Order(t *testing.T) {
	db := testutil.NewDB(t)
	// 插入顺序与期望顺序相反
	require.NoError(t, db.Create([]model.ShopEmployee{
		{Name: "Zed", Position: "guard", StoreName: "商店1"},
		{Name: "Amy", Position: "guard", StoreName: "商店2"},
	}).Error)
	require.NoError(t, db.Create([]model.MallEmployee{
		{Name: "Yan", Position: "guard", BranchName: "台北忠孝館"},
		{Name: "Bob", Position: "guard", BranchName: "新竹巨城"},
	}).Error)

	repo := NewEmployeeRepository(db)
	for i := 0; i < 3; i++ {
		rows, err := repo.ListByPosition(context.Background(), "guard")
		require.NoError(t, err)

		names := make([]string, 0, len(rows))
		for _, row := range rows {
			names = append(names, row.Name)
		}
		assert.Equal(t, []string{"Bob", "Yan", "Amy", "Zed"}, names)
		assert.Equal(t, "新竹巨城", rows[0].Location)
		assert.Equal(t, "商店2", rows[2].Location)
	}
}
