// Package testutil 测试用的内存数据库与固定数据
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mall_query_v1/internal/model"
)

// NewDB 创建独立的内存 SQLite 并建表，不写入数据
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	// 内存库只在连接存活期间存在
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

// NewSeededDB 创建内存库并写入 Seed 数据
func NewSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := NewDB(t)
	if err := Seed(db); err != nil {
		t.Fatalf("写入测试数据失败: %v", err)
	}
	return db
}

// At 构造 UTC 时间
func At(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func shift(raw string) model.ShiftTime {
	s, _ := model.ParseShiftTime(raw)
	return s
}

// ==================== 固定数据 ====================
//
// 分店: 台北忠孝館(商店1/2/3) 新竹巨城(商店4) 台中廣三(商店5, 无员工) 高雄夢時代(无商店)
// 营业额: 商店1 300.50, 商店2 300.50, 商店4 50.00, 商店3/5 无交易
// 班次: 李四 为格式错误的班次

// Seed 写入固定测试数据
func Seed(db *gorm.DB) error {
	records := []interface{}{
		&[]model.ShoppingMall{
			{BranchName: "台北忠孝館", Address: "台北市大安區忠孝東路四段45號", Contact: "02-27713171", BusinessHours: "11:00~21:30", FloorArea: 12000},
			{BranchName: "新竹巨城", Address: "新竹市東區中央路229號", Contact: "03-5346666", BusinessHours: "11:00~22:00", FloorArea: 30000},
			{BranchName: "台中廣三", Address: "台中市西區台灣大道二段459號", Contact: "04-23255558", BusinessHours: "11:00~21:30", FloorArea: 15000},
			{BranchName: "高雄夢時代", Address: "高雄市前鎮區中華五路789號", Contact: "07-9733888", BusinessHours: "11:00~22:00", FloorArea: 40000},
		},
		&[]model.Shop{
			{StoreName: "商店1", BranchName: "台北忠孝館", FloorLocation: "B1", Phone: "02-27711111"},
			{StoreName: "商店2", BranchName: "台北忠孝館", FloorLocation: "1F", Phone: "02-27712222"},
			{StoreName: "商店3", BranchName: "台北忠孝館", FloorLocation: "2F", Phone: "02-27713333"},
			{StoreName: "商店4", BranchName: "新竹巨城", FloorLocation: "3F", Phone: "03-5344444"},
			{StoreName: "商店5", BranchName: "台中廣三", FloorLocation: "4F", Phone: "04-23255555"},
		},
		&[]model.GoodsPrice{
			{Name: "奶茶", Price: decimal.NewNullDecimal(money("65.00"))},
			{Name: "蛋糕", Price: decimal.NewNullDecimal(money("120.50"))},
			{Name: "試吃品"},
		},
		&[]model.Goods{
			{Name: "奶茶", StoreName: "商店1", StockQuantity: 120},
			{Name: "蛋糕", StoreName: "商店1", StockQuantity: 10},
			{Name: "試吃品", StoreName: "商店1", StockQuantity: 3},
			{Name: "奶茶", StoreName: "商店2", StockQuantity: 30},
		},
		&[]model.Supplier{
			{Name: "統一企業", Address: "台南市永康區中正路301號", Contact: "06-2532121"},
		},
		&[]model.PurchaseDetail{
			{SerialNumber: 1, Supplier: ptr("統一企業"), Time: ptr(At(2024, 1, 5, 9, 30, 0)), StoreName: "商店1", Goods: ptr("奶茶"), Amount: 50},
			{SerialNumber: 2, Supplier: ptr("統一企業"), Time: ptr(time.Date(2024, 1, 5, 23, 59, 59, 500_000_000, time.UTC)), StoreName: "商店2", Goods: ptr("奶茶"), Amount: 20},
			{SerialNumber: 3, Time: ptr(At(2024, 1, 6, 0, 0, 0)), StoreName: "商店1", Goods: ptr("蛋糕"), Amount: 5},
		},
		&[]model.MallEmployee{
			{Name: "陳智偉", Contact: "0966-466166", Position: "店長", ShiftTime: shift("11:00-21:30"), BranchName: "台北忠孝館"},
			{Name: "夜班員", Contact: "0911-222333", Position: "保全", ShiftTime: shift("22:00-06:00"), BranchName: "台北忠孝館"},
			{Name: "林士昇", Contact: "0966-487512", Position: "保全", ShiftTime: shift("09:00-18:00"), BranchName: "新竹巨城"},
		},
		&[]model.ShopEmployee{
			{Name: "王小明", Contact: "0987-654321", Position: "員工", ShiftTime: shift("09:00-18:00"), StoreName: "商店1"},
			{Name: "陳家琪", Contact: "0932-425789", Position: "店長", ShiftTime: shift("11:00~21:30"), StoreName: "商店1"},
			{Name: "李四", Contact: "0900-000000", Position: "員工", ShiftTime: model.ShiftTime{Raw: "all day"}, StoreName: "商店1"},
			{Name: "張三", Contact: "0922-333444", Position: "保全", ShiftTime: shift("13:00-22:00"), StoreName: "商店2"},
		},
		&[]model.PromotionalCampaign{
			{StoreName: "商店1", Name: "週年慶", StartTime: ptr(At(2024, 10, 1, 0, 0, 0)), EndTime: ptr(At(2024, 10, 31, 23, 59, 59)), Method: "滿千送百"},
			{StoreName: "商店1", Name: "新春特賣", StartTime: ptr(At(2099, 1, 1, 0, 0, 0)), EndTime: ptr(At(2099, 1, 31, 23, 59, 59)), Method: "全館八折"},
			{StoreName: "商店2", Name: "週年慶", StartTime: ptr(At(2024, 10, 15, 0, 0, 0)), EndTime: ptr(At(2024, 11, 15, 23, 59, 59)), Method: "滿千送百"},
		},
		&[]model.ShoppingSheet{
			{StoreName: "商店1", Time: At(2023, 1, 1, 10, 0, 0), Price: money("100.00"), Payment: "cash"},
			{StoreName: "商店1", Time: At(2023, 1, 2, 12, 0, 0), Price: money("200.50"), Payment: "card"},
			{StoreName: "商店2", Time: At(2023, 1, 2, 9, 0, 0), Price: money("300.50"), Payment: "cash"},
			{StoreName: "商店4", Time: At(2023, 1, 3, 11, 0, 0), Price: money("50.00"), Payment: "card"},
		},
	}

	for _, r := range records {
		if err := db.Create(r).Error; err != nil {
			return err
		}
	}
	return nil
}
