package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goods 商店库存商品，价格在 g_name 表
type Goods struct {
	Name          string `gorm:"column:name;primaryKey;size:100"`
	StoreName     string `gorm:"column:store_name;primaryKey;size:100"`
	StockQuantity int    `gorm:"column:stock_quantity"`
}

func (Goods) TableName() string { return "goods" }

// GoodsPrice 商品名 -> 单价
type GoodsPrice struct {
	Name  string              `gorm:"column:name;primaryKey;size:100"`
	Price decimal.NullDecimal `gorm:"column:price;type:decimal(10,2)"`
}

func (GoodsPrice) TableName() string { return "g_name" }

// PurchaseDetail 进货明细，supplier / goods / time 允许为 NULL
type PurchaseDetail struct {
	SerialNumber int64      `gorm:"column:serial_number;primaryKey;autoIncrement"`
	Supplier     *string    `gorm:"column:supplier;size:100;index"`
	Time         *time.Time `gorm:"column:time;index"`
	StoreName    string     `gorm:"column:store_name;size:100;index"`
	Goods        *string    `gorm:"column:goods;size:100"`
	Amount       int        `gorm:"column:amount"`
}

func (PurchaseDetail) TableName() string { return "purchase_detail" }

// ShoppingSheet 交易流水，一行一笔
type ShoppingSheet struct {
	StoreName string          `gorm:"column:store_name;primaryKey;size:100"`
	Time      time.Time       `gorm:"column:time;primaryKey"`
	Price     decimal.Decimal `gorm:"column:price;type:decimal(10,2)"`
	Payment   string          `gorm:"column:payment;size:50;index"`
}

func (ShoppingSheet) TableName() string { return "shopping_sheet" }
