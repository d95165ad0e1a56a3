package model

// ShoppingMall 分店（商场）
type ShoppingMall struct {
	BranchName    string `gorm:"column:branch_name;primaryKey;size:100"`
	Address       string `gorm:"column:address;size:255"`
	Contact       string `gorm:"column:contact;size:20"`
	BusinessHours string `gorm:"column:business_hours;size:50"`
	FloorArea     int    `gorm:"column:floor_area"`
	WebURL        string `gorm:"column:web_url;size:255"`
}

func (ShoppingMall) TableName() string { return "shopping_mall" }

// Shop 商店，隶属于某个分店
type Shop struct {
	StoreName     string `gorm:"column:store_name;primaryKey;size:100"`
	BranchName    string `gorm:"column:branch_name;size:100;index"`
	FloorLocation string `gorm:"column:floor_location;size:50"`
	Phone         string `gorm:"column:phone;size:20"`
	WebURL        string `gorm:"column:web_url;size:255"`
}

func (Shop) TableName() string { return "shops" }

// Supplier 供应商
type Supplier struct {
	Name    string `gorm:"column:name;primaryKey;size:100"`
	Address string `gorm:"column:address;size:255"`
	Contact string `gorm:"column:contact;size:20"`
}

func (Supplier) TableName() string { return "supplier" }

// All 全部表结构，供 testing 档案和本地开发 AutoMigrate 使用
func All() []interface{} {
	return []interface{}{
		&ShoppingMall{}, &Shop{},
		&Goods{}, &GoodsPrice{},
		&Supplier{}, &PurchaseDetail{},
		&MallEmployee{}, &ShopEmployee{},
		&PromotionalCampaign{},
		&ShoppingSheet{},
	}
}
