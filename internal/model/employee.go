package model

// MallEmployee 分店（商场）层级员工
type MallEmployee struct {
	Name       string    `gorm:"column:name;primaryKey;size:100"`
	Contact    string    `gorm:"column:contact;size:20"`
	Position   string    `gorm:"column:position;size:50;index"`
	ShiftTime  ShiftTime `gorm:"column:shift_time;size:50"`
	BranchName string    `gorm:"column:branch_name;primaryKey;size:100"`
}

func (MallEmployee) TableName() string { return "mall_employee" }

// ShopEmployee 商店层级员工
type ShopEmployee struct {
	Name      string    `gorm:"column:name;primaryKey;size:100"`
	Contact   string    `gorm:"column:contact;size:20"`
	Position  string    `gorm:"column:position;size:50;index"`
	ShiftTime ShiftTime `gorm:"column:shift_time;size:50"`
	StoreName string    `gorm:"column:store_name;primaryKey;size:100"`
}

func (ShopEmployee) TableName() string { return "shop_employee" }
