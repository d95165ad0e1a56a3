package dto

// ==================== 查询参数 DTO ====================
// binding 规则由 gin 的校验器执行，label 为错误信息中的字段名

// ShopQuery 按商店查询
type ShopQuery struct {
	ShopName string `form:"shop_name" binding:"required" label:"Shop name"`
}

// ShopPromotionQuery 商店促销查询，upcoming=true 只看今天之后开始的活动
type ShopPromotionQuery struct {
	ShopName string `form:"shop_name" binding:"required" label:"Shop name"`
	Upcoming string `form:"upcoming" binding:"omitempty,boolean" label:"Upcoming"`
}

// OnDutyQuery 某时刻在班员工查询
type OnDutyQuery struct {
	ShopName string `form:"shop_name" binding:"required" label:"Shop name"`
	Time     string `form:"time" binding:"required,datetime=15:04" label:"Time"`
}

// BranchQuery 按分店查询
type BranchQuery struct {
	Branch string `form:"branch" binding:"required" label:"Branch name"`
}

// PositionQuery 按职位查询
type PositionQuery struct {
	Position string `form:"position" binding:"required" label:"Position"`
}

// MethodQuery 按促销方式查询
type MethodQuery struct {
	Method string `form:"method" binding:"required" label:"Promotion method"`
}

// DateQuery 按日期查询
type DateQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02" label:"Date"`
}

// SupplierQuery 供应商查询
type SupplierQuery struct {
	SupplierName string `form:"supplier_name" binding:"required" label:"Supplier name"`
}

// PaymentQuery 按付款方式查询
type PaymentQuery struct {
	Payment string `form:"payment" binding:"required" label:"Payment method"`
}
