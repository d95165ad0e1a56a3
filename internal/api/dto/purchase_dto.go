package dto

// ==================== 进货明细 ====================

// ShopPurchaseResp 商店进货明细
type ShopPurchaseResp struct {
	SerialNumber int64    `json:"serial_number" example:"1"`
	Supplier     *string  `json:"supplier" example:"統一企業"`
	Time         DateTime `json:"time" swaggertype:"string" example:"2024-01-05 09:30:00"`
	Goods        *string  `json:"goods" example:"招牌奶茶"`
	Amount       int      `json:"amount" example:"50"`
}

// DatePurchaseResp 按日期查询的进货明细
type DatePurchaseResp struct {
	SerialNumber int64    `json:"serial_number" example:"1"`
	StoreName    string   `json:"store_name" example:"商店1"`
	Supplier     *string  `json:"supplier" example:"統一企業"`
	Time         DateTime `json:"time" swaggertype:"string" example:"2024-01-05 09:30:00"`
	Goods        *string  `json:"goods" example:"招牌奶茶"`
	Amount       int      `json:"amount" example:"50"`
}
