package dto

// ==================== 促销活动 ====================

// ShopPromotionResp 商店促销
type ShopPromotionResp struct {
	Name      string   `json:"name" example:"週年慶"`
	StartTime DateTime `json:"start_time" swaggertype:"string" example:"2024-10-01 00:00:00"`
	EndTime   DateTime `json:"end_time" swaggertype:"string" example:"2024-10-31 23:59:59"`
	Method    string   `json:"method" example:"滿千送百"`
}

// MethodPromotionResp 按促销方式查询的结果
type MethodPromotionResp struct {
	StoreName     string   `json:"store_name" example:"BIG TRAIN_新竹店"`
	PromotionName string   `json:"promotion_name" example:"週年慶"`
	StartTime     DateTime `json:"start_time" swaggertype:"string" example:"2024-10-01 00:00:00"`
	EndTime       DateTime `json:"end_time" swaggertype:"string" example:"2024-10-31 23:59:59"`
}

// DatePromotionResp 按日期查询的结果
type DatePromotionResp struct {
	StoreName     string   `json:"store_name" example:"BIG TRAIN_新竹店"`
	PromotionName string   `json:"promotion_name" example:"週年慶"`
	StartTime     DateTime `json:"start_time" swaggertype:"string" example:"2024-10-01 00:00:00"`
	EndTime       DateTime `json:"end_time" swaggertype:"string" example:"2024-10-31 23:59:59"`
	Method        string   `json:"method" example:"滿千送百"`
}
