package dto

// ==================== 营业额 ====================

// StoreRevenueResp 商店营业额排名
type StoreRevenueResp struct {
	Rank      int    `json:"rank" example:"1"`
	StoreName string `json:"store_name" example:"台隆手創館_廣三門市"`
	Revenue   Money  `json:"revenue" swaggertype:"number" example:"3590.00"`
}

// BranchRevenueResp 分店总营业额
type BranchRevenueResp struct {
	BranchName   string `json:"branch_name" example:"台北忠孝館"`
	TotalRevenue Money  `json:"total_revenue" swaggertype:"number" example:"1000000.00"`
}
