package dto

// ==================== 商店 / 商品 / 供应商 ====================

// GoodsResp 商店商品
type GoodsResp struct {
	Name  string `json:"name" example:"招牌奶茶"`
	Price *Money `json:"price" swaggertype:"number" example:"65.00"`
	Stock int    `json:"stock" example:"120"`
}

// SupplierResp 供应商信息
type SupplierResp struct {
	Name    string `json:"name" example:"統一企業"`
	Address string `json:"address" example:"台南市永康區中正路301號"`
	Contact string `json:"contact" example:"06-2532121"`
}
