package dto

// TransactionResp 交易记录
type TransactionResp struct {
	StoreName string   `json:"store_name" example:"商店1"`
	Time      DateTime `json:"time" swaggertype:"string" example:"2023-01-01 10:00:00"`
	Price     Money    `json:"price" swaggertype:"number" example:"100.00"`
	Payment   string   `json:"payment" example:"cash"`
}
