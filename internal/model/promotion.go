package model

import "time"

// PromotionalCampaign 商店促销活动
type PromotionalCampaign struct {
	StoreName string     `gorm:"column:store_name;primaryKey;size:100"`
	Name      string     `gorm:"column:name;primaryKey;size:100"`
	StartTime *time.Time `gorm:"column:start_time;index"`
	EndTime   *time.Time `gorm:"column:end_time"`
	Method    string     `gorm:"column:method;size:50;index"`
}

func (PromotionalCampaign) TableName() string { return "promotional_campaign" }
