package dto

// ==================== 员工 ====================

// ShopEmployeeResp 商店员工
type ShopEmployeeResp struct {
	Name         string `json:"name" example:"陳家琪"`
	Contact      string `json:"contact" example:"0932-425789"`
	Position     string `json:"position" example:"店長"`
	WorkingHours string `json:"working_hours" example:"11:00~21:30"`
}

// OnDutyEmployeeResp 指定时刻在班的员工
type OnDutyEmployeeResp struct {
	Name     string `json:"name" example:"王小明"`
	Contact  string `json:"contact" example:"0987-654321"`
	Position string `json:"position" example:"員工"`
}

// BranchEmployeeResp 分店员工，班次拆成上下班时间
type BranchEmployeeResp struct {
	Name          string `json:"name" example:"陳智偉"`
	Contact       string `json:"contact" example:"0966-466166"`
	Position      string `json:"position" example:"店長"`
	StartWorkTime string `json:"start_work_time" example:"11:00"`
	EndWorkTime   string `json:"end_work_time" example:"21:30"`
}

// PositionEmployeeResp 按职位查询的员工，Location 为分店名或商店名
type PositionEmployeeResp struct {
	Name     string `json:"name" example:"林士昇"`
	Contact  string `json:"contact" example:"0966-487512"`
	WorkTime string `json:"work_time" example:"09:00~18:00"`
	Location string `json:"location" example:"新竹店"`
}
