package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/service"
)

type EmployeeController struct {
	employeeService *service.EmployeeService
	log             logrus.FieldLogger
}

func NewEmployeeController(employeeService *service.EmployeeService, log logrus.FieldLogger) *EmployeeController {
	return &EmployeeController{employeeService: employeeService, log: log}
}

// ListShopEmployees 商店员工
// @Summary 商店员工
// @Description working_hours 形如 "09:00~18:00"，班次无法解析时为空字符串
// @Tags Employee (员工)
// @Produce json
// @Param shop_name query string true "商店名"
// @Success 200 {array} dto.ShopEmployeeResp
// @Failure 400 {object} dto.ErrorResp "缺少参数"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /shop/employees [get]
func (ctl *EmployeeController) ListShopEmployees(c *gin.Context) {
	var req dto.ShopQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "ListShopEmployees", err)
		return
	}

	list, err := ctl.employeeService.ListShopEmployees(c.Request.Context(), req.ShopName)
	if err != nil {
		renderError(c, ctl.log, "ListShopEmployees", err)
		return
	}
	renderJSON(c, http.StatusOK, list)
}

// ListOnDuty 指定时刻在班的商店员工
// @Summary 在班员工
// @Description 上班时刻 <= time <= 下班时刻；下班早于上班的班次视为跨午夜
// @Tags Employee (员工)
// @Produce json
// @Param shop_name query string true "商店名"
// @Param time query string true "时刻 HH:MM"
// @Success 200 {array} dto.OnDutyEmployeeResp
// @Failure 400 {object} dto.ErrorResp "缺少参数或格式错误"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /shop/employees/time [get]
func (ctl *EmployeeController) ListOnDuty(c *gin.Context) {
	var req dto.OnDutyQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "ListOnDuty", err)
		return
	}

	list, err := ctl.employeeService.ListOnDuty(c.Request.Context(), req.ShopName, req.Time)
	if err != nil {
		renderError(c, ctl.log, "ListOnDuty", err)
		return
	}
	renderJSON(c, http.StatusOK, list)
}

// ListBranchEmployees 分店员工
// @Summary 分店员工
// @Tags Employee (员工)
// @Produce json
// @Param branch query string true "分店名"
// @Success 200 {array} dto.BranchEmployeeResp
// @Failure 400 {object} dto.ErrorResp "缺少参数"
// @Failure 404 {object} dto.ErrorResp "没有员工"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /branch/employees [get]
func (ctl *EmployeeController) ListBranchEmployees(c *gin.Context) {
	var req dto.BranchQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "ListBranchEmployees", err)
		return
	}

	list, err := ctl.employeeService.ListBranchEmployees(c.Request.Context(), req.Branch)
	if err != nil {
		renderError(c, ctl.log, "ListBranchEmployees", err)
		return
	}
	renderJSON(c, http.StatusOK, list)
}

// ListByPosition 按职位查询员工
// @Summary 按职位查询员工
// @Description 合并分店员工与商店员工，location 为所属分店或商店
// @Tags Employee (员工)
// @Produce json
// @Param position query string true "职位"
// @Success 200 {array} dto.PositionEmployeeResp
// @Failure 400 {object} dto.ErrorResp "缺少参数"
// @Failure 404 {object} dto.ErrorResp "没有员工"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /position-employees [get]
func (ctl *EmployeeController) ListByPosition(c *gin.Context) {
	var req dto.PositionQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "ListByPosition", err)
		return
	}

	list, err := ctl.employeeService.ListByPosition(c.Request.Context(), req.Position)
	if err != nil {
		renderError(c, ctl.log, "ListByPosition", err)
		return
	}
	renderJSON(c, http.StatusOK, list)
}
