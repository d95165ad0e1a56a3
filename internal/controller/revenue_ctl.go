package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/service"
)

type RevenueController struct {
	revenueService *service.RevenueService
	log            logrus.FieldLogger
}

func NewRevenueController(revenueService *service.RevenueService, log logrus.FieldLogger) *RevenueController {
	return &RevenueController{revenueService: revenueService, log: log}
}

// TopStores 营业额前十
// @Summary 营业额前十的商店
// @Description 按营业额降序，同额按商店名升序，rank 从 1 连续编号
// @Tags Revenue (营业额)
// @Produce json
// @Success 200 {array} dto.StoreRevenueResp
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /revenue/top-stores [get]
func (ctl *RevenueController) TopStores(c *gin.Context) {
	list, err := ctl.revenueService.TopStores(c.Request.Context())
	if err != nil {
		renderError(c, ctl.log, "TopStores", err)
		return
	}
	renderJSON(c, http.StatusOK, list)
}

// BranchTotal 分店总营业额
// @Summary 分店总营业额
// @Description 没有交易时 total_revenue 为 0
// @Tags Revenue (营业额)
// @Produce json
// @Param branch query string true "分店名"
// @Success 200 {object} dto.BranchRevenueResp
// @Failure 400 {object} dto.ErrorResp "缺少参数"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /revenue/branch [get]
func (ctl *RevenueController) BranchTotal(c *gin.Context) {
	var req dto.BranchQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "BranchTotal", err)
		return
	}

	resp, err := ctl.revenueService.BranchTotal(c.Request.Context(), req.Branch)
	if err != nil {
		renderError(c, ctl.log, "BranchTotal", err)
		return
	}
	renderJSON(c, http.StatusOK, resp)
}

// BranchStores 分店内各商店营业额排名
// @Summary 分店内商店营业额排名
// @Description 没有交易的商店营业额记为 0
// @Tags Revenue (营业额)
// @Produce json
// @Param branch query string true "分店名"
// @Success 200 {array} dto.StoreRevenueResp
// @Failure 400 {object} dto.ErrorResp "缺少参数"
// @Failure 404 {object} dto.ErrorResp "分店没有商店"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /revenue/branch/stores [get]
func (ctl *RevenueController) BranchStores(c *gin.Context) {
	var req dto.BranchQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "BranchStores", err)
		return
	}

	list, err := ctl.revenueService.BranchStores(c.Request.Context(), req.Branch)
	if err != nil {
		renderError(c, ctl.log, "BranchStores", err)
		return
	}
	renderJSON(c, http.StatusOK, list)
}
