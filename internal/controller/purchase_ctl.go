package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/service"
)

type PurchaseController struct {
	purchaseService *service.PurchaseService
	log             logrus.FieldLogger
}

func NewPurchaseController(purchaseService *service.PurchaseService, log logrus.FieldLogger) *PurchaseController {
	return &PurchaseController{purchaseService: purchaseService, log: log}
}

// ListShopPurchases 商店进货明细
// @Summary 商店进货明细
// @Tags Purchase (进货)
// @Produce json
// @Param shop_name query string true "商店名"
// @Success 200 {array} dto.ShopPurchaseResp
// @Failure 400 {object} dto.ErrorResp "缺少参数"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /shop/purchase-details [get]
func (ctl *PurchaseController) ListShopPurchases(c *gin.Context) {
	var req dto.ShopQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "ListShopPurchases", err)
		return
	}

	list, err := ctl.purchaseService.ListShopPurchases(c.Request.Context(), req.ShopName)
	if err != nil {
		renderError(c, ctl.log, "ListShopPurchases", err)
		return
	}
	renderJSON(c, http.StatusOK, list)
}

// ListByDate 指定日期的进货明细
// @Summary 按日期查询进货明细
// @Tags Purchase (进货)
// @Produce json
// @Param date query string true "日期 YYYY-MM-DD"
// @Success 200 {array} dto.DatePurchaseResp
// @Failure 400 {object} dto.ErrorResp "缺少参数或格式错误"
// @Failure 404 {object} dto.ErrorResp "没有明细"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /purchase-details-by-date [get]
func (ctl *PurchaseController) ListByDate(c *gin.Context) {
	var req dto.DateQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "ListByDate", err)
		return
	}

	list, err := ctl.purchaseService.ListByDate(c.Request.Context(), req.Date)
	if err != nil {
		renderError(c, ctl.log, "ListByDate", err)
		return
	}
	renderJSON(c, http.StatusOK, list)
}
