package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/service"
)

type PromotionController struct {
	promotionService *service.PromotionService
	log              logrus.FieldLogger
}

func NewPromotionController(promotionService *service.PromotionService, log logrus.FieldLogger) *PromotionController {
	return &PromotionController{promotionService: promotionService, log: log}
}

// ListShopPromotions 商店促销
// @Summary 商店促销
// @Description upcoming=true 时只返回今天之后开始的活动
// @Tags Promotion (促销)
// @Produce json
// @Param shop_name query string true "商店名"
// @Param upcoming query bool false "只看即将开始的活动"
// @Success 200 {array} dto.ShopPromotionResp
// @Failure 400 {object} dto.ErrorResp "缺少参数"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /shop/promotions [get]
func (ctl *PromotionController) ListShopPromotions(c *gin.Context) {
	var req dto.ShopPromotionQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "ListShopPromotions", err)
		return
	}
	// 已通过 boolean 校验
	upcoming, _ := strconv.ParseBool(req.Upcoming)

	list, err := ctl.promotionService.ListShopPromotions(c.Request.Context(), req.ShopName, upcoming)
	if err != nil {
		renderError(c, ctl.log, "ListShopPromotions", err)
		return
	}
	renderJSON(c, http.StatusOK, list)
}

// ListByMethod 按促销方式查询
// @Summary 按促销方式查询
// @Tags Promotion (促销)
// @Produce json
// @Param method query string true "促销方式"
// @Success 200 {array} dto.MethodPromotionResp
// @Failure 400 {object} dto.ErrorResp "缺少参数"
// @Failure 404 {object} dto.ErrorResp "没有活动"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /promotions-by-method [get]
func (ctl *PromotionController) ListByMethod(c *gin.Context) {
	var req dto.MethodQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "ListByMethod", err)
		return
	}

	list, err := ctl.promotionService.ListByMethod(c.Request.Context(), req.Method)
	if err != nil {
		renderError(c, ctl.log, "ListByMethod", err)
		return
	}
	renderJSON(c, http.StatusOK, list)
}

// ListByDate 指定日期进行中的促销
// @Summary 按日期查询促销
// @Tags Promotion (促销)
// @Produce json
// @Param date query string true "日期 YYYY-MM-DD"
// @Success 200 {array} dto.DatePromotionResp
// @Failure 400 {object} dto.ErrorResp "缺少参数或格式错误"
// @Failure 404 {object} dto.ErrorResp "没有活动"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /promotions-by-date [get]
func (ctl *PromotionController) ListByDate(c *gin.Context) {
	var req dto.DateQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "ListByDate", err)
		return
	}

	list, err := ctl.promotionService.ListByDate(c.Request.Context(), req.Date)
	if err != nil {
		renderError(c, ctl.log, "ListByDate", err)
		return
	}
	renderJSON(c, http.StatusOK, list)
}
