package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/service"
)

// ShopController 分店、商店、商品与供应商
type ShopController struct {
	shopService *service.ShopService
	log         logrus.FieldLogger
}

func NewShopController(shopService *service.ShopService, log logrus.FieldLogger) *ShopController {
	return &ShopController{shopService: shopService, log: log}
}

// ListBranches 分店列表
// @Summary 分店列表
// @Description 返回全部分店名称（去重）
// @Tags Mall (分店与商店)
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /branches [get]
func (ctl *ShopController) ListBranches(c *gin.Context) {
	names, err := ctl.shopService.ListBranches(c.Request.Context())
	if err != nil {
		renderError(c, ctl.log, "ListBranches", err)
		return
	}
	renderJSON(c, http.StatusOK, names)
}

// ListStores 商店列表
// @Summary 商店列表
// @Description 返回全部商店名称（去重）
// @Tags Mall (分店与商店)
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /stores [get]
func (ctl *ShopController) ListStores(c *gin.Context) {
	names, err := ctl.shopService.ListStores(c.Request.Context())
	if err != nil {
		renderError(c, ctl.log, "ListStores", err)
		return
	}
	renderJSON(c, http.StatusOK, names)
}

// ListBranchStores 分店下的商店
// @Summary 分店下的商店
// @Tags Mall (分店与商店)
// @Produce json
// @Param branch query string true "分店名"
// @Success 200 {array} string
// @Failure 400 {object} dto.ErrorResp "缺少参数"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /branches/store [get]
func (ctl *ShopController) ListBranchStores(c *gin.Context) {
	var req dto.BranchQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "ListBranchStores", err)
		return
	}

	names, err := ctl.shopService.ListStoresByBranch(c.Request.Context(), req.Branch)
	if err != nil {
		renderError(c, ctl.log, "ListBranchStores", err)
		return
	}
	renderJSON(c, http.StatusOK, names)
}

// ListGoods 商店商品
// @Summary 商店商品
// @Description 商品名、单价与库存，商店不存在时返回空列表
// @Tags Shop (商店)
// @Produce json
// @Param shop_name query string true "商店名"
// @Success 200 {array} dto.GoodsResp
// @Failure 400 {object} dto.ErrorResp "缺少参数"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /shop/goods [get]
func (ctl *ShopController) ListGoods(c *gin.Context) {
	var req dto.ShopQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "ListGoods", err)
		return
	}

	list, err := ctl.shopService.ListGoods(c.Request.Context(), req.ShopName)
	if err != nil {
		renderError(c, ctl.log, "ListGoods", err)
		return
	}
	renderJSON(c, http.StatusOK, list)
}

// GetSupplier 供应商信息
// @Summary 供应商信息
// @Tags Supplier (供应商)
// @Produce json
// @Param supplier_name query string true "供应商名"
// @Success 200 {object} dto.SupplierResp
// @Failure 400 {object} dto.ErrorResp "缺少参数"
// @Failure 404 {object} dto.ErrorResp "Supplier not found"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /supplier [get]
func (ctl *ShopController) GetSupplier(c *gin.Context) {
	var req dto.SupplierQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "GetSupplier", err)
		return
	}

	supplier, err := ctl.shopService.GetSupplier(c.Request.Context(), req.SupplierName)
	if err != nil {
		renderError(c, ctl.log, "GetSupplier", err)
		return
	}
	renderJSON(c, http.StatusOK, supplier)
}
