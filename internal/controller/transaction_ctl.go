package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/service"
)

type TransactionController struct {
	transactionService *service.TransactionService
	log                logrus.FieldLogger
}

func NewTransactionController(transactionService *service.TransactionService, log logrus.FieldLogger) *TransactionController {
	return &TransactionController{transactionService: transactionService, log: log}
}

// ListByDate 指定日期的交易
// @Summary 按日期查询交易
// @Tags Transaction (交易)
// @Produce json
// @Param date query string true "日期 YYYY-MM-DD"
// @Success 200 {array} dto.TransactionResp
// @Failure 400 {object} dto.ErrorResp "缺少参数或格式错误"
// @Failure 404 {object} dto.ErrorResp "没有交易"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /transactions-by-date [get]
func (ctl *TransactionController) ListByDate(c *gin.Context) {
	var req dto.DateQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "ListByDate", err)
		return
	}

	list, err := ctl.transactionService.ListByDate(c.Request.Context(), req.Date)
	if err != nil {
		renderError(c, ctl.log, "ListByDate", err)
		return
	}
	renderJSON(c, http.StatusOK, list)
}

// ListByPayment 指定付款方式的交易
// @Summary 按付款方式查询交易
// @Tags Transaction (交易)
// @Produce json
// @Param payment query string true "付款方式"
// @Success 200 {array} dto.TransactionResp
// @Failure 400 {object} dto.ErrorResp "缺少参数"
// @Failure 404 {object} dto.ErrorResp "没有交易"
// @Failure 500 {object} dto.ErrorResp "数据库错误"
// @Router /transactions-by-payment [get]
func (ctl *TransactionController) ListByPayment(c *gin.Context) {
	var req dto.PaymentQuery
	if err := bindQuery(c, &req); err != nil {
		renderError(c, ctl.log, "ListByPayment", err)
		return
	}

	list, err := ctl.transactionService.ListByPayment(c.Request.Context(), req.Payment)
	if err != nil {
		renderError(c, ctl.log, "ListByPayment", err)
		return
	}
	renderJSON(c, http.StatusOK, list)
}
