package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/service"
)

type HealthController struct {
	healthService *service.HealthService
	log           logrus.FieldLogger
}

func NewHealthController(healthService *service.HealthService, log logrus.FieldLogger) *HealthController {
	return &HealthController{healthService: healthService, log: log}
}

// Index 根路径
// @Summary 根路径
// @Tags Health (健康检查)
// @Produce plain
// @Success 200 {string} string "Hello, World!"
// @Router / [get]
func (ctl *HealthController) Index(c *gin.Context) {
	c.String(http.StatusOK, "Hello, World!")
}

// Healthz 数据库连通性探测
// @Summary 健康检查
// @Tags Health (健康检查)
// @Produce json
// @Success 200 {object} dto.HealthResp
// @Failure 503 {object} dto.HealthResp "数据库不可用"
// @Router /healthz [get]
func (ctl *HealthController) Healthz(c *gin.Context) {
	if err := ctl.healthService.Check(c.Request.Context()); err != nil {
		ctl.log.WithError(err).Warn("健康检查失败")
		renderJSON(c, http.StatusServiceUnavailable, dto.HealthResp{Status: "unavailable", Details: err.Error()})
		return
	}
	renderJSON(c, http.StatusOK, dto.HealthResp{Status: "ok"})
}
