package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mall_query_v1/internal/api/dto"
)

// Recovery 捕获 handler 中的 panic，返回与数据库错误相同的 500 响应
func Recovery(log logrus.FieldLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.WithFields(logrus.Fields{
			"request_id": GetRequestID(c),
			"path":       c.Request.URL.Path,
			"panic":      fmt.Sprint(recovered),
		}).Error("handler panic")

		c.Header("Content-Type", "application/json; charset=utf-8")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResp{
			Error:   "Internal server error",
			Details: fmt.Sprint(recovered),
		})
	})
}
