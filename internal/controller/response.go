package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/logger"
	"mall_query_v1/internal/middleware"
	"mall_query_v1/internal/service"
)

// JSONContentType 所有响应显式声明 UTF-8
const JSONContentType = "application/json; charset=utf-8"

// renderJSON 输出 JSON，中文原样输出不转义
func renderJSON(c *gin.Context, status int, obj interface{}) {
	c.Header("Content-Type", JSONContentType)
	c.PureJSON(status, obj)
}

// renderError 按错误类型输出 400 / 404 / 500
func renderError(c *gin.Context, log logrus.FieldLogger, funcName string, err error) {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		renderJSON(c, http.StatusBadRequest, dto.ErrorResp{Error: validationErr.Message})
	case errors.As(err, &notFoundErr):
		renderJSON(c, http.StatusNotFound, dto.ErrorResp{Error: notFoundErr.Message})
	default:
		entry := log.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c),
			"path":       c.Request.URL.Path,
		})
		logger.LogError(entry, "controller", funcName, c.Request.URL.RawQuery, err)
		renderJSON(c, http.StatusInternalServerError, dto.ErrorResp{
			Error:   "Internal server error",
			Details: err.Error(),
		})
	}
}
