package controller

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"mall_query_v1/internal/service"
)

// ==================== 查询参数校验 ====================

// datetime 规则的 layout -> 错误信息中的格式名
var formatNames = map[string]string{
	"2006-01-02": service.DateFormat,
	"15:04":      service.ClockFormat,
}

func init() {
	registerLabels(binding.Validator)
}

// registerLabels 让 gin 校验器的错误使用 label 标签中的名称
func registerLabels(v binding.StructValidator) {
	engine, ok := v.Engine().(*validator.Validate)
	if !ok {
		return
	}
	engine.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}
		return field.Name
	})
}

// bindQuery 绑定并校验查询参数，失败时返回 *service.ValidationError
func bindQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return translate(err)
	}
	return nil
}

// translate 只报告第一个不合法的字段
func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &service.ValidationError{Message: err.Error()}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return service.Required(fe.Field())
	case "datetime":
		format, ok := formatNames[fe.Param()]
		if !ok {
			format = fe.Param()
		}
		return service.InvalidFormat(fe.Field(), format)
	case "boolean":
		return &service.ValidationError{Message: fmt.Sprintf("%s must be true or false", fe.Field())}
	default:
		return &service.ValidationError{Message: fmt.Sprintf("%s is invalid", fe.Field())}
	}
}
