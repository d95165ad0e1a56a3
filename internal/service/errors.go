package service

import "fmt"

// ==================== 错误类型 ====================
// controller 按类型映射状态码: ValidationError -> 400, NotFoundError -> 404, 其他 -> 500

// ValidationError 请求参数缺失或格式错误
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Required "<Name> is required"
func Required(name string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("%s is required", name)}
}

// InvalidFormat "<Name> must be in <FORMAT> format"
func InvalidFormat(name, format string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("%s must be in %s format", name, format)}
}

// NotFoundError 带过滤条件的查询没有结果
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NotFound "No <resource> found for <key>: <value>"
func NotFound(resource, key, value string) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("No %s found for %s: %s", resource, key, value)}
}

// ErrSupplierNotFound 供应商不存在
var ErrSupplierNotFound = &NotFoundError{Message: "Supplier not found"}
