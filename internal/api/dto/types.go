package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateTimeLayout 时间字段统一的文本格式
const DateTimeLayout = "2006-01-02 15:04:05"

// ==================== Money ====================

// Money 金额，序列化为保留两位小数的 JSON 数字（非字符串）
type Money struct {
	decimal.Decimal
}

// NewMoney 由 decimal 构造
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// NullableMoney 价格可能为 NULL 时使用
func NullableMoney(d decimal.NullDecimal) *Money {
	if !d.Valid {
		return nil
	}
	m := NewMoney(d.Decimal)
	return &m
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(2)), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.Decimal.UnmarshalJSON(b)
}

// ==================== DateTime ====================

// DateTime 序列化为 "YYYY-MM-DD HH:MM:SS"，零值输出 null
type DateTime struct {
	time.Time
}

// NewDateTime 由可空时间构造
func NewDateTime(t *time.Time) DateTime {
	if t == nil {
		return DateTime{}
	}
	return DateTime{Time: *t}
}

func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(`"`+DateTimeLayout+`"`, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ==================== 通用响应 ====================

// ErrorResp 错误响应
type ErrorResp struct {
	Error   string `json:"error" example:"Shop name is required"`
	Details string `json:"details,omitempty" example:"dial tcp: connection refused"`
}

// HealthResp 健康检查响应
type HealthResp struct {
	Status  string `json:"status" example:"ok"`
	Details string `json:"details,omitempty"`
}
