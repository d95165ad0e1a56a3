package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"mall_query_v1/internal/config"
	"mall_query_v1/internal/model"
)

// 参数格式，出现在错误信息中
const (
	DateFormat  = "YYYY-MM-DD"
	ClockFormat = "HH:MM"

	dateLayout = "2006-01-02"
)

// QueryOptions 所有查询服务共用的设置
type QueryOptions struct {
	Timeout  time.Duration  // 单次数据库调用的超时
	Location *time.Location // 日期参数按此时区换算
	Log      logrus.FieldLogger
	Now      func() time.Time
}

// NewQueryOptions 由数据库配置构造
func NewQueryOptions(cfg config.DatabaseConfig, log logrus.FieldLogger) QueryOptions {
	return QueryOptions{
		Timeout:  cfg.QueryTimeout,
		Location: cfg.Location(),
		Log:      log,
		Now:      time.Now,
	}
}

// withTimeout 为一次数据库调用派生带超时的 context
func (o QueryOptions) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.Timeout)
}

func (o QueryOptions) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

// dayRange 把 "YYYY-MM-DD" 换算成 [当天 00:00, 次日 00:00)
func (o QueryOptions) dayRange(date string) (from, to time.Time, err error) {
	from, err = time.ParseInLocation(dateLayout, date, o.location())
	if err != nil {
		return from, to, InvalidFormat("Date", DateFormat)
	}
	return from, from.AddDate(0, 0, 1), nil
}

// startOfToday 今天 00:00
func (o QueryOptions) startOfToday() time.Time {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	y, m, d := now().In(o.location()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, o.location())
}

// warnMalformedShift 班次格式不合法时记录警告，行照常返回
func (o QueryOptions) warnMalformedShift(name, location string, shift model.ShiftTime) {
	if !shift.Malformed() || o.Log == nil {
		return
	}
	o.Log.WithFields(logrus.Fields{
		"employee":   name,
		"location":   location,
		"shift_time": shift.Raw,
	}).Warn("班次格式无法解析")
}
