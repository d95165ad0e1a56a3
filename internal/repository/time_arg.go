package repository

import (
	"time"

	"gorm.io/gorm"
)

// timeArg 换算查询条件中的时间参数
// SQLite 把时间存成带偏移的文本并按字符串比较，库中时间一律为 UTC，参数也必须先转成 UTC
func timeArg(db *gorm.DB, t time.Time) time.Time {
	if db.Dialector.Name() == "sqlite" {
		return t.UTC()
	}
	return t
}
