package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// ClockTime 一天中的分钟偏移 (0 ~ 1439)
type ClockTime int

// ParseClock 解析 "HH:MM"
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("无效的时刻 %q: %w", s, err)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// ==================== ShiftTime 班次 ====================

// ShiftTime 员工班次，库里存成 "HH:MM-HH:MM"
// 扫描时即解析；格式不合法时 Valid=false，Raw 保留原值
type ShiftTime struct {
	Raw   string
	Start ClockTime
	End   ClockTime
	Valid bool
}

// ParseShiftTime 解析班次字符串，分隔符支持 "-" 与 "~"
func ParseShiftTime(s string) (ShiftTime, error) {
	shift := ShiftTime{Raw: s}

	raw := strings.TrimSpace(s)
	sep := strings.IndexAny(raw, "-~")
	if sep < 0 {
		return shift, fmt.Errorf("班次缺少分隔符: %q", s)
	}

	start, err := ParseClock(raw[:sep])
	if err != nil {
		return shift, err
	}
	end, err := ParseClock(raw[sep+1:])
	if err != nil {
		return shift, err
	}

	shift.Start, shift.End, shift.Valid = start, end, true
	return shift, nil
}

// Covers t 是否在班次内，两端都包含
// End 早于 Start 视为跨午夜班次
func (s ShiftTime) Covers(t ClockTime) bool {
	if !s.Valid {
		return false
	}
	if s.Start <= s.End {
		return s.Start <= t && t <= s.End
	}
	return t >= s.Start || t <= s.End
}

// Malformed 有值但无法解析
func (s ShiftTime) Malformed() bool {
	return !s.Valid && strings.TrimSpace(s.Raw) != ""
}

// StartText 上班时间，无效班次返回空串
func (s ShiftTime) StartText() string {
	if !s.Valid {
		return ""
	}
	return s.Start.String()
}

// EndText 下班时间，无效班次返回空串
func (s ShiftTime) EndText() string {
	if !s.Valid {
		return ""
	}
	return s.End.String()
}

// Hours 形如 "09:00~18:00"，无效班次返回空串
func (s ShiftTime) Hours() string {
	if !s.Valid {
		return ""
	}
	return s.Start.String() + "~" + s.End.String()
}

// Scan 实现 sql.Scanner；格式错误不返回 error，交给调用方决定如何处理
func (s *ShiftTime) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*s = ShiftTime{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("无法将 %T 扫描为 ShiftTime", value)
	}

	parsed, _ := ParseShiftTime(raw)
	*s = parsed
	return nil
}

// Value 实现 driver.Valuer
func (s ShiftTime) Value() (driver.Value, error) {
	if s.Valid {
		return s.Start.String() + "-" + s.End.String(), nil
	}
	if s.Raw == "" {
		return nil, nil
	}
	return s.Raw, nil
}

// GormDataType 建表时按字符串列处理
func (ShiftTime) GormDataType() string {
	return "string"
}
