package task

import (
	"database/sql"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StatsSource 连接池统计来源，*sql.DB 即满足
type StatsSource interface {
	Stats() sql.DBStats
}

// PoolMonitor 定时记录数据库连接池状态
type PoolMonitor struct {
	source StatsSource
	log    logrus.FieldLogger
	spec   string
	Cron   *cron.Cron
}

// NewPoolMonitor spec 为带秒字段的 cron 表达式，如 "0 */5 * * * *"
func NewPoolMonitor(source StatsSource, log logrus.FieldLogger, spec string) *PoolMonitor {
	return &PoolMonitor{
		source: source,
		log:    log.WithField("module", "pool_monitor"),
		spec:   spec,
		Cron:   cron.New(cron.WithSeconds()), // 支持秒级控制
	}
}

// Start 注册并启动定时任务
func (m *PoolMonitor) Start() error {
	if _, err := m.Cron.AddFunc(m.spec, m.Report); err != nil {
		return fmt.Errorf("无法启动连接池监控任务: %w", err)
	}
	m.Cron.Start()
	m.log.WithField("spec", m.spec).Info("连接池监控任务已启动")
	return nil
}

// Stop 停止调度并等待正在执行的任务结束
func (m *PoolMonitor) Stop() {
	<-m.Cron.Stop().Done()
}

// Report 记录一次连接池状态，等待连接的次数增加时升级为警告
func (m *PoolMonitor) Report() {
	stats := m.source.Stats()
	entry := m.log.WithFields(logrus.Fields{
		"open":          stats.OpenConnections,
		"in_use":        stats.InUse,
		"idle":          stats.Idle,
		"max_open":      stats.MaxOpenConnections,
		"wait_count":    stats.WaitCount,
		"wait_duration": stats.WaitDuration.String(),
	})

	if stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections {
		entry.Warn("连接池已满")
		return
	}
	entry.Info("连接池状态")
}
