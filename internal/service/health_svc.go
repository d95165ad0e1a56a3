package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"mall_query_v1/pkg/database"
)

// HealthService 探测数据库连接池
type HealthService struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewHealthService 创建健康检查服务
func NewHealthService(db *gorm.DB, timeout time.Duration) *HealthService {
	return &HealthService{db: db, timeout: timeout}
}

// Check 连接池不可用时返回错误
func (s *HealthService) Check(ctx context.Context) error {
	return database.Ping(ctx, s.db, s.timeout)
}
