package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	"mall_query_v1/internal/config"
	"mall_query_v1/internal/logger"
	"mall_query_v1/internal/model"
	"mall_query_v1/internal/router"
	"mall_query_v1/internal/task"
	"mall_query_v1/pkg/database"
)

// @title Mall Query API
// @version 1.0
// @description 商场零售数据只读查询接口：分店、商店、商品、员工、促销、进货、营业额与交易。
// @BasePath /
func main() {
	app := &cli.App{
		Name:  "mall-query",
		Usage: "商场数据查询服务",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "启动 HTTP 服务",
				Action: serve,
			},
			{
				Name:   "ping",
				Usage:  "检查数据库连通性，失败时以非零状态退出",
				Action: ping,
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// defaultShutdownTimeout 优雅关闭最长等待时间，配置为 0 时使用
const defaultShutdownTimeout = 30 * time.Second

// ==================== 依赖容器 ====================

// Dependencies 进程级资源，由 main 创建和释放
type Dependencies struct {
	Config *config.Config
	Log    *logrus.Logger
	DB     *gorm.DB
}

// initDependencies 加载配置、日志与数据库
func initDependencies() (*Dependencies, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database, log, model.All()...)
	if err != nil {
		return nil, err
	}

	return &Dependencies{Config: cfg, Log: log, DB: db}, nil
}

func (d *Dependencies) Close() {
	if err := database.Close(d.DB); err != nil {
		d.Log.WithError(err).Warn("关闭数据库连接失败")
	}
}

// ==================== 命令 ====================

func serve(_ *cli.Context) error {
	deps, err := initDependencies()
	if err != nil {
		return err
	}
	defer deps.Close()

	gin.SetMode(deps.Config.Server.Mode)

	// 定时任务
	monitor, err := initTasks(deps)
	if err != nil {
		return err
	}
	if monitor != nil {
		defer monitor.Stop()
	}

	r := router.SetupRouter(deps.Config, deps.Log, router.NewControllers(deps.DB, deps.Config, deps.Log))
	return startServer(r, deps)
}

func ping(c *cli.Context) error {
	deps, err := initDependencies()
	if err != nil {
		return err
	}
	defer deps.Close()

	if err := database.Ping(c.Context, deps.DB, deps.Config.Database.QueryTimeout); err != nil {
		return fmt.Errorf("数据库不可用: %w", err)
	}
	deps.Log.WithField("driver", deps.Config.Database.Driver).Info("数据库连接正常")
	return nil
}

// initTasks 启动连接池监控，未配置时返回 nil
func initTasks(deps *Dependencies) (*task.PoolMonitor, error) {
	spec := deps.Config.Monitor.PoolStatsSpec
	if spec == "" {
		return nil, nil
	}

	sqlDB, err := deps.DB.DB()
	if err != nil {
		return nil, err
	}

	monitor := task.NewPoolMonitor(sqlDB, deps.Log, spec)
	if err := monitor.Start(); err != nil {
		return nil, err
	}
	return monitor, nil
}

// ==================== 服务启动 ====================

// startServer 启动服务并阻塞到收到退出信号
func startServer(r *gin.Engine, deps *Dependencies) error {
	cfg := deps.Config.Server
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// 异步启动服务
	errCh := make(chan error, 1)
	go func() {
		deps.Log.Infof("服务启动在 %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("服务启动失败: %w", err)
	case <-quit:
	}

	deps.Log.Info("正在关闭服务...")

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务强制关闭: %w", err)
	}

	deps.Log.Info("服务已退出")
	return nil
}
