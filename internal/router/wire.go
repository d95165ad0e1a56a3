package router

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"mall_query_v1/internal/config"
	"mall_query_v1/internal/controller"
	"mall_query_v1/internal/repository"
	"mall_query_v1/internal/service"
)

// NewControllers 按 db -> repository -> service -> controller 的顺序组装
func NewControllers(db *gorm.DB, cfg *config.Config, log logrus.FieldLogger) *Controllers {
	opts := service.NewQueryOptions(cfg.Database, log)

	shopService := service.NewShopService(repository.NewShopRepository(db), opts)
	employeeService := service.NewEmployeeService(repository.NewEmployeeRepository(db), opts)
	promotionService := service.NewPromotionService(repository.NewPromotionRepository(db), opts)
	purchaseService := service.NewPurchaseService(repository.NewPurchaseRepository(db), opts)
	revenueService := service.NewRevenueService(repository.NewRevenueRepository(db), opts)
	transactionService := service.NewTransactionService(repository.NewTransactionRepository(db), opts)
	healthService := service.NewHealthService(db, cfg.Database.QueryTimeout)

	return &Controllers{
		Shop:        controller.NewShopController(shopService, log),
		Employee:    controller.NewEmployeeController(employeeService, log),
		Promotion:   controller.NewPromotionController(promotionService, log),
		Purchase:    controller.NewPurchaseController(purchaseService, log),
		Revenue:     controller.NewRevenueController(revenueService, log),
		Transaction: controller.NewTransactionController(transactionService, log),
		Health:      controller.NewHealthController(healthService, log),
	}
}
