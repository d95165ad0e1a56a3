package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"mall_query_v1/internal/config"
	"mall_query_v1/internal/controller"
	"mall_query_v1/internal/middleware"

	_ "mall_query_v1/docs"
)

// Controllers 路由依赖的全部控制器
type Controllers struct {
	Shop        *controller.ShopController
	Employee    *controller.EmployeeController
	Promotion   *controller.PromotionController
	Purchase    *controller.PurchaseController
	Revenue     *controller.RevenueController
	Transaction *controller.TransactionController
	Health      *controller.HealthController
}

// SetupRouter 创建 gin 引擎并注册中间件与路由
func SetupRouter(cfg *config.Config, log logrus.FieldLogger, ctls *Controllers) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		middleware.CORS(cfg.CORS, cfg.IsProduction()),
	)

	InitRoutes(r, ctls)

	// 访问 http://localhost:8080/swagger/index.html 即可查看
	if cfg.Swagger.Enabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return r
}

// InitRoutes 注册所有查询路由，全部为 GET
func InitRoutes(r gin.IRoutes, ctls *Controllers) {
	// 健康检查
	r.GET("/", ctls.Health.Index)
	r.GET("/healthz", ctls.Health.Healthz)

	// 分店与商店
	r.GET("/branches", ctls.Shop.ListBranches)
	r.GET("/stores", ctls.Shop.ListStores)
	r.GET("/branches/store", ctls.Shop.ListBranchStores)
	r.GET("/shop/goods", ctls.Shop.ListGoods)
	r.GET("/supplier", ctls.Shop.GetSupplier)

	// 员工
	r.GET("/shop/employees", ctls.Employee.ListShopEmployees)
	r.GET("/shop/employees/time", ctls.Employee.ListOnDuty)
	r.GET("/branch/employees", ctls.Employee.ListBranchEmployees)
	r.GET("/position-employees", ctls.Employee.ListByPosition)

	// 促销
	r.GET("/shop/promotions", ctls.Promotion.ListShopPromotions)
	r.GET("/promotions-by-method", ctls.Promotion.ListByMethod)
	r.GET("/promotions-by-date", ctls.Promotion.ListByDate)

	// 进货
	r.GET("/shop/purchase-details", ctls.Purchase.ListShopPurchases)
	r.GET("/purchase-details-by-date", ctls.Purchase.ListByDate)

	// 营业额
	r.GET("/revenue/top-stores", ctls.Revenue.TopStores)
	r.GET("/revenue/branch", ctls.Revenue.BranchTotal)
	r.GET("/revenue/branch/stores", ctls.Revenue.BranchStores)

	// 交易
	r.GET("/transactions-by-date", ctls.Transaction.ListByDate)
	r.GET("/transactions-by-payment", ctls.Transaction.ListByPayment)
}
