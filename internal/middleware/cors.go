package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mall_query_v1/internal/config"
)

// CORS 跨域配置；未配置来源时，非生产环境放行所有来源
func CORS(cfg config.CORSConfig, production bool) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "OPTIONS"}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, RequestIDHeader)
	corsCfg.ExposeHeaders = []string{RequestIDHeader}

	switch {
	case len(cfg.AllowedOrigins) > 0:
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	case !production:
		corsCfg.AllowAllOrigins = true
	default:
		// 生产环境必须显式配置
		corsCfg.AllowOriginFunc = func(string) bool { return false }
	}
	return cors.New(corsCfg)
}
