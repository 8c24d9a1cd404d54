package router

import (
	"movie-catalog-server/internal/middleware"
	"movie-catalog-server/internal/modules"

	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
}

func NewRouter(appModules *modules.AppModules) *Router {
	return &Router{
		modules: appModules,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头与跨域中间件
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware())

	// 写接口共用同一个限流实例
	writeLimiter := middleware.RateLimitMiddleware("write")

	registerPublicRoutes(api)
	registerMovieRoutes(api, writeLimiter, rt.modules.Movie.Handler)
}
