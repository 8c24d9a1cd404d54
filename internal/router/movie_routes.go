package router

import (
	"movie-catalog-server/internal/middleware"
	moviehandler "movie-catalog-server/internal/modules/movie/handler"

	"github.com/gin-gonic/gin"
)

func registerMovieRoutes(api *gin.RouterGroup, writeLimiter gin.HandlerFunc, h *moviehandler.Handler) {
	movies := api.Group("/movies")
	{
		movies.GET("", h.ListMovies)
		movies.GET("/:id", h.GetMovie)
		movies.DELETE("/:id", writeLimiter, h.DeleteMovie)
	}

	// 新增与修改可能携带海报文件
	upload := movies.Group("")
	upload.Use(writeLimiter, middleware.UploadBodyLimitMiddleware())
	{
		upload.POST("", h.CreateMovie)
		upload.PUT("/:id", h.UpdateMovie)
	}
}
