package movie

import (
	"movie-catalog-server/internal/modules/movie/handler"
	"movie-catalog-server/internal/modules/movie/repo"
	"movie-catalog-server/internal/modules/movie/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(movieStore repo.MovieStore, imageStore service.ImageStore, maxUploadBytes int64) *Module {
	moduleService := service.New(movieStore, imageStore)
	moduleHandler := handler.New(moduleService, maxUploadBytes)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
