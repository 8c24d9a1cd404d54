package modules

import (
	"movie-catalog-server/internal/modules/movie"
	movierepo "movie-catalog-server/internal/modules/movie/repo"
	movieservice "movie-catalog-server/internal/modules/movie/service"
)

type AppModules struct {
	Movie *movie.Module
}

func New(
	movieStore movierepo.MovieStore,
	imageStore movieservice.ImageStore,
	maxUploadBytes int64,
) *AppModules {
	return &AppModules{
		Movie: movie.New(movieStore, imageStore, maxUploadBytes),
	}
}
