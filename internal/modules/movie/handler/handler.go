package handler

import movieservice "movie-catalog-server/internal/modules/movie/service"

type Handler struct {
	movieService   *movieservice.Service
	maxUploadBytes int64
}

func New(movieService *movieservice.Service, maxUploadBytes int64) *Handler {
	return &Handler{movieService: movieService, maxUploadBytes: maxUploadBytes}
}
