package handler

import (
	"net/http"

	"movie-catalog-server/internal/consts"
	"movie-catalog-server/internal/modules/common/httpx"
	moduledto "movie-catalog-server/internal/modules/movie/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListMovies(c *gin.Context) {
	movies, err := h.movieService.ListMovies()
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to fetch movies")
		return
	}
	c.JSON(http.StatusOK, moduledto.NewMovieResponses(movies))
}

func (h *Handler) GetMovie(c *gin.Context) {
	movie, err := h.movieService.GetMovie(c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to fetch movie")
		return
	}
	c.JSON(http.StatusOK, moduledto.NewMovieResponse(movie))
}

func (h *Handler) CreateMovie(c *gin.Context) {
	input, file, ok := h.bindMovieRequest(c)
	if !ok {
		return
	}

	movie, err := h.movieService.CreateMovie(input, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to add movie")
		return
	}
	c.JSON(http.StatusCreated, moduledto.NewMovieResponse(movie))
}

func (h *Handler) UpdateMovie(c *gin.Context) {
	input, file, ok := h.bindMovieRequest(c)
	if !ok {
		return
	}

	movie, err := h.movieService.UpdateMovie(c.Param("id"), input, file)
	if err != nil {
		httpx.WriteServiceError(c, err, "Failed to update movie")
		return
	}
	c.JSON(http.StatusOK, moduledto.NewMovieResponse(movie))
}

// DeleteMovie 只删除数据行，海报文件保留
func (h *Handler) DeleteMovie(c *gin.Context) {
	if err := h.movieService.DeleteMovie(c.Param("id")); err != nil {
		httpx.WriteServiceError(c, err, "Failed to delete movie")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": consts.MsgMovieDeleted})
}
