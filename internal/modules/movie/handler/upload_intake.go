package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"movie-catalog-server/internal/consts"
	moduledto "movie-catalog-server/internal/modules/movie/dto"
	"movie-catalog-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindMovieRequest 解析 JSON、urlencoded 或 multipart 请求体，并校验可选的 image 文件。
// 返回 false 时已写出响应。
func (h *Handler) bindMovieRequest(c *gin.Context) (moduledto.MovieInput, *multipart.FileHeader, bool) {
	var input moduledto.MovieInput
	// 空的 JSON 请求体按全部字段缺失处理
	if err := c.ShouldBind(&input); err != nil && !errors.Is(err, io.EOF) {
		h.writeBindError(c, err)
		return input, nil, false
	}

	switch c.ContentType() {
	case binding.MIMEJSON:
		return input, nil, true
	case binding.MIMEMultipartPOSTForm:
		input.Image = c.PostForm("image")
	default:
		input.Image = c.PostForm("image")
		return input, nil, true
	}

	file, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return input, nil, true
	}
	if err != nil {
		h.writeBindError(c, err)
		return input, nil, false
	}

	switch err := utils.ValidateImageUpload(file, h.maxUploadBytes); {
	case errors.Is(err, utils.ErrImageTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf(consts.MsgImageTooLarge, h.maxUploadBytes/(1024*1024))})
		return input, nil, false
	case errors.Is(err, utils.ErrNotAnImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": consts.MsgOnlyImages})
		return input, nil, false
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded image"})
		return input, nil, false
	}
	return input, file, true
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf(consts.MsgImageTooLarge, h.maxUploadBytes/(1024*1024))})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}
