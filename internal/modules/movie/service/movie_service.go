package service

import (
	"errors"
	"log"
	"math"
	"mime/multipart"
	"strconv"
	"strings"

	"movie-catalog-server/internal/consts"
	"movie-catalog-server/internal/model"
	"movie-catalog-server/internal/modules/movie/dto"
	"movie-catalog-server/internal/modules/movie/repo"
	platformservice "movie-catalog-server/internal/platform/service"

	"gorm.io/gorm"
)

func (s *Service) ListMovies() ([]model.Movie, error) {
	movies, err := s.movieStore.ListAll()
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to fetch movies", err)
	}
	return movies, nil
}

// GetMovie 按路径参数查询。无法解析为正整数的 id 与不存在的 id 同样返回 NotFound。
func (s *Service) GetMovie(idParam string) (*model.Movie, error) {
	id, ok := parseID(idParam)
	if !ok {
		return nil, platformservice.NewNotFoundError(consts.MsgMovieNotFound)
	}

	movie, err := s.movieStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(consts.MsgMovieNotFound)
		}
		return nil, platformservice.NewInternalError("Failed to fetch movie", err)
	}
	return movie, nil
}

// CreateMovie 校验必填字段与图片后写入。
// 上传的文件先完整落盘再插入数据行；插入失败时删除刚写入的文件。
func (s *Service) CreateMovie(input dto.MovieInput, file *multipart.FileHeader) (*model.Movie, error) {
	if input.MissingRequired() {
		return nil, platformservice.NewValidationError(consts.MsgFieldsRequired)
	}
	if file == nil && input.Image == "" {
		return nil, platformservice.NewValidationError(consts.MsgImageRequired)
	}
	fields, err := coerceFields(input)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.storeUpload(file)
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to add movie", err)
	}
	if uploaded != "" {
		fields.Image = uploaded
	}

	movie := model.Movie{
		Title:    fields.Title,
		Director: fields.Director,
		Year:     fields.Year,
		Genre:    fields.Genre,
		Rating:   fields.Rating,
		Image:    fields.Image,
	}
	if err := s.movieStore.Create(&movie); err != nil {
		s.discardUpload(uploaded)
		return nil, platformservice.NewInternalError("Failed to add movie", err)
	}
	return &movie, nil
}

// UpdateMovie 整体替换除 id/created_at 以外的字段，不做必填校验。
// 返回值由调用方提交的字段构造，不重新读库。
func (s *Service) UpdateMovie(idParam string, input dto.MovieInput, file *multipart.FileHeader) (*model.Movie, error) {
	id, ok := parseID(idParam)
	if !ok {
		return nil, platformservice.NewNotFoundError(consts.MsgMovieNotFound)
	}
	if file == nil && input.Image == "" {
		return nil, platformservice.NewValidationError(consts.MsgImageRequired)
	}
	fields, err := coerceFields(input)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.storeUpload(file)
	if err != nil {
		return nil, platformservice.NewInternalError("Failed to update movie", err)
	}
	if uploaded != "" {
		fields.Image = uploaded
	}

	affected, err := s.movieStore.UpdateByID(id, fields)
	if err != nil {
		s.discardUpload(uploaded)
		return nil, platformservice.NewInternalError("Failed to update movie", err)
	}
	if affected == 0 {
		s.discardUpload(uploaded)
		return nil, platformservice.NewNotFoundError(consts.MsgMovieNotFound)
	}

	return &model.Movie{
		ID:       id,
		Title:    fields.Title,
		Director: fields.Director,
		Year:     fields.Year,
		Genre:    fields.Genre,
		Rating:   fields.Rating,
		Image:    fields.Image,
	}, nil
}

// DeleteMovie 硬删除数据行，海报文件保留在磁盘上
func (s *Service) DeleteMovie(idParam string) error {
	id, ok := parseID(idParam)
	if !ok {
		return platformservice.NewNotFoundError(consts.MsgMovieNotFound)
	}

	affected, err := s.movieStore.DeleteByID(id)
	if err != nil {
		return platformservice.NewInternalError("Failed to delete movie", err)
	}
	if affected == 0 {
		return platformservice.NewNotFoundError(consts.MsgMovieNotFound)
	}
	return nil
}

func (s *Service) storeUpload(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", nil
	}
	return s.imageStore.Save(file)
}

func (s *Service) discardUpload(ref string) {
	if ref == "" {
		return
	}
	if err := s.imageStore.Remove(ref); err != nil {
		log.Printf("Remove uploaded image %s failed: %v", ref, err)
	}
}

func parseID(idParam string) (uint, bool) {
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// coerceFields 把表单文本转换为列类型，rating 按 decimal(3,1) 保留一位小数
func coerceFields(input dto.MovieInput) (repo.MovieFields, error) {
	year, err := strconv.Atoi(strings.TrimSpace(input.Year.String()))
	if err != nil {
		return repo.MovieFields{}, platformservice.NewValidationError(consts.MsgYearInvalid)
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(input.Rating.String()), 64)
	if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
		return repo.MovieFields{}, platformservice.NewValidationError(consts.MsgRatingInvalid)
	}

	return repo.MovieFields{
		Title:    input.Title,
		Director: input.Director,
		Year:     year,
		Genre:    input.Genre,
		Rating:   math.Round(rating*10) / 10,
		Image:    input.Image,
	}, nil
}
