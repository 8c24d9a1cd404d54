package repo

import (
	"movie-catalog-server/internal/model"

	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
}

func (r *MovieRepository) ListAll() ([]model.Movie, error) {
	var movies []model.Movie
	if err := r.db.Order("id desc").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *MovieRepository) FindByID(id uint) (*model.Movie, error) {
	var movie model.Movie
	if err := r.db.Where("id = ?", id).First(&movie).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *MovieRepository) Create(movie *model.Movie) error {
	return r.db.Create(movie).Error
}

func (r *MovieRepository) CreateBatch(movies []model.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	return r.db.Create(&movies).Error
}

// UpdateByID 用 map 更新以便零值（例如 year=0）也会写入
func (r *MovieRepository) UpdateByID(id uint, fields MovieFields) (int64, error) {
	result := r.db.Model(&model.Movie{}).Where("id = ?", id).Updates(map[string]any{
		"title":    fields.Title,
		"director": fields.Director,
		"year":     fields.Year,
		"genre":    fields.Genre,
		"rating":   fields.Rating,
		"image":    fields.Image,
	})
	return result.RowsAffected, result.Error
}

func (r *MovieRepository) DeleteByID(id uint) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&model.Movie{})
	return result.RowsAffected, result.Error
}

func (r *MovieRepository) CountAll() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Movie{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
