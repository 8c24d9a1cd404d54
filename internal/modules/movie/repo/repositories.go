package repo

import (
	"movie-catalog-server/internal/model"

	"gorm.io/gorm"
)

// MovieFields 是一次更新可以替换的全部列，id 与 created_at 不在其中
type MovieFields struct {
	Title    string
	Director string
	Year     int
	Genre    string
	Rating   float64
	Image    string
}

type MovieStore interface {
	ListAll() ([]model.Movie, error)
	FindByID(id uint) (*model.Movie, error)
	Create(movie *model.Movie) error
	CreateBatch(movies []model.Movie) error
	UpdateByID(id uint, fields MovieFields) (int64, error)
	DeleteByID(id uint) (int64, error)
	CountAll() (int64, error)
}

func NewMovieRepository(db *gorm.DB) MovieStore {
	return &MovieRepository{db: db}
}
