package service

import (
	"mime/multipart"

	"movie-catalog-server/internal/modules/movie/repo"
)

// ImageStore 保存上传的海报并返回可直接写入 movies.image 的引用
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(ref string) error
}

type Service struct {
	movieStore repo.MovieStore
	imageStore ImageStore
}

func New(movieStore repo.MovieStore, imageStore ImageStore) *Service {
	return &Service{
		movieStore: movieStore,
		imageStore: imageStore,
	}
}
