package service

import (
	"fmt"
	"log"

	"movie-catalog-server/internal/model"
)

var sampleMovies = []model.Movie{
	{Title: "The Shawshank Redemption", Director: "Frank Darabont", Year: 1994, Genre: "Drama", Rating: 9.3, Image: "https://images.unsplash.com/photo-1598899134739-24c46f58b8c0?w=400&h=300&fit=crop"},
	{Title: "The Godfather", Director: "Francis Ford Coppola", Year: 1972, Genre: "Crime", Rating: 9.2, Image: "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=400&h=300&fit=crop"},
	{Title: "The Dark Knight", Director: "Christopher Nolan", Year: 2008, Genre: "Action", Rating: 9.0, Image: "https://images.unsplash.com/photo-1524985069026-dd778a71c7b4?w=400&h=300&fit=crop"},
	{Title: "Pulp Fiction", Director: "Quentin Tarantino", Year: 1994, Genre: "Crime", Rating: 8.9, Image: "https://images.unsplash.com/photo-1440404653325-ab127d49abc1?w=400&h=300&fit=crop"},
}

// SeedSamples 仅在表为空时写入示例电影，返回写入条数
func (s *Service) SeedSamples() (int, error) {
	count, err := s.movieStore.CountAll()
	if err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	movies := make([]model.Movie, len(sampleMovies))
	copy(movies, sampleMovies)
	if err := s.movieStore.CreateBatch(movies); err != nil {
		return 0, fmt.Errorf("insert sample movies: %w", err)
	}
	log.Printf("✅ 已写入 %d 条示例电影", len(movies))
	return len(movies), nil
}
