package model

import "time"

type Movie struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Director  string    `json:"director" gorm:"size:255;not null"`
	Year      int       `json:"year" gorm:"not null"`
	Genre     string    `json:"genre" gorm:"size:100;not null"`
	Rating    float64   `json:"rating" gorm:"type:decimal(3,1);not null"`
	Image     string    `json:"image" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
}
