package models

import "time"

type Movie struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	MovieName   string    `json:"movieName" gorm:"not null"`
	Description string    `json:"description"`
	Director    string    `json:"director"`
	ReleaseDate time.Time `json:"releaseDate"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
