package domain

import "time"

type Review struct {
	ID     string
	FilmID string
	Author User
	Text   string
	Rating float64
	Date   time.Time
}

type NewReview struct {
	Text   string
	Rating float64
}
