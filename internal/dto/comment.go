package dto

import "time"

type CommentDto struct {
	ID       string    `json:"id"`
	FilmID   string    `json:"filmId"`
	Comment  string    `json:"comment"`
	Rating   float64   `json:"rating"`
	PostDate time.Time `json:"postDate"`
	User     UserDto   `json:"user"`
}

type CreateCommentDto struct {
	Comment string  `json:"comment"`
	Rating  float64 `json:"rating"`
}
