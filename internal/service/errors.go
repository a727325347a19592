package service

import "errors"

var (
	ErrAddFilm    = errors.New("can't add film")
	ErrEditFilm   = errors.New("can't edit film")
	ErrDeleteFilm = errors.New("can't delete film")
	ErrPostReview = errors.New("can't post review")
	ErrRegister   = errors.New("can't sign up")
)
