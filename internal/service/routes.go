package service

import (
	"fmt"
	"net/url"
)

// DefaultGenre selects the unfiltered film list.
const DefaultGenre = "All genres"

const (
	routeFilms    = "/films"
	routeGenre    = "/genre"
	routeAdd      = "/films/create"
	routeComments = "/comments"
	routeFavorite = "/favorite"
	routePromo    = "/promo"
	routeLogin    = "/users/login"
	routeLogout   = "/users/logout"
	routeRegister = "/users/register"
	routeUsers    = "/users"

	imagePoster     = "poster"
	imageBackground = "background"
)

func filmRoute(id string) string {
	return fmt.Sprintf("%s/%s", routeFilms, url.PathEscape(id))
}

func genreRoute(genre string) string {
	if genre == DefaultGenre {
		return routeFilms
	}
	return fmt.Sprintf("%s/%s", routeGenre, url.PathEscape(genre))
}

func filmImageRoute(id, kind string) string {
	return fmt.Sprintf("%s/image/%s", filmRoute(id), kind)
}

func commentsRoute(filmID string) string {
	return fmt.Sprintf("%s/%s", routeComments, url.PathEscape(filmID))
}

func favoriteRoute(id string) string {
	return fmt.Sprintf("%s/%s", routeFavorite, url.PathEscape(id))
}

func avatarRoute(userID string) string {
	return fmt.Sprintf("%s/%s/avatar", routeUsers, url.PathEscape(userID))
}
