// Package service contains the dispatchers of the catalog client.
//
// Every dispatcher follows the same shape: mark the slice as loading, call
// the backend, adapt the payload, dispatch the result into the store and
// clear the loading flag. Read dispatchers absorb failures, reset their
// slice and notify the user; write dispatchers return an error wrapping
// one of the sentinels in errors.go.
//
//   - FilmService: film list, genre list, single film, similar films, promo,
//     create, edit, delete
//   - ReviewService: reviews of a film, posting a review
//   - FavoriteService: favorite list, add/remove favorite
//   - UserService: auth check, login, logout, registration
package service
