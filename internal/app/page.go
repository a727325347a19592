package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// LoadMainPage refreshes the auth status, the promo film and the catalog
// concurrently and returns once all three dispatchers finished.
func (a *App) LoadMainPage(ctx context.Context) error {
	return loadAll(ctx,
		a.Users.CheckAuth,
		a.Films.FetchPromo,
		a.Films.FetchFilms,
	)
}

// LoadFilmPage refreshes everything shown next to a single film.
func (a *App) LoadFilmPage(ctx context.Context, id string) error {
	return loadAll(ctx,
		func(ctx context.Context) { a.Films.FetchFilm(ctx, id) },
		func(ctx context.Context) { a.Films.FetchSimilarFilms(ctx, id) },
		func(ctx context.Context) { a.Reviews.FetchReviews(ctx, id) },
	)
}

// loadAll only coordinates completion. Dispatchers report their own
// failures, so the returned error is the caller's cancellation, if any.
func loadAll(ctx context.Context, loads ...func(context.Context)) error {
	var g errgroup.Group
	for _, load := range loads {
		load := load
		g.Go(func() error {
			load(ctx)
			return ctx.Err()
		})
	}
	return g.Wait()
}
