package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/amaumene/whattowatch/internal/app"
	"github.com/amaumene/whattowatch/internal/domain"
	"github.com/amaumene/whattowatch/internal/service"
)

func (r *runner) newFilmsCmd() *cobra.Command {
	var genre string

	cmd := &cobra.Command{
		Use:   "films",
		Short: "List the catalog, optionally narrowed to one genre",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context, a *app.App) error {
				if genre == "" {
					a.Films.FetchFilms(ctx)
					printFilms(cmd.OutOrStdout(), a.Store().State().Films.Films)
					return nil
				}
				a.Films.FetchFilmsByGenre(ctx, genre)
				printFilms(cmd.OutOrStdout(), a.Store().State().Genre.Films)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&genre, "genre", "g", "", "genre to list, \""+service.DefaultGenre+"\" lists every film")
	return cmd
}

func (r *runner) newFilmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "film <id>",
		Short: "Show a film with similar films and its reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.LoadFilmPage(ctx, args[0]); err != nil {
					return err
				}

				state := a.Store().State()
				if state.Film.Film == nil {
					return nil
				}
				out := cmd.OutOrStdout()
				printFilm(out, state.Film.Film)
				fmt.Fprintln(out, "\nMore like this:")
				printFilms(out, state.SimilarFilms.Films)
				fmt.Fprintln(out, "\nReviews:")
				printReviews(out, state.Reviews.Reviews)
				return nil
			})
		},
	}
}

func (r *runner) newPromoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promo",
		Short: "Show the promoted film",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context, a *app.App) error {
				a.Films.FetchPromo(ctx)
				if promo := a.Store().State().Promo.Film; promo != nil {
					printFilm(cmd.OutOrStdout(), promo)
				}
				return nil
			})
		},
	}
}

func (r *runner) newFavoritesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorites",
		Short: "List the films on your list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.run(cmd, func(ctx context.Context, a *app.App) error {
				a.Favorites.FetchFavoriteFilms(ctx)
				printFilms(cmd.OutOrStdout(), a.Store().State().FavoriteFilms.Films)
				return nil
			})
		},
	}
}

func (r *runner) newFavoriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite",
		Short: "Add films to or remove them from your list",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	for _, status := range []domain.FavoriteStatus{domain.FavoriteAdd, domain.FavoriteRemove} {
		status := status
		cmd.AddCommand(&cobra.Command{
			Use:   status.String() + " <id>",
			Short: status.String() + " a film",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return r.run(cmd, func(ctx context.Context, a *app.App) error {
					a.Films.FetchFilm(ctx, args[0])
					if a.Store().State().Film.Film == nil {
						return nil
					}
					a.Favorites.SetFavorite(ctx, args[0], status)
					printFilm(cmd.OutOrStdout(), a.Store().State().Film.Film)
					return nil
				})
			},
		})
	}

	return cmd
}

func (r *runner) newReviewCmd() *cobra.Command {
	var review domain.NewReview

	cmd := &cobra.Command{
		Use:   "review <film-id>",
		Short: "Post a review of a film",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Reviews.PostReview(ctx, args[0], &review); err != nil {
					return err
				}
				a.Reviews.FetchReviews(ctx, args[0])
				printReviews(cmd.OutOrStdout(), a.Store().State().Reviews.Reviews)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&review.Text, "text", "t", "", "review text")
	cmd.Flags().Float64VarP(&review.Rating, "rating", "r", 0, "rating from 0 to 10")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}

// filmFlags are the editable film fields shared by add-film and edit-film.
type filmFlags struct {
	film           domain.Film
	posterPath     string
	backgroundPath string
}

func (f *filmFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.film.Name, "title", "", "film title")
	flags.StringVar(&f.film.Description, "description", "", "synopsis")
	flags.StringVar(&f.film.Genre, "genre", "", "genre")
	flags.IntVar(&f.film.Released, "released", 0, "release year")
	flags.IntVar(&f.film.RunTime, "run-time", 0, "run time in minutes")
	flags.StringVar(&f.film.Director, "director", "", "director")
	flags.StringSliceVar(&f.film.Starring, "starring", nil, "comma separated cast")
	flags.StringVar(&f.film.PreviewImage, "preview-image", "", "preview image url")
	flags.StringVar(&f.film.BackgroundColor, "background-color", "", "background color")
	flags.StringVar(&f.film.VideoLink, "video", "", "video url")
	flags.StringVar(&f.film.PreviewVideoLink, "preview-video", "", "preview video url")
	flags.StringVar(&f.posterPath, "poster", "", "poster image file to upload")
	flags.StringVar(&f.backgroundPath, "background", "", "background image file to upload")
}

func (f *filmFlags) uploads() (poster, background *domain.Upload, err error) {
	if poster, err = readUpload(f.posterPath); err != nil {
		return nil, nil, err
	}
	if background, err = readUpload(f.backgroundPath); err != nil {
		return nil, nil, err
	}
	return poster, background, nil
}

func (r *runner) newAddFilmCmd() *cobra.Command {
	var flags filmFlags

	cmd := &cobra.Command{
		Use:   "add-film",
		Short: "Add a film to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			poster, background, err := flags.uploads()
			if err != nil {
				return err
			}

			film := flags.film
			return r.run(cmd, func(ctx context.Context, a *app.App) error {
				err := a.Films.AddFilm(ctx, &domain.NewFilm{
					Name:             film.Name,
					Description:      film.Description,
					Genre:            film.Genre,
					Released:         film.Released,
					RunTime:          film.RunTime,
					Director:         film.Director,
					Starring:         film.Starring,
					PreviewImage:     film.PreviewImage,
					BackgroundColor:  film.BackgroundColor,
					VideoLink:        film.VideoLink,
					PreviewVideoLink: film.PreviewVideoLink,
					PosterImage:      poster,
					BackgroundImage:  background,
				})
				if err != nil {
					return err
				}
				printFilm(cmd.OutOrStdout(), a.Store().State().Film.Film)
				return nil
			})
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("genre")
	return cmd
}

func (r *runner) newEditFilmCmd() *cobra.Command {
	var flags filmFlags

	cmd := &cobra.Command{
		Use:   "edit-film <id>",
		Short: "Edit a film, only the given fields change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			poster, background, err := flags.uploads()
			if err != nil {
				return err
			}

			film := flags.film
			film.ID = args[0]
			return r.run(cmd, func(ctx context.Context, a *app.App) error {
				err := a.Films.EditFilm(ctx, &domain.FilmEdit{
					Film:            film,
					PosterImage:     poster,
					BackgroundImage: background,
				})
				if err != nil {
					return err
				}
				printFilm(cmd.OutOrStdout(), a.Store().State().Film.Film)
				return nil
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func (r *runner) newDeleteFilmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-film <id>",
		Short: "Remove a film from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Films.DeleteFilm(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted film %s\n", args[0])
				return nil
			})
		},
	}
}

func readUpload(path string) (*domain.Upload, error) {
	if path == "" {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &domain.Upload{Filename: filepath.Base(path), Content: content}, nil
}
