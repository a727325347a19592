package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/amaumene/whattowatch/internal/domain"
	"github.com/amaumene/whattowatch/internal/store"
)

func printFilms(out io.Writer, films []domain.Film) {
	if len(films) == 0 {
		fmt.Fprintln(out, "no films")
		return
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tGENRE\tYEAR\tRATING\tMY LIST")
	for _, film := range films {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1f\t%s\n", film.ID, film.Name, film.Genre, film.Released, film.Rating, yesNo(film.IsFavorite))
	}
	w.Flush()
}

func printFilm(out io.Writer, film *domain.Film) {
	if film == nil {
		return
	}

	fmt.Fprintf(out, "%s (%d)\n", film.Name, film.Released)
	fmt.Fprintf(out, "%s, %d min, directed by %s\n", film.Genre, film.RunTime, film.Director)
	if len(film.Starring) > 0 {
		fmt.Fprintf(out, "Starring: %s\n", strings.Join(film.Starring, ", "))
	}
	fmt.Fprintf(out, "Rating: %.1f (%d ratings)\n", film.Rating, film.ScoresCount)
	fmt.Fprintf(out, "On my list: %s\n", yesNo(film.IsFavorite))
	if film.Description != "" {
		fmt.Fprintf(out, "\n%s\n", film.Description)
	}
}

func printReviews(out io.Writer, reviews []domain.Review) {
	if len(reviews) == 0 {
		fmt.Fprintln(out, "no reviews")
		return
	}

	for _, review := range reviews {
		fmt.Fprintf(out, "%s, %s, %.1f\n  %s\n", review.Author.Name, review.Date.Format("January 2, 2006"), review.Rating, review.Text)
	}
}

func printUser(out io.Writer, data store.UserData) {
	if data.AuthorizationStatus != domain.Auth || data.User == nil {
		fmt.Fprintln(out, "not signed in")
		return
	}
	fmt.Fprintf(out, "signed in as %s <%s>\n", data.User.Name, data.User.Email)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
