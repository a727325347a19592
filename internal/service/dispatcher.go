package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/amaumene/whattowatch/internal/adapter"
	"github.com/amaumene/whattowatch/internal/domain"
	"github.com/amaumene/whattowatch/internal/dto"
	"github.com/amaumene/whattowatch/internal/store"
)

type dispatcher struct {
	api      domain.Requester
	store    *store.Store
	notifier domain.Notifier
}

func newDispatcher(api domain.Requester, st *store.Store, notifier domain.Notifier) dispatcher {
	return dispatcher{api: api, store: st, notifier: notifier}
}

func (d *dispatcher) setLoading(ns store.NameSpace, loading bool) {
	d.store.Dispatch(store.SetLoading{NameSpace: ns, IsLoading: loading})
}

// report logs a failed read and shows message to the user.
func (d *dispatcher) report(operation, message string, err error) {
	log.WithFields(log.Fields{
		"operation": operation,
		"error":     err,
	}).Error("dispatcher failed")
	d.notifier.Error(message)
}

// fail logs a failed write and wraps err with sentinel for the caller.
func (d *dispatcher) fail(operation string, sentinel, err error) error {
	log.WithFields(log.Fields{
		"operation": operation,
		"error":     err,
	}).Error("dispatcher failed")
	return fmt.Errorf("%w: %w", sentinel, err)
}

type filmsFetch struct {
	nameSpace store.NameSpace
	route     string
	operation string
	message   string
	filter    func([]domain.Film) []domain.Film
}

func (d *dispatcher) fetchFilms(ctx context.Context, f filmsFetch) {
	d.setLoading(f.nameSpace, true)
	defer d.setLoading(f.nameSpace, false)

	var payload []dto.FilmDto
	if _, err := d.api.Get(ctx, f.route, &payload); err != nil {
		d.store.Dispatch(store.SetFilms{NameSpace: f.nameSpace, Films: []domain.Film{}})
		d.report(f.operation, f.message, err)
		return
	}

	films := adapter.FilmsToClient(payload)
	if f.filter != nil {
		films = f.filter(films)
	}
	d.store.Dispatch(store.SetFilms{NameSpace: f.nameSpace, Films: films})
}

type filmFetch struct {
	nameSpace store.NameSpace
	route     string
	operation string
	message   string
}

func (d *dispatcher) fetchFilm(ctx context.Context, f filmFetch) {
	d.setLoading(f.nameSpace, true)
	defer d.setLoading(f.nameSpace, false)

	var payload dto.FilmDto
	if _, err := d.api.Get(ctx, f.route, &payload); err != nil {
		d.store.Dispatch(store.SetActiveFilm{NameSpace: f.nameSpace, Film: nil})
		d.report(f.operation, f.message, err)
		return
	}

	film := adapter.FilmToClient(&payload)
	d.store.Dispatch(store.SetActiveFilm{NameSpace: f.nameSpace, Film: &film})
}
