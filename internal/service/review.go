package service

import (
	"context"

	"github.com/amaumene/whattowatch/internal/adapter"
	"github.com/amaumene/whattowatch/internal/domain"
	"github.com/amaumene/whattowatch/internal/dto"
	"github.com/amaumene/whattowatch/internal/store"
)

type ReviewService struct {
	dispatcher
}

func NewReviewService(api domain.Requester, st *store.Store, notifier domain.Notifier) *ReviewService {
	return &ReviewService{dispatcher: newDispatcher(api, st, notifier)}
}

func (s *ReviewService) FetchReviews(ctx context.Context, filmID string) {
	s.setLoading(store.NameSpaceReviews, true)
	defer s.setLoading(store.NameSpaceReviews, false)

	var payload []dto.CommentDto
	if _, err := s.api.Get(ctx, commentsRoute(filmID), &payload); err != nil {
		s.store.Dispatch(store.SetReviews{FilmID: filmID, Reviews: []domain.Review{}})
		s.report("fetch_reviews", "Can't fetch reviews", err)
		return
	}

	s.store.Dispatch(store.SetReviews{FilmID: filmID, Reviews: adapter.CommentsToClient(payload)})
}

// PostReview sends a review for filmID. The created review is appended to
// the reviews slice when the backend echoes it back and the slice holds
// the reviews of filmID.
func (s *ReviewService) PostReview(ctx context.Context, filmID string, review *domain.NewReview) error {
	s.setLoading(store.NameSpaceReviews, true)
	defer s.setLoading(store.NameSpaceReviews, false)

	var created dto.CommentDto
	if _, err := s.api.Post(ctx, commentsRoute(filmID), adapter.CreateCommentToServer(review), &created); err != nil {
		return s.fail("post_review", ErrPostReview, err)
	}

	if created.ID == "" {
		return nil
	}
	posted := adapter.CommentToClient(&created)
	if posted.FilmID == "" {
		posted.FilmID = filmID
	}
	if posted.FilmID == s.store.State().Reviews.FilmID {
		s.store.Dispatch(store.AddReview{Review: posted})
	}
	return nil
}
