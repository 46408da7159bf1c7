package service

import (
	"context"
	"math"

	"github.com/bookhavenapp/bookhaven-web/internal/domain"
	"github.com/bookhavenapp/bookhaven-web/internal/errors"
)

// ReviewRequest contains fields for creating or updating a review.
type ReviewRequest struct {
	Rating     float64 `json:"rating" validate:"gte=0,lte=5"`
	ReviewText string  `json:"reviewText" validate:"required,max=4000"`
}

// Ratings move in half-star increments.
func validRatingStep(rating float64) bool {
	scaled := rating * 2
	return scaled == math.Trunc(scaled)
}

func (s *CatalogService) validateReview(req ReviewRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return err
	}
	if !validRatingStep(req.Rating) {
		return errors.ValidationWithDetails("validation failed",
			map[string]string{"rating": "must be in steps of 0.5"})
	}
	return nil
}

// CreateReview validates the request and posts a review for the book,
// dated today and attributed to the configured user.
func (s *CatalogService) CreateReview(ctx context.Context, bookID int64, req ReviewRequest) (*domain.Review, error) {
	if err := s.validateReview(req); err != nil {
		return nil, err
	}

	created, err := s.client.CreateReview(ctx, domain.Review{
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		ReviewDate: domain.Today(),
		BookID:     bookID,
		UserID:     s.currentUserID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("review created", "id", created.ID, "book", bookID, "rating", req.Rating)
	return created, nil
}

// UpdateReview validates the request and updates the review upstream.
// The review keeps its original book but is re-dated to today.
func (s *CatalogService) UpdateReview(ctx context.Context, reviewID, bookID int64, req ReviewRequest) (*domain.Review, error) {
	if err := s.validateReview(req); err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateReview(ctx, reviewID, domain.Review{
		ID:         reviewID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		ReviewDate: domain.Today(),
		BookID:     bookID,
		UserID:     s.currentUserID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("review updated", "id", reviewID)
	return updated, nil
}

// DeleteReview removes the review upstream.
func (s *CatalogService) DeleteReview(ctx context.Context, reviewID int64) error {
	if err := s.client.DeleteReview(ctx, reviewID); err != nil {
		return err
	}

	s.logger.Info("review deleted", "id", reviewID)
	return nil
}
