package library

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bookhavenapp/bookhaven-web/internal/domain"
)

const reviewsPath = "/api/reviews"

// ListReviews fetches all reviews for one book.
func (c *Client) ListReviews(ctx context.Context, bookID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	path := fmt.Sprintf("%s?bookId=%d", reviewsPath, bookID)
	if err := c.do(ctx, http.MethodGet, path, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview creates a review.
func (c *Client) CreateReview(ctx context.Context, review domain.Review) (*domain.Review, error) {
	var created domain.Review
	if err := c.do(ctx, http.MethodPost, reviewsPath, review, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateReview replaces the review with the given id.
func (c *Client) UpdateReview(ctx context.Context, id int64, review domain.Review) (*domain.Review, error) {
	var updated domain.Review
	path := fmt.Sprintf("%s/%d", reviewsPath, id)
	if err := c.do(ctx, http.MethodPut, path, review, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteReview removes the review with the given id.
func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", reviewsPath, id), nil, nil)
}
