package library

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bookhavenapp/bookhaven-web/internal/domain"
)

const authorsPath = "/api/authors"

// ListAuthors fetches the complete author list.
func (c *Client) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	var authors []domain.Author
	if err := c.do(ctx, http.MethodGet, authorsPath, nil, &authors); err != nil {
		return nil, err
	}
	return authors, nil
}

// CreateAuthor creates an author and returns the server's copy, including
// the assigned identifier.
func (c *Client) CreateAuthor(ctx context.Context, author domain.Author) (*domain.Author, error) {
	var created domain.Author
	if err := c.do(ctx, http.MethodPost, authorsPath, author, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateAuthor replaces the author with the given id.
func (c *Client) UpdateAuthor(ctx context.Context, id int64, author domain.Author) (*domain.Author, error) {
	var updated domain.Author
	path := fmt.Sprintf("%s/%d", authorsPath, id)
	if err := c.do(ctx, http.MethodPut, path, author, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteAuthor removes the author with the given id.
func (c *Client) DeleteAuthor(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", authorsPath, id), nil, nil)
}
