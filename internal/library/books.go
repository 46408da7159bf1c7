package library

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bookhavenapp/bookhaven-web/internal/domain"
)

const booksPath = "/api/books"

// ListBooks fetches the complete book list, authors embedded.
func (c *Client) ListBooks(ctx context.Context) ([]domain.Book, error) {
	var books []domain.Book
	if err := c.do(ctx, http.MethodGet, booksPath, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// SearchBooksByTitle asks the API for books whose title contains the given
// text. This is the one search the server owns; author search stays local.
func (c *Client) SearchBooksByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	var books []domain.Book
	path := booksPath + "/by-title?title=" + url.QueryEscape(title)
	if err := c.do(ctx, http.MethodGet, path, nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook fetches one book by id.
func (c *Client) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	var book domain.Book
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", booksPath, id), nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook creates a book. The payload carries authorIds; the response
// embeds the full author records.
func (c *Client) CreateBook(ctx context.Context, book domain.Book) (*domain.Book, error) {
	var created domain.Book
	if err := c.do(ctx, http.MethodPost, booksPath, book, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBook replaces the book with the given id.
func (c *Client) UpdateBook(ctx context.Context, id int64, book domain.Book) (*domain.Book, error) {
	var updated domain.Book
	path := fmt.Sprintf("%s/%d", booksPath, id)
	if err := c.do(ctx, http.MethodPut, path, book, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBook removes the book with the given id.
func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", booksPath, id), nil, nil)
}
