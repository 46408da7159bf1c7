// Package service orchestrates catalog operations against the library API.
package service

import (
	"context"
	"log/slog"

	"github.com/bookhavenapp/bookhaven-web/internal/catalog"
	"github.com/bookhavenapp/bookhaven-web/internal/domain"
	"github.com/bookhavenapp/bookhaven-web/internal/library"
	"github.com/bookhavenapp/bookhaven-web/internal/validation"
)

// SearchMode selects how the home page interprets a query.
type SearchMode string

const (
	// SearchByAuthor filters the loaded author list locally.
	SearchByAuthor SearchMode = "author"
	// SearchByTitle asks the library API to search book titles.
	SearchByTitle SearchMode = "title"
)

// ParseSearchMode maps a request parameter to a search mode,
// defaulting to author search for anything unrecognized.
func ParseSearchMode(s string) SearchMode {
	if SearchMode(s) == SearchByTitle {
		return SearchByTitle
	}
	return SearchByAuthor
}

// CatalogService orchestrates catalog reads and mutations.
type CatalogService struct {
	client        *library.Client
	logger        *slog.Logger
	validator     *validation.Validator
	currentUserID int64
}

// NewCatalogService creates a new catalog service. Reviews created through
// it are attributed to currentUserID.
func NewCatalogService(client *library.Client, logger *slog.Logger, currentUserID int64) *CatalogService {
	return &CatalogService{
		client:        client,
		logger:        logger,
		validator:     validation.New(),
		currentUserID: currentUserID,
	}
}

// Catalog is a consistent snapshot of authors and books.
type Catalog struct {
	Authors []domain.Author
	Books   []domain.Book
}

// LoadCatalog fetches authors and books, dropping entries the API returned
// without an identifier or display name.
func (s *CatalogService) LoadCatalog(ctx context.Context) (Catalog, error) {
	authors, err := s.client.ListAuthors(ctx)
	if err != nil {
		return Catalog{}, err
	}
	books, err := s.client.ListBooks(ctx)
	if err != nil {
		return Catalog{}, err
	}
	return Catalog{
		Authors: catalog.WellFormedAuthors(authors),
		Books:   catalog.WellFormedBooks(books),
	}, nil
}

// LoadAuthors fetches the sanitized author list.
func (s *CatalogService) LoadAuthors(ctx context.Context) ([]domain.Author, error) {
	authors, err := s.client.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.WellFormedAuthors(authors), nil
}

// LoadBooks fetches the sanitized book list.
func (s *CatalogService) LoadBooks(ctx context.Context) ([]domain.Book, error) {
	books, err := s.client.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.WellFormedBooks(books), nil
}

// SearchBooks asks the library API for books whose title contains query.
func (s *CatalogService) SearchBooks(ctx context.Context, query string) ([]domain.Book, error) {
	books, err := s.client.SearchBooksByTitle(ctx, query)
	if err != nil {
		return nil, err
	}
	return catalog.WellFormedBooks(books), nil
}

// BookDetails is a book together with its reviews.
type BookDetails struct {
	Book    domain.Book
	Reviews []domain.Review
}

// LoadBookDetails fetches a single book and its reviews.
func (s *CatalogService) LoadBookDetails(ctx context.Context, bookID int64) (BookDetails, error) {
	book, err := s.client.GetBook(ctx, bookID)
	if err != nil {
		return BookDetails{}, err
	}
	reviews, err := s.client.ListReviews(ctx, bookID)
	if err != nil {
		return BookDetails{}, err
	}
	return BookDetails{Book: *book, Reviews: reviews}, nil
}
