package service

import (
	"context"

	"github.com/bookhavenapp/bookhaven-web/internal/domain"
	"github.com/bookhavenapp/bookhaven-web/internal/errors"
)

// BookRequest contains fields for creating or updating a book.
type BookRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Genre       string  `json:"genre" validate:"required,max=100"`
	PublishDate string  `json:"publishDate" validate:"required"`
	Pages       int     `json:"pages" validate:"omitempty,gt=0"`
	Publisher   string  `json:"publisher" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=4000"`
	Language    string  `json:"language" validate:"max=50"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
	ReadURL     string  `json:"readUrl" validate:"omitempty,url"`
	ISBN        string  `json:"isbn" validate:"max=20"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	AuthorIDs   []int64 `json:"authorIds" validate:"required,min=1"`
}

func (r BookRequest) toDomain() (domain.Book, error) {
	published, err := domain.ParseDate(r.PublishDate)
	if err != nil {
		return domain.Book{}, errors.ValidationWithDetails("validation failed",
			map[string]string{"publishDate": "must be a date in YYYY-MM-DD format"})
	}
	return domain.Book{
		Title:       r.Title,
		Genre:       r.Genre,
		PublishDate: published,
		Pages:       r.Pages,
		Publisher:   r.Publisher,
		Description: r.Description,
		Language:    r.Language,
		ImageURL:    r.ImageURL,
		ReadURL:     r.ReadURL,
		ISBN:        r.ISBN,
		Rating:      r.Rating,
		AuthorIDs:   r.AuthorIDs,
	}, nil
}

// CreateBook validates the request and creates the book upstream.
func (s *CatalogService) CreateBook(ctx context.Context, req BookRequest) (*domain.Book, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	book, err := req.toDomain()
	if err != nil {
		return nil, err
	}

	created, err := s.client.CreateBook(ctx, book)
	if err != nil {
		return nil, err
	}

	s.logger.Info("book created", "id", created.ID, "title", created.Title)
	return created, nil
}

// UpdateBook validates the request and updates the book upstream.
func (s *CatalogService) UpdateBook(ctx context.Context, bookID int64, req BookRequest) (*domain.Book, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	book, err := req.toDomain()
	if err != nil {
		return nil, err
	}
	book.ID = bookID

	updated, err := s.client.UpdateBook(ctx, bookID, book)
	if err != nil {
		return nil, err
	}

	s.logger.Info("book updated", "id", bookID)
	return updated, nil
}

// UpdateReadURL replaces only the book's read link, carrying the rest of
// the record through unchanged.
func (s *CatalogService) UpdateReadURL(ctx context.Context, bookID int64, readURL string) (*domain.Book, error) {
	if readURL != "" {
		if err := s.validator.Validate(struct {
			ReadURL string `json:"readUrl" validate:"url"`
		}{readURL}); err != nil {
			return nil, err
		}
	}

	book, err := s.client.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	book.ReadURL = readURL
	book.AuthorIDs = book.AuthorIDList()

	updated, err := s.client.UpdateBook(ctx, bookID, *book)
	if err != nil {
		return nil, err
	}

	s.logger.Info("book read link updated", "id", bookID)
	return updated, nil
}

// DeleteBook removes the book upstream.
func (s *CatalogService) DeleteBook(ctx context.Context, bookID int64) error {
	if err := s.client.DeleteBook(ctx, bookID); err != nil {
		return err
	}

	s.logger.Info("book deleted", "id", bookID)
	return nil
}
