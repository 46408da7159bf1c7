package service

import (
	"context"

	"github.com/bookhavenapp/bookhaven-web/internal/domain"
	"github.com/bookhavenapp/bookhaven-web/internal/errors"
)

// AuthorRequest contains fields for creating or updating an author.
type AuthorRequest struct {
	Name                string  `json:"name" validate:"required,max=100"`
	Surname             string  `json:"surname" validate:"required,max=100"`
	Patronymic          string  `json:"patronymic" validate:"max=100"`
	GenreSpecialization string  `json:"genreSpecialization" validate:"max=100"`
	Biography           string  `json:"biography" validate:"max=4000"`
	BirthDate           string  `json:"birthDate" validate:"required"`
	DeathDate           string  `json:"deathDate"`
	Rating              float64 `json:"rating" validate:"gte=0,lte=5"`
}

func (r AuthorRequest) toDomain() (domain.Author, error) {
	birth, err := domain.ParseDate(r.BirthDate)
	if err != nil {
		return domain.Author{}, errors.ValidationWithDetails("validation failed",
			map[string]string{"birthDate": "must be a date in YYYY-MM-DD format"})
	}
	death, err := domain.ParseDate(r.DeathDate)
	if err != nil {
		return domain.Author{}, errors.ValidationWithDetails("validation failed",
			map[string]string{"deathDate": "must be a date in YYYY-MM-DD format"})
	}
	return domain.Author{
		Name:                r.Name,
		Surname:             r.Surname,
		Patronymic:          r.Patronymic,
		GenreSpecialization: r.GenreSpecialization,
		Biography:           r.Biography,
		BirthDate:           birth,
		DeathDate:           death,
		Rating:              r.Rating,
	}, nil
}

// CreateAuthor validates the request and creates the author upstream.
func (s *CatalogService) CreateAuthor(ctx context.Context, req AuthorRequest) (*domain.Author, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	author, err := req.toDomain()
	if err != nil {
		return nil, err
	}

	created, err := s.client.CreateAuthor(ctx, author)
	if err != nil {
		return nil, err
	}

	s.logger.Info("author created", "id", created.ID, "name", created.FullName())
	return created, nil
}

// UpdateAuthor validates the request and updates the author upstream.
func (s *CatalogService) UpdateAuthor(ctx context.Context, authorID int64, req AuthorRequest) (*domain.Author, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	author, err := req.toDomain()
	if err != nil {
		return nil, err
	}
	author.ID = authorID

	updated, err := s.client.UpdateAuthor(ctx, authorID, author)
	if err != nil {
		return nil, err
	}

	s.logger.Info("author updated", "id", authorID)
	return updated, nil
}

// DeleteAuthor removes the author upstream.
func (s *CatalogService) DeleteAuthor(ctx context.Context, authorID int64) error {
	if err := s.client.DeleteAuthor(ctx, authorID); err != nil {
		return err
	}

	s.logger.Info("author deleted", "id", authorID)
	return nil
}
