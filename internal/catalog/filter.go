// Package catalog implements the list-view logic shared by every catalog
// page: sanitizing fetched lists, free-text filtering, pagination, and the
// view state reducer. Everything here is pure; transport lives in the
// library client and rendering in the web server.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/bookhavenapp/bookhaven-web/internal/domain"
)

// foldString case-folds a string for caseless matching. The catalog data is
// mixed Latin and Cyrillic, where ASCII lowercasing is not enough.
//
// cases.Caser is stateful, so a fresh one is taken per call.
func foldString(s string) string {
	return cases.Fold().String(s)
}

// MatchesQuery reports whether text contains query, ignoring case.
// A blank query matches everything.
func MatchesQuery(text, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(foldString(text), foldString(query))
}

// WellFormedAuthors drops malformed author records. Exclusion happens before
// any filtering, so a malformed row can never reappear when the query clears.
func WellFormedAuthors(authors []domain.Author) []domain.Author {
	kept := make([]domain.Author, 0, len(authors))
	for _, a := range authors {
		if a.WellFormed() {
			kept = append(kept, a)
		}
	}
	return kept
}

// WellFormedBooks drops malformed book records.
func WellFormedBooks(books []domain.Book) []domain.Book {
	kept := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if b.WellFormed() {
			kept = append(kept, b)
		}
	}
	return kept
}

// AuthorMatch reports whether the author's full display name contains the
// query, ignoring case.
func AuthorMatch(a domain.Author, query string) bool {
	return MatchesQuery(a.FullName(), query)
}

// BookByAuthorMatch reports whether any of the book's authors match the
// query by full display name.
func BookByAuthorMatch(b domain.Book, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	for _, a := range b.Authors {
		if a.WellFormed() && AuthorMatch(a, query) {
			return true
		}
	}
	return false
}

// FilterAuthors returns the authors whose full name contains the query.
// A blank query returns the input unchanged, preserving order.
func FilterAuthors(authors []domain.Author, query string) []domain.Author {
	if strings.TrimSpace(query) == "" {
		return authors
	}
	filtered := make([]domain.Author, 0, len(authors))
	for _, a := range authors {
		if AuthorMatch(a, query) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// FilterBooksByAuthor returns the books with at least one author whose full
// name contains the query.
func FilterBooksByAuthor(books []domain.Book, query string) []domain.Book {
	if strings.TrimSpace(query) == "" {
		return books
	}
	filtered := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if BookByAuthorMatch(b, query) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// BooksByAuthor returns the books listing the given author, in input order.
// Author shelves on the authors page are derived this way from the full book
// list rather than fetched per author.
func BooksByAuthor(books []domain.Book, authorID int64) []domain.Book {
	owned := make([]domain.Book, 0)
	for _, b := range books {
		if b.HasAuthor(authorID) {
			owned = append(owned, b)
		}
	}
	return owned
}
