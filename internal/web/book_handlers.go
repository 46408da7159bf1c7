package web

import (
	"net/http"
	"strings"
)

// handleCreateBook creates a book from the submitted form.
// POST /books
func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, err)
		return
	}

	_, err := s.catalog.CreateBook(r.Context(), bookRequestFromForm(r))
	s.finishMutation(w, r, "/books", "Book created", err)
}

// handleUpdateBook updates a book from the submitted form.
// POST /books/{id}
func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := parseID(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, err)
		return
	}

	_, err = s.catalog.UpdateBook(r.Context(), bookID, bookRequestFromForm(r))
	s.finishMutation(w, r, "/books", "Book updated", err)
}

// handleDeleteBook removes a book.
// POST /books/{id}/delete
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	bookID, err := parseID(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	err = s.catalog.DeleteBook(r.Context(), bookID)
	s.finishMutation(w, r, "/books", "Book deleted", err)
}

// handleUpdateReadURL sets or clears a book's read link.
// POST /books/{id}/read-url
func (s *Server) handleUpdateReadURL(w http.ResponseWriter, r *http.Request) {
	bookID, err := parseID(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, err)
		return
	}

	readURL := strings.TrimSpace(r.FormValue("readUrl"))
	_, err = s.catalog.UpdateReadURL(r.Context(), bookID, readURL)

	msg := "Read link updated"
	if readURL == "" {
		msg = "Read link removed"
	}
	s.finishMutation(w, r, bookPath(bookID), msg, err)
}
