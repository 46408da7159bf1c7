package web

import (
	"net/http"
	"strconv"
)

func bookPath(bookID int64) string {
	return "/books/" + strconv.FormatInt(bookID, 10)
}

// handleCreateReview posts a review for a book.
// POST /books/{id}/reviews
func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	bookID, err := parseID(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, err)
		return
	}

	_, err = s.catalog.CreateReview(r.Context(), bookID, reviewRequestFromForm(r))
	s.finishMutation(w, r, bookPath(bookID), "Review posted", err)
}

// handleUpdateReview updates a review. The form carries the book id so
// the review stays attached to its book and the redirect lands back on it.
// POST /reviews/{id}
func (s *Server) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := parseID(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, err)
		return
	}

	bookID, err := strconv.ParseInt(r.FormValue("bookId"), 10, 64)
	if err != nil || bookID <= 0 {
		s.finishMutation(w, r, "/books", "",
			invalidField("bookId", "must identify the reviewed book"))
		return
	}

	_, err = s.catalog.UpdateReview(r.Context(), reviewID, bookID, reviewRequestFromForm(r))
	s.finishMutation(w, r, bookPath(bookID), "Review updated", err)
}

// handleDeleteReview removes a review.
// POST /reviews/{id}/delete
func (s *Server) handleDeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, err := parseID(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, err)
		return
	}

	err = s.catalog.DeleteReview(r.Context(), reviewID)
	s.finishMutation(w, r, "/books", "Review deleted", err)
}
