package web

import "net/http"

// handleCreateAuthor creates an author from the submitted form.
// POST /authors
func (s *Server) handleCreateAuthor(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, err)
		return
	}

	_, err := s.catalog.CreateAuthor(r.Context(), authorRequestFromForm(r))
	s.finishMutation(w, r, "/authors", "Author created", err)
}

// handleUpdateAuthor updates an author from the submitted form.
// POST /authors/{id}
func (s *Server) handleUpdateAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := parseID(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, err)
		return
	}

	_, err = s.catalog.UpdateAuthor(r.Context(), authorID, authorRequestFromForm(r))
	s.finishMutation(w, r, "/authors", "Author updated", err)
}

// handleDeleteAuthor removes an author.
// POST /authors/{id}/delete
func (s *Server) handleDeleteAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := parseID(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	err = s.catalog.DeleteAuthor(r.Context(), authorID)
	s.finishMutation(w, r, "/authors", "Author deleted", err)
}
