package web

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/bookhavenapp/bookhaven-web/internal/errors"
	"github.com/bookhavenapp/bookhaven-web/internal/service"
)

// finishMutation sets the outcome notification and sends the browser back
// to the page it came from. The redirected GET re-fetches the catalog, so
// the view always reflects what the API accepted.
func (s *Server) finishMutation(w http.ResponseWriter, r *http.Request, fallback, successMsg string, err error) {
	if err != nil {
		s.setFlash(w, "error", userMessage(err))
	} else {
		s.setFlash(w, "success", successMsg)
	}
	s.redirectBack(w, r, fallback)
}

// redirectBack redirects to the form's return path, falling back when it
// is missing or not a local path.
func (s *Server) redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := r.FormValue("return")
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		target = fallback
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func invalidField(field, problem string) error {
	return errors.ValidationWithDetails("validation failed", map[string]string{field: problem})
}

// userMessage flattens a domain error into one notification line.
func userMessage(err error) string {
	var domainErr *errors.Error
	if !errors.As(err, &domainErr) {
		return "Something went wrong."
	}

	msg := domainErr.Message
	if details, ok := domainErr.Details.(map[string]string); ok && len(details) > 0 {
		fields := make([]string, 0, len(details))
		for field, problem := range details {
			fields = append(fields, field+" "+problem)
		}
		sort.Strings(fields)
		msg += ": " + strings.Join(fields, "; ")
	}
	return msg
}

// authorRequestFromForm maps the author form fields.
func authorRequestFromForm(r *http.Request) service.AuthorRequest {
	rating, _ := strconv.ParseFloat(r.FormValue("rating"), 64)
	return service.AuthorRequest{
		Name:                strings.TrimSpace(r.FormValue("name")),
		Surname:             strings.TrimSpace(r.FormValue("surname")),
		Patronymic:          strings.TrimSpace(r.FormValue("patronymic")),
		GenreSpecialization: strings.TrimSpace(r.FormValue("genreSpecialization")),
		Biography:           strings.TrimSpace(r.FormValue("biography")),
		BirthDate:           r.FormValue("birthDate"),
		DeathDate:           r.FormValue("deathDate"),
		Rating:              rating,
	}
}

// bookRequestFromForm maps the book form fields.
func bookRequestFromForm(r *http.Request) service.BookRequest {
	pages, _ := strconv.Atoi(r.FormValue("pages"))
	rating, _ := strconv.ParseFloat(r.FormValue("rating"), 64)

	var authorIDs []int64
	for _, raw := range r.Form["authorIds"] {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			authorIDs = append(authorIDs, id)
		}
	}

	return service.BookRequest{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Genre:       strings.TrimSpace(r.FormValue("genre")),
		PublishDate: r.FormValue("publishDate"),
		Pages:       pages,
		Publisher:   strings.TrimSpace(r.FormValue("publisher")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Language:    strings.TrimSpace(r.FormValue("language")),
		ImageURL:    strings.TrimSpace(r.FormValue("imageUrl")),
		ReadURL:     strings.TrimSpace(r.FormValue("readUrl")),
		ISBN:        strings.TrimSpace(r.FormValue("isbn")),
		Rating:      rating,
		AuthorIDs:   authorIDs,
	}
}

// reviewRequestFromForm maps the review form fields.
func reviewRequestFromForm(r *http.Request) service.ReviewRequest {
	rating, _ := strconv.ParseFloat(r.FormValue("rating"), 64)
	return service.ReviewRequest{
		Rating:     rating,
		ReviewText: strings.TrimSpace(r.FormValue("reviewText")),
	}
}
