package web

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/bookhavenapp/bookhaven-web/internal/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"pages": pageNumbers,
	"inc":   func(n int) int { return n + 1 },
	"dec":   func(n int) int { return n - 1 },
}).ParseFS(templateFS, "templates/*.html"))

// pageNumbers returns 1..total for pagination links.
func pageNumbers(total int) []int {
	nums := make([]int, total)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}

// page wraps every template invocation. URL is the current request URI so
// forms can send the browser back to the view it was on.
type page struct {
	Title string
	URL   string
	Flash *Flash
	Data  any
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, p page) {
	p.URL = r.URL.RequestURI()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, p); err != nil {
		s.logger.Error("Failed to execute template", "template", name, "error", err)
	}
}

// errorPageData contains data for the error page template.
type errorPageData struct {
	Message  string
	RetryURL string
}

// renderError shows the load failure page with a retry link back to the
// URL that failed.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("Request failed", "path", r.URL.Path, "error", err)

	status := http.StatusInternalServerError
	message := "Something went wrong."
	var domainErr *errors.Error
	if errors.As(err, &domainErr) {
		status = domainErr.HTTPStatus()
		message = domainErr.Message
	}

	s.render(w, r, status, "error", page{
		Title: "Error",
		Data: errorPageData{
			Message:  message,
			RetryURL: r.URL.RequestURI(),
		},
	})
}

// parsePage reads the page query parameter, defaulting to the first page.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parseQuery reads and trims the search query parameter.
func parseQuery(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get("q"))
}
