package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bookhavenapp/bookhaven-web/internal/catalog"
	"github.com/bookhavenapp/bookhaven-web/internal/domain"
	"github.com/bookhavenapp/bookhaven-web/internal/errors"
	"github.com/bookhavenapp/bookhaven-web/internal/service"
)

// authorListData contains data for author listing templates.
type authorListData struct {
	View  catalog.PageView[domain.Author]
	Books map[int64][]domain.Book
}

// bookListData contains data for book listing templates.
type bookListData struct {
	View    catalog.PageView[domain.Book]
	Authors []domain.Author
}

// homeData contains data for the home page template.
type homeData struct {
	Mode  service.SearchMode
	Query string
	View  catalog.PageView[domain.Book]
}

// authorPageView derives the visible author page from the full list and
// the request's query and page parameters.
func authorPageView(authors []domain.Author, query string, pageNum int) catalog.PageView[domain.Author] {
	state := catalog.NewViewState[domain.Author](catalog.AuthorsPerPage)
	state = catalog.Reduce(state, catalog.Loaded(authors))
	if query != "" {
		state = catalog.Reduce(state, catalog.QueryChanged[domain.Author](query))
	}
	state = catalog.Reduce(state, catalog.PageChanged[domain.Author](pageNum))
	return catalog.View(state, catalog.AuthorMatch)
}

// bookPageView does the same for books with a caller-chosen matcher.
func bookPageView(books []domain.Book, query string, pageNum int, match func(domain.Book, string) bool) catalog.PageView[domain.Book] {
	state := catalog.NewViewState[domain.Book](catalog.BooksPerPage)
	state = catalog.Reduce(state, catalog.Loaded(books))
	if query != "" {
		state = catalog.Reduce(state, catalog.QueryChanged[domain.Book](query))
	}
	state = catalog.Reduce(state, catalog.PageChanged[domain.Book](pageNum))
	return catalog.View(state, match)
}

// anyBook keeps every entry; used when the API already narrowed the list.
func anyBook(domain.Book, string) bool { return true }

// booksPerAuthor indexes books by the authors on the given page.
func booksPerAuthor(authors []domain.Author, books []domain.Book) map[int64][]domain.Book {
	byAuthor := make(map[int64][]domain.Book, len(authors))
	for _, a := range authors {
		byAuthor[a.ID] = catalog.BooksByAuthor(books, a.ID)
	}
	return byAuthor
}

// handleHome serves the book search page. Title queries go to the API,
// author queries narrow the loaded list by author name.
// GET /?q=...&mode=author|title&page=N
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := parseQuery(r)
	mode := service.ParseSearchMode(r.URL.Query().Get("mode"))
	pageNum := parsePage(r)

	var view catalog.PageView[domain.Book]
	if mode == service.SearchByTitle && query != "" {
		books, err := s.catalog.SearchBooks(ctx, query)
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		view = bookPageView(books, "", pageNum, anyBook)
		view.Query = query
	} else {
		books, err := s.catalog.LoadBooks(ctx)
		if err != nil {
			s.renderError(w, r, err)
			return
		}
		view = bookPageView(books, query, pageNum, catalog.BookByAuthorMatch)
	}

	s.render(w, r, http.StatusOK, "home", page{
		Title: "BookHaven",
		Flash: s.popFlash(w, r),
		Data:  homeData{Mode: mode, Query: query, View: view},
	})
}

// handleAuthorList serves the author catalog.
// GET /authors?q=...&page=N
func (s *Server) handleAuthorList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cat, err := s.catalog.LoadCatalog(ctx)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	view := authorPageView(cat.Authors, parseQuery(r), parsePage(r))
	s.render(w, r, http.StatusOK, "authors", page{
		Title: "Authors",
		Flash: s.popFlash(w, r),
		Data: authorListData{
			View:  view,
			Books: booksPerAuthor(view.Items, cat.Books),
		},
	})
}

// handleBookList serves the book catalog. The query is a title search
// answered by the API.
// GET /books?q=...&page=N
func (s *Server) handleBookList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := parseQuery(r)

	authors, err := s.catalog.LoadAuthors(ctx)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	var books []domain.Book
	if query != "" {
		books, err = s.catalog.SearchBooks(ctx, query)
	} else {
		books, err = s.catalog.LoadBooks(ctx)
	}
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	view := bookPageView(books, "", parsePage(r), anyBook)
	view.Query = query
	s.render(w, r, http.StatusOK, "books", page{
		Title: "Books",
		Flash: s.popFlash(w, r),
		Data: bookListData{
			View:    view,
			Authors: authors,
		},
	})
}

// bookDetailsData contains data for the book details template.
type bookDetailsData struct {
	Book    domain.Book
	Reviews []domain.Review
}

// handleBookDetails serves one book with its reviews.
// GET /books/{id}
func (s *Server) handleBookDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bookID, err := parseID(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	details, err := s.catalog.LoadBookDetails(ctx, bookID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, "book", page{
		Title: details.Book.Title,
		Flash: s.popFlash(w, r),
		Data: bookDetailsData{
			Book:    details.Book,
			Reviews: details.Reviews,
		},
	})
}

// parseID reads the id route parameter.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NotFound("no such record")
	}
	return id, nil
}
