package catalog

import "strings"

// ViewState is the stored state of one list view. Only inputs live here;
// the filtered list, page slice, and page count are derived via View so they
// can never drift out of sync with the query or the underlying list.
type ViewState[T any] struct {
	// Full is the complete entity list as last fetched.
	Full []T
	// Query is the active free-text filter.
	Query string
	// Page is the 1-based page index requested by the user.
	Page int
	// Size is the fixed page size of this view.
	Size int
	// Ready is set once the first load has succeeded.
	Ready bool
	// Failure carries the last load error message, empty when healthy.
	Failure string
}

// NewViewState returns the initial state for a view with the given page size.
func NewViewState[T any](size int) ViewState[T] {
	return ViewState[T]{Page: 1, Size: size}
}

// EventKind discriminates view events.
type EventKind int

// View events.
const (
	EventLoaded EventKind = iota
	EventLoadFailed
	EventQueryChanged
	EventQueryCleared
	EventPageChanged
)

// Event is a single input to Reduce.
type Event[T any] struct {
	Kind  EventKind
	Items []T
	Query string
	Page  int
	Err   error
}

// Loaded signals a successful (re)fetch of the full list.
func Loaded[T any](items []T) Event[T] {
	return Event[T]{Kind: EventLoaded, Items: items}
}

// LoadFailed signals a failed fetch.
func LoadFailed[T any](err error) Event[T] {
	return Event[T]{Kind: EventLoadFailed, Err: err}
}

// QueryChanged signals a new filter query.
func QueryChanged[T any](query string) Event[T] {
	return Event[T]{Kind: EventQueryChanged, Query: query}
}

// QueryCleared signals the filter being reset.
func QueryCleared[T any]() Event[T] {
	return Event[T]{Kind: EventQueryCleared}
}

// PageChanged signals navigation to another page.
func PageChanged[T any](page int) Event[T] {
	return Event[T]{Kind: EventPageChanged, Page: page}
}

// Reduce applies one event to the state and returns the next state. It is
// pure: the input state is never mutated.
//
// Any event that changes the filtered list (a new query, a cleared query, or
// a replaced full list) resets the page index to 1.
func Reduce[T any](state ViewState[T], event Event[T]) ViewState[T] {
	next := state

	switch event.Kind {
	case EventLoaded:
		next.Full = event.Items
		next.Ready = true
		next.Failure = ""
		next.Page = 1
	case EventLoadFailed:
		if event.Err != nil {
			next.Failure = event.Err.Error()
		} else {
			next.Failure = "load failed"
		}
	case EventQueryChanged:
		if strings.TrimSpace(event.Query) == "" {
			next.Query = ""
		} else {
			next.Query = event.Query
		}
		next.Page = 1
	case EventQueryCleared:
		next.Query = ""
		next.Page = 1
	case EventPageChanged:
		if event.Page < 1 {
			next.Page = 1
		} else {
			next.Page = event.Page
		}
	}

	return next
}

// PageView is what a template renders: the current page slice plus the
// pagination facts derived from the state.
type PageView[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	Total      int
	Query      string
}

// View derives the renderable page from the state using the given matcher.
// The requested page is clamped against the filtered list, so stale page
// indexes degrade to the nearest valid page instead of an empty screen.
func View[T any](state ViewState[T], match func(T, string) bool) PageView[T] {
	filtered := state.Full
	if strings.TrimSpace(state.Query) != "" {
		filtered = make([]T, 0, len(state.Full))
		for _, item := range state.Full {
			if match(item, state.Query) {
				filtered = append(filtered, item)
			}
		}
	}

	slice, totalPages := Paginate(filtered, state.Size, state.Page)
	return PageView[T]{
		Items:      slice,
		Page:       ClampPage(state.Page, len(filtered), state.Size),
		TotalPages: totalPages,
		Total:      len(filtered),
		Query:      strings.TrimSpace(state.Query),
	}
}
