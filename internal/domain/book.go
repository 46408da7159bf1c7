package domain

// Book is a catalog entry. Reads embed the full author records; writes carry
// only the author identifiers.
type Book struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	PublishDate Date     `json:"publishDate"`
	Pages       int      `json:"pages"`
	Publisher   string   `json:"publisher"`
	Description string   `json:"description,omitempty"`
	Language    string   `json:"language,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	ReadURL     string   `json:"readUrl,omitempty"`
	ISBN        string   `json:"isbn,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	Authors     []Author `json:"authors,omitempty"`
	AuthorIDs   []int64  `json:"authorIds,omitempty"`
}

// WellFormed reports whether the record is usable; malformed rows are
// excluded from the full list at load time.
func (b Book) WellFormed() bool {
	return b.ID != 0 && b.Title != ""
}

// HasAuthor reports whether the book lists the given author.
func (b Book) HasAuthor(authorID int64) bool {
	for _, a := range b.Authors {
		if a.ID == authorID {
			return true
		}
	}
	return false
}

// AuthorIDList returns the identifiers of the embedded authors, for
// round-tripping a fetched book back into a write payload.
func (b Book) AuthorIDList() []int64 {
	ids := make([]int64, 0, len(b.Authors))
	for _, a := range b.Authors {
		ids = append(ids, a.ID)
	}
	return ids
}
