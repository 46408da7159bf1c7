package domain

// Review is a reader's rating and text for one book.
//
// UserID identifies the review's owner. It comes from the shell's session
// configuration until a real auth collaborator exists.
type Review struct {
	ID         int64   `json:"id"`
	Rating     float64 `json:"rating"`
	ReviewText string  `json:"reviewText"`
	ReviewDate Date    `json:"reviewDate"`
	BookID     int64   `json:"bookId"`
	UserID     int64   `json:"userId"`
}
