package domain

import (
	"encoding/json/v2"
	"fmt"
	"time"
)

// dateLayout is the wire format for all dates exchanged with the library API.
const dateLayout = "2006-01-02"

// Date is a calendar date carried as an ISO "YYYY-MM-DD" string on the wire.
//
// The API omits optional dates as empty strings or null; both unmarshal to
// the zero Date, and the zero Date marshals back to an empty string.
type Date struct {
	time.Time
}

// Today returns the current calendar date.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO "YYYY-MM-DD" string. An empty string is the zero Date.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("cannot parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String returns the ISO form, or the empty string for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// UnmarshalJSON accepts "YYYY-MM-DD", "", or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal %s into Date", string(data))
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON outputs the date in ISO form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
