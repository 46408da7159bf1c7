// Package domain defines the catalog entities exchanged with the library API.
//
// The shell owns no authoritative copy of any entity: identifiers are always
// server-assigned and every field reflects the last successful fetch.
package domain

import "strings"

// Author is a writer in the library catalog.
type Author struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Surname             string  `json:"surname"`
	Patronymic          string  `json:"patronymic,omitempty"`
	GenreSpecialization string  `json:"genreSpecialization,omitempty"`
	Biography           string  `json:"biography,omitempty"`
	BirthDate           Date    `json:"birthDate"`
	DeathDate           Date    `json:"deathDate,omitzero"`
	Rating              float64 `json:"rating"`
}

// FullName returns the display name: "surname name [patronymic]".
func (a Author) FullName() string {
	parts := []string{a.Surname, a.Name}
	if a.Patronymic != "" {
		parts = append(parts, a.Patronymic)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Deceased reports whether the author has a recorded death date.
func (a Author) Deceased() bool {
	return !a.DeathDate.IsZero()
}

// WellFormed reports whether the record is usable at all. The upstream API
// has been observed to return rows with no identifier or an empty name;
// those are dropped from the full list at load time, not merely hidden.
func (a Author) WellFormed() bool {
	return a.ID != 0 && a.Name != "" && a.Surname != ""
}
