package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookhavenapp/bookhaven-web/internal/domain"
)

func authorID(a domain.Author) int64 { return a.ID }

func TestUpsertByIDReplaces(t *testing.T) {
	list := sampleAuthors()
	updated := domain.Author{ID: 2, Name: "Fyodor", Surname: "Dostoevsky", Rating: 5}

	out := UpsertByID(list, updated, authorID)
	assert.Len(t, out, len(list))
	assert.Equal(t, float64(5), out[1].Rating)
	assert.Zero(t, list[1].Rating, "input list must not be mutated")
}

func TestUpsertByIDAppends(t *testing.T) {
	list := sampleAuthors()
	added := domain.Author{ID: 99, Name: "Alexander", Surname: "Pushkin"}

	out := UpsertByID(list, added, authorID)
	assert.Len(t, out, len(list)+1)
	assert.Equal(t, int64(99), out[len(out)-1].ID)
}

func TestRemoveByID(t *testing.T) {
	list := sampleAuthors()

	out := RemoveByID(list, 2, authorID)
	assert.Len(t, out, len(list)-1)
	for _, a := range out {
		assert.NotEqual(t, int64(2), a.ID)
	}

	// Stale-id delete is a no-op.
	same := RemoveByID(list, 12345, authorID)
	assert.Equal(t, list, same)
}
