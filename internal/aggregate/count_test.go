package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ipjournal/pkg/models"
)

func TestCount(t *testing.T) {
	now := time.Now()
	entries := []models.JournalEntry{
		{Address: models.Address{10, 0, 0, 1}, Timestamp: now},
		{Address: models.Address{192, 168, 0, 1}, Timestamp: now},
		{Address: models.Address{10, 0, 0, 1}, Timestamp: now},
		{Address: models.Address{10, 0, 0, 1}, Timestamp: now},
	}

	counts := Count(entries)

	assert.Equal(t, 2, counts.Len())
	assert.Equal(t, []string{"10.0.0.1", "192.168.0.1"}, counts.Keys())
	assert.Equal(t, map[string]int{"10.0.0.1": 3, "192.168.0.1": 1}, counts.Map())
	assert.Zero(t, counts.Get("8.8.8.8"))
}

func TestCountIsMonotonic(t *testing.T) {
	e := models.JournalEntry{Address: models.Address{1, 2, 3, 4}, Timestamp: time.Now()}

	var entries []models.JournalEntry
	for n := 1; n <= 5; n++ {
		entries = append(entries, e)
		assert.Equal(t, n, Count(entries).Get("1.2.3.4"))
	}
}

func TestCountEmpty(t *testing.T) {
	counts := Count(nil)
	assert.Zero(t, counts.Len())
	assert.Empty(t, counts.Keys())
}
