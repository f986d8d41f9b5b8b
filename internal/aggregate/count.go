package aggregate

import (
	"ipjournal/pkg/models"
)

// Count tallies entries per canonical address
func Count(entries []models.JournalEntry) *models.EntryCounts {
	counts := models.NewEntryCounts()
	for _, entry := range entries {
		counts.Increment(entry.Address.String())
	}
	return counts
}
