package filter

import (
	"strings"
	"time"

	"ipjournal/pkg/models"
	"ipjournal/pkg/utils"
)

// Argument names reported in configuration errors
const (
	ArgTimeStart    = "time-start"
	ArgTimeEnd      = "time-end"
	ArgAddressStart = "address-start"
	ArgAddressMask  = "address-mask"
)

// ParseMask parses a prefix length, reporting failures as configuration errors
func ParseMask(s string) (int, error) {
	n, err := utils.ParseMaskLength(s)
	if err != nil {
		return 0, &utils.ConfigError{Name: ArgAddressMask, Reason: "is invalid: " + err.Error()}
	}
	return n, nil
}

// parseDateBounds parses the time-start and time-end arguments
func parseDateBounds(start, end string) (time.Time, time.Time, error) {
	from, err := utils.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, utils.WrongFormat(ArgTimeStart)
	}
	to, err := utils.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, utils.WrongFormat(ArgTimeEnd)
	}
	return from, to, nil
}

// parseLowerBound parses the address-start argument
func parseLowerBound(s string) (models.Address, error) {
	lower, ok := utils.ParseAddress(strings.TrimSpace(s))
	if !ok {
		return models.Address{}, utils.WrongFormat(ArgAddressStart)
	}
	return lower, nil
}

// byDate keeps entries strictly between start and end
func byDate(start, end string, entries []models.JournalEntry) ([]models.JournalEntry, error) {
	from, to, err := parseDateBounds(start, end)
	if err != nil {
		return nil, err
	}
	return Between(from, to, entries), nil
}

// Between keeps entries with from < timestamp < to
func Between(from, to time.Time, entries []models.JournalEntry) []models.JournalEntry {
	result := make([]models.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Timestamp.After(from) && entry.Timestamp.Before(to) {
			result = append(result, entry)
		}
	}
	return result
}

// byAddressRange keeps entries dominating lowerBound octet by octet
func byAddressRange(lowerBound string, entries []models.JournalEntry) ([]models.JournalEntry, error) {
	lower, err := parseLowerBound(lowerBound)
	if err != nil {
		return nil, err
	}
	return AtLeast(lower, entries), nil
}

// AtLeast keeps entries with lower[i] <= address[i] for every octet i.
// This is not a numeric comparison: 10.200.0.0 does not pass 9.255.0.0.
func AtLeast(lower models.Address, entries []models.JournalEntry) []models.JournalEntry {
	result := make([]models.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if dominates(entry.Address, lower) {
			result = append(result, entry)
		}
	}
	return result
}

func dominates(addr, lower models.Address) bool {
	for i := range addr {
		if lower[i] > addr[i] {
			return false
		}
	}
	return true
}

// ByAddressMask keeps entries that are their own network address under mask
func ByAddressMask(mask string, entries []models.JournalEntry) ([]models.JournalEntry, error) {
	length, err := ParseMask(mask)
	if err != nil {
		return nil, err
	}
	return NetworkAddresses(length, entries)
}

// NetworkAddresses keeps entries with no host bits set under the prefix length
func NetworkAddresses(length int, entries []models.JournalEntry) ([]models.JournalEntry, error) {
	mask, err := utils.MaskFor(length)
	if err != nil {
		return nil, &utils.ConfigError{Name: ArgAddressMask, Reason: "is invalid: " + err.Error()}
	}

	result := make([]models.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if isNetwork(entry.Address, mask) {
			result = append(result, entry)
		}
	}
	return result, nil
}

func isNetwork(addr, mask models.Address) bool {
	for i := range addr {
		if addr[i]&mask[i] != addr[i] {
			return false
		}
	}
	return true
}
