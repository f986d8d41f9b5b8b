package models

import (
	"strconv"
	"time"
)

// Address is an IPv4 address, octet 0 being the leftmost group of the dotted quad
type Address [4]byte

// String returns the canonical dotted quad without leading zeros
func (a Address) String() string {
	buf := make([]byte, 0, 15)
	for i, octet := range a {
		if i > 0 {
			buf = append(buf, '.')
		}
		buf = strconv.AppendUint(buf, uint64(octet), 10)
	}
	return string(buf)
}

// JournalEntry represents one validated line of the access journal
type JournalEntry struct {
	Address   Address   `json:"address"`
	Timestamp time.Time `json:"timestamp"`
}

// EntryCounts maps canonical address text to the number of entries seen.
// Keys are kept in first-seen order.
type EntryCounts struct {
	keys   []string
	counts map[string]int
}

// NewEntryCounts creates an empty count map
func NewEntryCounts() *EntryCounts {
	return &EntryCounts{counts: make(map[string]int)}
}

// Increment adds one occurrence for key
func (c *EntryCounts) Increment(key string) {
	if _, seen := c.counts[key]; !seen {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

// Get returns the count for key, zero when unseen
func (c *EntryCounts) Get(key string) int {
	return c.counts[key]
}

// Len returns the number of distinct keys
func (c *EntryCounts) Len() int {
	return len(c.keys)
}

// Keys returns the distinct keys in first-seen order
func (c *EntryCounts) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Map returns a copy of the counts
func (c *EntryCounts) Map() map[string]int {
	m := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		m[k] = v
	}
	return m
}

// LogEntry represents a log entry
type LogEntry struct {
	Timestamp time.Time `json:"when"`
	UnixTime  int64     `json:"utime"`
	Channel   string    `json:"channel"`
	Message   string    `json:"message"`
}
