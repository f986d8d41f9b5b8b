package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses a free-form date or date/time in the local time zone
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	return dateparse.ParseIn(s, time.Local)
}
