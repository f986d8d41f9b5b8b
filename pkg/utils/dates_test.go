package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := map[string]time.Time{
		"2022-04-08":          time.Date(2022, 4, 8, 0, 0, 0, 0, time.Local),
		"2022-04-08 12:30:00": time.Date(2022, 4, 8, 12, 30, 0, 0, time.Local),
		" 2022-04-09 ":        time.Date(2022, 4, 9, 0, 0, 0, 0, time.Local),
		"2022/04/08":          time.Date(2022, 4, 8, 0, 0, 0, 0, time.Local),
	}
	for in, want := range cases {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%q parsed as %s", in, got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "not a date"} {
		_, err := ParseDate(in)
		assert.Error(t, err, in)
	}
}
