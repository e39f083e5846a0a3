package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestModTime(t *testing.T) {
	now := time.Date(2026, time.July, 1, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		t        time.Time
		expected string
	}{
		{
			name:     "prior year shows the year",
			t:        time.Date(2021, time.March, 5, 9, 30, 0, 0, time.Local),
			expected: "Mar  5  2021",
		},
		{
			name:     "current year shows the wall clock",
			t:        time.Date(2026, time.January, 7, 14, 5, 0, 0, time.Local),
			expected: "Jan  7 14:05",
		},
		{
			name:     "wall clock is zero padded",
			t:        time.Date(2026, time.September, 10, 9, 5, 0, 0, time.Local),
			expected: "Sep 10 09:05",
		},
		{
			name:     "december of a prior year",
			t:        time.Date(2023, time.December, 31, 23, 59, 0, 0, time.Local),
			expected: "Dec 31  2023",
		},
		{
			name:     "two digit day needs no padding",
			t:        time.Date(2026, time.February, 15, 8, 0, 0, 0, time.Local),
			expected: "Feb 15 08:00",
		},
		{
			name:     "future year shows the year",
			t:        time.Date(2031, time.June, 1, 12, 0, 0, 0, time.Local),
			expected: "Jun  1  2031",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ModTime(tt.t, now))
		})
	}
}
