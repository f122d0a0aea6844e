package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{
			name: "identical ranges",
			s1:   date(2026, 3, 10), e1: date(2026, 3, 12),
			s2: date(2026, 3, 10), e2: date(2026, 3, 12),
			want: true,
		},
		{
			name: "partial overlap",
			s1:   date(2026, 3, 10), e1: date(2026, 3, 14),
			s2: date(2026, 3, 12), e2: date(2026, 3, 16),
			want: true,
		},
		{
			name: "containment",
			s1:   date(2026, 3, 10), e1: date(2026, 3, 20),
			s2: date(2026, 3, 12), e2: date(2026, 3, 14),
			want: true,
		},
		{
			name: "adjacent ranges do not overlap",
			s1:   date(2026, 3, 10), e1: date(2026, 3, 12),
			s2: date(2026, 3, 12), e2: date(2026, 3, 14),
			want: false,
		},
		{
			name: "disjoint ranges",
			s1:   date(2026, 3, 10), e1: date(2026, 3, 12),
			s2: date(2026, 3, 20), e2: date(2026, 3, 22),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestOverlapsIgnoresTimeOfDay(t *testing.T) {
	// a 14:00 check-in and an 11:00 checkout on the same day still count
	// as the same day
	s1 := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	e1 := time.Date(2026, 3, 12, 11, 0, 0, 0, time.UTC)
	s2 := time.Date(2026, 3, 12, 15, 0, 0, 0, time.UTC)
	e2 := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	assert.False(t, Overlaps(s1, e1, s2, e2))
}

func TestNights(t *testing.T) {
	assert.Equal(t, 2, Nights(date(2026, 3, 10), date(2026, 3, 12)))
	assert.Equal(t, 1, Nights(date(2026, 3, 10), date(2026, 3, 11)))
	assert.Equal(t, 0, Nights(date(2026, 3, 10), date(2026, 3, 10)))
	assert.Equal(t, 0, Nights(date(2026, 3, 12), date(2026, 3, 10)))
}

func TestBeginningOfDay(t *testing.T) {
	got := BeginningOfDay(time.Date(2026, 3, 10, 17, 45, 12, 999, time.UTC))
	assert.Equal(t, date(2026, 3, 10), got)
}
