package service

import (
	"testing"
	"time"

	"stock-advisor/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestTouchStreak(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		lastActive  time.Time
		streak      int
		wantChanged bool
		wantStreak  int
	}{
		{
			name:        "same day no change",
			lastActive:  now.Add(-2 * time.Hour),
			streak:      3,
			wantChanged: false,
			wantStreak:  3,
		},
		{
			name:        "yesterday increments",
			lastActive:  now.AddDate(0, 0, -1),
			streak:      3,
			wantChanged: true,
			wantStreak:  4,
		},
		{
			name:        "gap resets",
			lastActive:  now.AddDate(0, 0, -5),
			streak:      9,
			wantChanged: true,
			wantStreak:  1,
		},
		{
			name:        "fresh profile starts at one",
			lastActive:  now,
			streak:      0,
			wantChanged: true,
			wantStreak:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &dto.UserProfile{LastActive: tt.lastActive, Streak: tt.streak}

			changed := touchStreak(p, now)

			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantStreak, p.Streak)
			if changed {
				assert.Equal(t, now, p.LastActive)
			}
		})
	}
}
