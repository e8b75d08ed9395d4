package profile

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"stock-advisor/internal/dto"
	"stock-advisor/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"), logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetSeedsDefaults(t *testing.T) {
	store := newTestStore(t)

	p, err := store.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Investor", p.Name)
	assert.Equal(t, dto.ExperienceBeginner, p.Experience)
	assert.Equal(t, dto.RiskToleranceMedium, p.RiskTolerance)
	assert.Equal(t, dto.GoalLongTerm, p.InvestmentGoal)
	assert.Equal(t, dto.HorizonLong, p.TimeHorizon)
	assert.False(t, p.OnboardingComplete)
}

func TestSaveRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)
	want := &dto.UserProfile{
		Name:               "Alex",
		Experience:         dto.ExperienceAdvanced,
		RiskTolerance:      dto.RiskToleranceHigh,
		InvestmentGoal:     dto.GoalDayTrading,
		TimeHorizon:        dto.HorizonShort,
		OnboardingComplete: true,
		Streak:             7,
		CreatedAt:          now,
		LastActive:         now,
	}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Experience, got.Experience)
	assert.Equal(t, want.RiskTolerance, got.RiskTolerance)
	assert.Equal(t, want.InvestmentGoal, got.InvestmentGoal)
	assert.Equal(t, want.TimeHorizon, got.TimeHorizon)
	assert.True(t, got.OnboardingComplete)
	assert.Equal(t, 7, got.Streak)
	assert.Equal(t, now.Unix(), got.LastActive.Unix())
}

func TestSaveOverwritesSingleRow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Get(ctx)
	require.NoError(t, err)

	first.Name = "Jordan"
	first.RiskTolerance = dto.RiskToleranceLow
	require.NoError(t, store.Save(ctx, first))

	second, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jordan", second.Name)
	assert.Equal(t, dto.RiskToleranceLow, second.RiskTolerance)
}
