package service

import (
	"context"
	"time"

	"stock-advisor/internal/dto"
	"stock-advisor/internal/profile"
	"stock-advisor/pkg/logger"
)

type ProfileService interface {
	Get(ctx context.Context) (*dto.UserProfile, error)
	Update(ctx context.Context, req *dto.UpdateProfileRequest, now time.Time) (*dto.UserProfile, error)
}

type profileService struct {
	log   *logger.Logger
	store *profile.Store
}

func NewProfileService(log *logger.Logger, store *profile.Store) ProfileService {
	return &profileService{log: log, store: store}
}

// Get loads the profile and refreshes the daily activity streak as a side
// effect, so any read counts as a visit.
func (s *profileService) Get(ctx context.Context) (*dto.UserProfile, error) {
	p, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if touchStreak(p, now) {
		if err := s.store.Save(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *profileService) Update(ctx context.Context, req *dto.UpdateProfileRequest, now time.Time) (*dto.UserProfile, error) {
	p, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Experience = dto.ExperienceLevel(req.Experience)
	p.RiskTolerance = dto.RiskTolerance(req.RiskTolerance)
	p.InvestmentGoal = dto.InvestmentGoal(req.InvestmentGoal)
	p.TimeHorizon = dto.TimeHorizon(req.TimeHorizon)
	p.OnboardingComplete = true
	touchStreak(p, now)

	if err := s.store.Save(ctx, p); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "profile updated",
		logger.StringField("risk_tolerance", req.RiskTolerance),
		logger.StringField("investment_goal", req.InvestmentGoal))
	return p, nil
}

// touchStreak advances the daily streak: +1 on the first visit of a new day
// if the last visit was yesterday, reset to 1 after a gap. Reports whether
// the profile changed.
func touchStreak(p *dto.UserProfile, now time.Time) bool {
	today := now.Truncate(24 * time.Hour)
	lastDay := p.LastActive.Truncate(24 * time.Hour)

	if today.Equal(lastDay) && p.Streak > 0 {
		return false
	}

	if lastDay.Equal(today.AddDate(0, 0, -1)) {
		p.Streak++
	} else {
		p.Streak = 1
	}
	p.LastActive = now
	return true
}
