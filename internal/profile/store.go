package profile

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"stock-advisor/internal/dto"
	"stock-advisor/pkg/logger"

	_ "modernc.org/sqlite"
)

// Store persists the single-user profile in a local SQLite file, the desktop
// analogue of the browser-local storage blob the app was designed around.
type Store struct {
	db  *sql.DB
	log *logger.Logger
}

// NewStore opens (or creates) the database, runs the schema and seeds the
// default profile on first run.
func NewStore(dbPath string, log *logger.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("profile store opened", logger.StringField("path", dbPath))
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS user_profile (
		id                  INTEGER PRIMARY KEY CHECK (id = 1),
		name                TEXT NOT NULL,
		experience          TEXT NOT NULL,
		risk_tolerance      TEXT NOT NULL,
		investment_goal     TEXT NOT NULL,
		time_horizon        TEXT NOT NULL,
		onboarding_complete INTEGER NOT NULL DEFAULT 0,
		streak              INTEGER NOT NULL DEFAULT 0,
		created_at          INTEGER NOT NULL,
		last_active         INTEGER NOT NULL
	)`)
	return err
}

// defaultProfile mirrors the onboarding defaults for a fresh install.
func defaultProfile(now time.Time) *dto.UserProfile {
	return &dto.UserProfile{
		Name:           "Investor",
		Experience:     dto.ExperienceBeginner,
		RiskTolerance:  dto.RiskToleranceMedium,
		InvestmentGoal: dto.GoalLongTerm,
		TimeHorizon:    dto.HorizonLong,
		CreatedAt:      now,
		LastActive:     now,
	}
}

// Get loads the profile, seeding defaults when none exists yet.
func (s *Store) Get(ctx context.Context) (*dto.UserProfile, error) {
	row := s.db.QueryRowContext(ctx, `SELECT
		name, experience, risk_tolerance, investment_goal, time_horizon,
		onboarding_complete, streak, created_at, last_active
		FROM user_profile WHERE id = 1`)

	var p dto.UserProfile
	var onboarding int
	var createdAt, lastActive int64
	err := row.Scan(&p.Name, &p.Experience, &p.RiskTolerance, &p.InvestmentGoal,
		&p.TimeHorizon, &onboarding, &p.Streak, &createdAt, &lastActive)
	if err == sql.ErrNoRows {
		defaults := defaultProfile(time.Now())
		if err := s.Save(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	p.OnboardingComplete = onboarding != 0
	p.CreatedAt = time.Unix(createdAt, 0)
	p.LastActive = time.Unix(lastActive, 0)
	return &p, nil
}

// Save upserts the single profile row.
func (s *Store) Save(ctx context.Context, p *dto.UserProfile) error {
	onboarding := 0
	if p.OnboardingComplete {
		onboarding = 1
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO user_profile
		(id, name, experience, risk_tolerance, investment_goal, time_horizon,
		 onboarding_complete, streak, created_at, last_active)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			experience = excluded.experience,
			risk_tolerance = excluded.risk_tolerance,
			investment_goal = excluded.investment_goal,
			time_horizon = excluded.time_horizon,
			onboarding_complete = excluded.onboarding_complete,
			streak = excluded.streak,
			last_active = excluded.last_active`,
		p.Name, string(p.Experience), string(p.RiskTolerance), string(p.InvestmentGoal),
		string(p.TimeHorizon), onboarding, p.Streak, p.CreatedAt.Unix(), p.LastActive.Unix())
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	s.log.Info("closing profile store")
	return s.db.Close()
}
