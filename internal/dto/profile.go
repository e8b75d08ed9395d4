package dto

import "time"

type RiskTolerance string

const (
	RiskToleranceLow    RiskTolerance = "low"
	RiskToleranceMedium RiskTolerance = "medium"
	RiskToleranceHigh   RiskTolerance = "high"
)

type InvestmentGoal string

const (
	GoalDayTrading   InvestmentGoal = "day-trading"
	GoalSwingTrading InvestmentGoal = "swing-trading"
	GoalLongTerm     InvestmentGoal = "long-term"
)

type TimeHorizon string

const (
	HorizonShort  TimeHorizon = "short"
	HorizonMedium TimeHorizon = "medium"
	HorizonLong   TimeHorizon = "long"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// UserProfile is the locally persisted single-user profile. The engines read
// only RiskTolerance, InvestmentGoal, TimeHorizon and Experience.
type UserProfile struct {
	Name               string          `json:"name"`
	Experience         ExperienceLevel `json:"experience"`
	RiskTolerance      RiskTolerance   `json:"risk_tolerance"`
	InvestmentGoal     InvestmentGoal  `json:"investment_goal"`
	TimeHorizon        TimeHorizon     `json:"time_horizon"`
	OnboardingComplete bool            `json:"onboarding_complete"`
	Streak             int             `json:"streak"`
	CreatedAt          time.Time       `json:"created_at"`
	LastActive         time.Time       `json:"last_active"`
}

// UpdateProfileRequest is the PUT /profile payload.
type UpdateProfileRequest struct {
	Name           string `json:"name" validate:"required,max=64"`
	Experience     string `json:"experience" validate:"required,oneof=beginner intermediate advanced"`
	RiskTolerance  string `json:"risk_tolerance" validate:"required,oneof=low medium high"`
	InvestmentGoal string `json:"investment_goal" validate:"required,oneof=day-trading swing-trading long-term"`
	TimeHorizon    string `json:"time_horizon" validate:"required,oneof=short medium long"`
}
