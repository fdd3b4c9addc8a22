package service

import (
	"context"

	"github.com/dkarlsen/fitquest/internal/contract"
	"github.com/dkarlsen/fitquest/internal/domain"
)

// PlanService builds a prioritized daily plan for a baseline/goals pair.
type PlanService interface {
	BuildPlan(ctx context.Context, b domain.Baseline, g domain.Goals) (*contract.Plan, error)
}

// UserService exposes the gamified operations: survey intake, dashboard,
// and mission completion.
type UserService interface {
	CreateFromSurvey(ctx context.Context, name string, responses []domain.SurveyResponse) (*contract.CreateUserResult, error)
	Dashboard(ctx context.Context, userID string) (*contract.Dashboard, error)
	CompleteMission(ctx context.Context, userID, missionID string) (*contract.CompletionOutcome, error)
}
