package service

import (
	"context"

	"github.com/dkarlsen/fitquest/internal/contract"
	"github.com/dkarlsen/fitquest/internal/domain"
	"github.com/dkarlsen/fitquest/internal/planner"
)

type planService struct{}

// NewPlanService creates the plan-building service used by the CLI surface.
func NewPlanService() PlanService {
	return &planService{}
}

func (s *planService) BuildPlan(ctx context.Context, b domain.Baseline, g domain.Goals) (*contract.Plan, error) {
	candidates, err := planner.Generate(b, g)
	if err != nil {
		return nil, err
	}

	missions := planner.Prioritize(candidates, b, g)

	return &contract.Plan{
		Baseline:       b,
		Goals:          g,
		Missions:       missions,
		CandidateCount: len(candidates),
		TotalMin:       domain.TotalMinutes(missions),
	}, nil
}
