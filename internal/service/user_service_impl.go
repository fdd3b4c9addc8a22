package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dkarlsen/fitquest/internal/contract"
	"github.com/dkarlsen/fitquest/internal/domain"
	"github.com/dkarlsen/fitquest/internal/ledger"
	"github.com/dkarlsen/fitquest/internal/planner"
	"github.com/dkarlsen/fitquest/internal/repository"
	"github.com/dkarlsen/fitquest/internal/survey"
)

const xpPerLevel = 100

type userService struct {
	users repository.UserRepo
	led   *ledger.Ledger
	now   func() time.Time

	// rngMu guards rng: *rand.Rand is not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand

	// userLocks serializes read-modify-write cycles per user id, so two
	// concurrent completions for the same user cannot interleave.
	locksMu   sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewUserService creates the gamified user service. rng drives flavor-text
// and reward selection; pass a seeded source for reproducible missions, or
// nil for a time-seeded one.
func NewUserService(users repository.UserRepo, led *ledger.Ledger, rng *rand.Rand) UserService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &userService{
		users:     users,
		led:       led,
		now:       time.Now,
		rng:       rng,
		userLocks: make(map[string]*sync.Mutex),
	}
}

func (s *userService) CreateFromSurvey(ctx context.Context, name string, responses []domain.SurveyResponse) (*contract.CreateUserResult, error) {
	b := survey.ProcessBaseline(responses)
	g := survey.ProcessGoals(responses)

	s.rngMu.Lock()
	missions, err := planner.GenerateDaily(b, g, s.rng)
	s.rngMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("generating initial missions: %w", err)
	}
	missions = planner.Prioritize(missions, b, g)

	u := &domain.User{
		ID:             uuid.NewString(),
		Name:           name,
		Baseline:       b,
		Goals:          g,
		Progress:       domain.NewProgress(),
		Responses:      responses,
		TodaysMissions: missions,
		CreatedAt:      s.now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("storing user: %w", err)
	}

	return &contract.CreateUserResult{
		UserID:   u.ID,
		Name:     u.Name,
		Missions: missions,
	}, nil
}

func (s *userService) Dashboard(ctx context.Context, userID string) (*contract.Dashboard, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &contract.Dashboard{
		UserID:         u.ID,
		Name:           u.Name,
		MemberSince:    u.CreatedAt,
		PrimaryGoal:    u.Goals.PrimaryGoal,
		TodaysMissions: u.TodaysMissions,
		Report:         buildReport(u.Progress),
	}, nil
}

func (s *userService) CompleteMission(ctx context.Context, userID, missionID string) (*contract.CompletionOutcome, error) {
	lock := s.lockFor(userID)
	lock.Lock()
	defer lock.Unlock()

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Prefer the stored mission so its own reward values are honored.
	// An id with no stored mission still completes with fallback rewards.
	mission := domain.Mission{ID: missionID}
	for i := range u.TodaysMissions {
		if u.TodaysMissions[i].ID == missionID {
			u.TodaysMissions[i].Completed = true
			mission = u.TodaysMissions[i]
			break
		}
	}

	result, err := s.led.Complete(&u.Progress, mission)
	if err != nil {
		return nil, fmt.Errorf("applying completion: %w", err)
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("storing progress: %w", err)
	}

	return &contract.CompletionOutcome{
		MissionID:       missionID,
		XPAwarded:       result.XPAwarded,
		CoinsAwarded:    result.CoinsAwarded,
		LevelsGained:    result.LevelsGained,
		NewAchievements: result.NewUnlocks,
		Report:          buildReport(u.Progress),
	}, nil
}

func (s *userService) lockFor(userID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

func buildReport(p domain.Progress) contract.ProgressReport {
	required := p.Level * xpPerLevel
	intoLevel := p.XP - (p.Level-1)*xpPerLevel
	if intoLevel < 0 {
		intoLevel = 0
	}
	return contract.ProgressReport{
		Level:          p.Level,
		XP:             p.XP,
		XPIntoLevel:    intoLevel,
		XPToNextLevel:  required - p.XP,
		Coins:          p.Coins,
		TotalCompleted: p.TotalCompleted(),
		Achievements:   len(p.Unlocked),
	}
}
