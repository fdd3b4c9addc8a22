package service

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkarlsen/fitquest/internal/domain"
	"github.com/dkarlsen/fitquest/internal/ledger"
	"github.com/dkarlsen/fitquest/internal/repository"
	"github.com/dkarlsen/fitquest/internal/survey"
	"github.com/dkarlsen/fitquest/internal/testutil"
)

func newTestUserService(t *testing.T) UserService {
	t.Helper()
	repo := repository.NewSQLiteUserRepo(testutil.NewTestDB(t))
	led := ledger.New(ledger.DefaultAchievements())
	return NewUserService(repo, led, rand.New(rand.NewSource(42)))
}

func surveyResponses() []domain.SurveyResponse {
	return []domain.SurveyResponse{
		{QuestionID: survey.QCurrentStrength, Value: "3"},
		{QuestionID: survey.QCurrentEndurance, Value: "3"},
		{QuestionID: survey.QTargetStrength, Value: "8"},
		{QuestionID: survey.QTargetEndurance, Value: "7"},
		{QuestionID: survey.QTimeAvailable, Value: "60"},
		{QuestionID: survey.QPrimaryGoal, Value: "general_fitness"},
		{QuestionID: survey.QExperience, Value: "intermediate"},
	}
}

func TestCreateFromSurvey(t *testing.T) {
	svc := newTestUserService(t)

	result, err := svc.CreateFromSurvey(context.Background(), "Dana", surveyResponses())

	require.NoError(t, err)
	assert.NotEmpty(t, result.UserID)
	assert.Equal(t, "Dana", result.Name)
	require.NotEmpty(t, result.Missions)
	for _, m := range result.Missions {
		assert.Greater(t, m.XPReward, 0, "daily missions carry rewards")
	}
}

func TestCreateFromSurvey_PlanFitsTimeBudget(t *testing.T) {
	svc := newTestUserService(t)
	responses := append(surveyResponses(),
		domain.SurveyResponse{QuestionID: survey.QTimeAvailable, Value: "25"})

	result, err := svc.CreateFromSurvey(context.Background(), "Dana", responses)

	require.NoError(t, err)
	assert.LessOrEqual(t, domain.TotalMinutes(result.Missions), 25)
}

func TestDashboard(t *testing.T) {
	svc := newTestUserService(t)
	created, err := svc.CreateFromSurvey(context.Background(), "Dana", surveyResponses())
	require.NoError(t, err)

	dash, err := svc.Dashboard(context.Background(), created.UserID)

	require.NoError(t, err)
	assert.Equal(t, created.UserID, dash.UserID)
	assert.Equal(t, "Dana", dash.Name)
	assert.Equal(t, domain.GoalGeneralFitness, dash.PrimaryGoal)
	assert.Equal(t, created.Missions, dash.TodaysMissions)
	assert.Equal(t, 1, dash.Report.Level)
	assert.Equal(t, 100, dash.Report.XPToNextLevel)
}

func TestDashboard_UnknownUser(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.Dashboard(context.Background(), "nobody")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCompleteMission_HonorsStoredRewards(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()
	created, err := svc.CreateFromSurvey(ctx, "Dana", surveyResponses())
	require.NoError(t, err)
	target := created.Missions[0]

	outcome, err := svc.CompleteMission(ctx, created.UserID, target.ID)

	require.NoError(t, err)
	assert.Equal(t, target.ID, outcome.MissionID)
	// first_mission unlocks on the first completion, so the awarded totals
	// include its bonus on top of the mission's own rewards.
	assert.Equal(t, target.XPReward+25, outcome.XPAwarded)
	assert.Equal(t, target.CoinReward+10, outcome.CoinsAwarded)
	assert.Equal(t, 1, outcome.Report.TotalCompleted)
	assert.Equal(t, 1, outcome.Report.Achievements)

	dash, err := svc.Dashboard(ctx, created.UserID)
	require.NoError(t, err)
	var completed *domain.Mission
	for i := range dash.TodaysMissions {
		if dash.TodaysMissions[i].ID == target.ID {
			completed = &dash.TodaysMissions[i]
		}
	}
	require.NotNil(t, completed)
	assert.True(t, completed.Completed, "completion flag persists")
}

func TestCompleteMission_UnknownMissionUsesFallback(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()
	created, err := svc.CreateFromSurvey(ctx, "Dana", surveyResponses())
	require.NoError(t, err)

	outcome, err := svc.CompleteMission(ctx, created.UserID, "not-a-mission")

	require.NoError(t, err)
	assert.Equal(t, 20+25, outcome.XPAwarded, "flat fallback plus first_mission bonus")
}

func TestCompleteMission_UnknownUser(t *testing.T) {
	svc := newTestUserService(t)

	_, err := svc.CompleteMission(context.Background(), "nobody", "m1-cardio")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCompleteMission_ConcurrentCompletionsAllLand(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()
	created, err := svc.CreateFromSurvey(ctx, "Dana", surveyResponses())
	require.NoError(t, err)

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := svc.CompleteMission(ctx, created.UserID, created.Missions[n%len(created.Missions)].ID)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	dash, err := svc.Dashboard(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, workers, dash.Report.TotalCompleted, "no completion lost to interleaving")
}

func TestBuildReport_LevelMath(t *testing.T) {
	p := domain.NewProgress()
	p.Level = 3
	p.XP = 250

	report := buildReport(p)

	assert.Equal(t, 50, report.XPIntoLevel, "250 XP at level 3 is 50 past the 200 threshold")
	assert.Equal(t, 50, report.XPToNextLevel, "level 4 needs 300")
}
