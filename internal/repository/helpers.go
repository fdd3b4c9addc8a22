package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dkarlsen/fitquest/internal/domain"
)

// encodedUser holds the JSON-serialized composite columns of a user row.
type encodedUser struct {
	baseline          string
	goals             string
	streaks           string
	categoryCounts    string
	completedMissions string
	unlocked          string
	responses         string
	missions          string
}

func encodeUser(u *domain.User) (encodedUser, error) {
	var row encodedUser
	fields := []struct {
		name string
		dst  *string
		src  any
	}{
		{"baseline", &row.baseline, u.Baseline},
		{"goals", &row.goals, u.Goals},
		{"streaks", &row.streaks, orEmptyMap(u.Progress.Streaks)},
		{"category_counts", &row.categoryCounts, orEmptyMap(u.Progress.CategoryCounts)},
		{"completed_missions", &row.completedMissions, orEmptySlice(u.Progress.CompletedMissionIDs)},
		{"unlocked", &row.unlocked, orEmptyUnlocks(u.Progress.Unlocked)},
		{"responses", &row.responses, orEmptyResponses(u.Responses)},
		{"missions", &row.missions, orEmptyMissions(u.TodaysMissions)},
	}
	for _, f := range fields {
		data, err := json.Marshal(f.src)
		if err != nil {
			return encodedUser{}, fmt.Errorf("encoding user %s: %w", f.name, err)
		}
		*f.dst = string(data)
	}
	return row, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u          domain.User
		enc        encodedUser
		lastActive sql.NullString
		createdAt  string
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Progress.Level, &u.Progress.XP, &u.Progress.Coins,
		&lastActive,
		&enc.baseline, &enc.goals, &enc.streaks, &enc.categoryCounts,
		&enc.completedMissions, &enc.unlocked, &enc.responses, &enc.missions,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	fields := []struct {
		name string
		raw  string
		dst  any
	}{
		{"baseline", enc.baseline, &u.Baseline},
		{"goals", enc.goals, &u.Goals},
		{"streaks", enc.streaks, &u.Progress.Streaks},
		{"category_counts", enc.categoryCounts, &u.Progress.CategoryCounts},
		{"completed_missions", enc.completedMissions, &u.Progress.CompletedMissionIDs},
		{"unlocked", enc.unlocked, &u.Progress.Unlocked},
		{"responses", enc.responses, &u.Responses},
		{"missions", enc.missions, &u.TodaysMissions},
	}
	for _, f := range fields {
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return nil, fmt.Errorf("decoding user %s: %w", f.name, err)
		}
	}

	if t := parseNullableTime(lastActive); t != nil {
		u.Progress.LastActive = *t
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		u.CreatedAt = t
	}
	return &u, nil
}

// parseNullableTime parses a sql.NullString into a *time.Time.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a time to a value suitable for SQLite
// storage, with the zero time mapping to SQL NULL.
func nullableTimeToString(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func orEmptyMap(m map[domain.Category]int) map[domain.Category]int {
	if m == nil {
		return map[domain.Category]int{}
	}
	return m
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyUnlocks(s []domain.AchievementUnlock) []domain.AchievementUnlock {
	if s == nil {
		return []domain.AchievementUnlock{}
	}
	return s
}

func orEmptyResponses(s []domain.SurveyResponse) []domain.SurveyResponse {
	if s == nil {
		return []domain.SurveyResponse{}
	}
	return s
}

func orEmptyMissions(s []domain.Mission) []domain.Mission {
	if s == nil {
		return []domain.Mission{}
	}
	return s
}
