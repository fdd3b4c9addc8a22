// Package ledger applies mission completions to a user's progress record:
// XP and coin awards, level-ups, streaks, and achievement unlocks. All side
// effects are confined to the Progress value passed in.
package ledger

import (
	"time"

	"github.com/dkarlsen/fitquest/internal/domain"
)

// Fallback awards for completions whose mission carries no reward values
// (plain CLI plans generate missions without rewards).
const (
	fallbackXP    = 20
	fallbackCoins = 10
)

// xpPerLevel scales the next-level threshold: level n requires n*100 XP.
const xpPerLevel = 100

// levelUpCoinBonus is the coin award granted per level gained, times the
// new level.
const levelUpCoinBonus = 10

// CompletionResult summarizes what one completion changed.
type CompletionResult struct {
	XPAwarded    int
	CoinsAwarded int
	LevelsGained int
	NewLevel     int
	NewUnlocks   []domain.Achievement
}

// Ledger evaluates completions against a static achievement catalog. The
// clock is injectable for tests.
type Ledger struct {
	achievements []domain.Achievement
	now          func() time.Time
}

func New(achievements []domain.Achievement) *Ledger {
	return &Ledger{achievements: achievements, now: time.Now}
}

// WithClock replaces the ledger's clock. Intended for tests.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

// Complete records a finished mission on the progress record: it appends the
// mission id to the completion log, awards the mission's own XP and coins
// (or the flat fallback when the mission carries none), bumps the category
// streak and count, applies level-ups, and evaluates achievements. Level-up
// is a saturating loop and is re-run after achievement XP lands, so every
// earned level is granted within the same call.
func (l *Ledger) Complete(p *domain.Progress, m domain.Mission) (CompletionResult, error) {
	if p.Streaks == nil {
		p.Streaks = make(map[domain.Category]int)
	}
	if p.CategoryCounts == nil {
		p.CategoryCounts = make(map[domain.Category]int)
	}

	xp, coins := m.XPReward, m.CoinReward
	if xp == 0 {
		xp = fallbackXP
	}
	if coins == 0 {
		coins = fallbackCoins
	}

	p.CompletedMissionIDs = append(p.CompletedMissionIDs, m.ID)
	p.XP += xp
	p.Coins += coins
	if m.Category != "" {
		p.Streaks[m.Category]++
		p.CategoryCounts[m.Category]++
	}
	p.LastActive = l.now()

	result := CompletionResult{XPAwarded: xp, CoinsAwarded: coins}
	result.LevelsGained += l.levelUp(p, &result)

	unlocks, err := l.evaluateAchievements(p, &result)
	if err != nil {
		return CompletionResult{}, err
	}
	result.NewUnlocks = unlocks

	// Achievement XP can push the user over the next threshold.
	if len(unlocks) > 0 {
		result.LevelsGained += l.levelUp(p, &result)
	}

	result.NewLevel = p.Level
	return result, nil
}

// levelUp grants every level the accumulated XP has earned. XP is cumulative
// and never consumed; the threshold for the next level is level*100.
func (l *Ledger) levelUp(p *domain.Progress, result *CompletionResult) int {
	gained := 0
	for p.XP >= p.Level*xpPerLevel {
		p.Level++
		bonus := p.Level * levelUpCoinBonus
		p.Coins += bonus
		result.CoinsAwarded += bonus
		gained++
	}
	return gained
}

// evaluateAchievements unlocks every not-yet-unlocked achievement whose
// requirements all pass, stamping the unlock time and awarding its rewards
// immediately. Already-unlocked achievements are never re-granted.
func (l *Ledger) evaluateAchievements(p *domain.Progress, result *CompletionResult) ([]domain.Achievement, error) {
	var unlocked []domain.Achievement
	for _, a := range l.achievements {
		if p.HasUnlocked(a.ID) {
			continue
		}
		ok, err := meetsAll(*p, a)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		p.Unlocked = append(p.Unlocked, domain.AchievementUnlock{
			AchievementID: a.ID,
			UnlockedAt:    l.now(),
		})
		p.XP += a.XPReward
		p.Coins += a.CoinReward
		result.XPAwarded += a.XPReward
		result.CoinsAwarded += a.CoinReward
		unlocked = append(unlocked, a)
	}
	return unlocked, nil
}
