package progression

import (
	"log"

	"github.com/grammar-quest/backend/internal/catalog"
	"github.com/grammar-quest/backend/internal/models"
)

// Event is the optional action payload passed to an achievement pass.
type Event struct {
	Action string // "level_complete", "quiz_complete", "purchase", "daily_login", "exercise"
	Score  int
	Total  int
}

const (
	ActionLevelComplete = "level_complete"
	ActionQuizComplete  = "quiz_complete"
	ActionPurchase      = "purchase"
	ActionDailyLogin    = "daily_login"
	ActionExercise      = "exercise"
)

// AchievementResult reports what an evaluation pass unlocked.
type AchievementResult struct {
	Unlocked []string
	XP       XPResult
}

// EvaluateAchievements runs one pass over the achievement catalog. Every
// condition is judged against the pre-pass snapshot: an unlock earlier in
// the pass never changes what a later condition sees. Qualifying rewards
// are accumulated and applied once through the XP engine, so badge
// multipliers cover achievement XP too. When nothing fires the input
// progress is returned unchanged, letting callers skip persistence.
//
// hour is the local hour from the injected clock; only time-of-day
// conditions read it, and they are the engine's only wall-clock dependence.
func EvaluateAchievements(c *catalog.Catalog, p models.UserProgress, ev *Event, hour int) (models.UserProgress, AchievementResult) {
	snapshot := p
	var unlocked []string
	totalReward := 0

	for _, a := range c.Achievements {
		if snapshot.HasAchievement(a.ID) {
			continue
		}
		if conditionHolds(c, snapshot, a, ev, hour) {
			unlocked = append(unlocked, a.ID)
			totalReward += a.XPReward
		}
	}

	if len(unlocked) == 0 {
		return p, AchievementResult{Unlocked: []string{}}
	}

	out, xp := AwardXP(c, p, totalReward)
	out.Achievements = append(out.Achievements, unlocked...)
	return out, AchievementResult{Unlocked: unlocked, XP: xp}
}

// conditionHolds dispatches on the condition's kind. An unknown kind is a
// data error: it is logged and treated as false, so one broken definition
// never blocks the rest of the pass.
func conditionHolds(c *catalog.Catalog, p models.UserProgress, a catalog.Achievement, ev *Event, hour int) bool {
	cond := a.Condition
	switch cond.Kind {
	case catalog.CondLevelCount:
		return CompletedLevelCount(c, p) >= cond.Threshold
	case catalog.CondTopicsMastered:
		return len(MasteredTopics(c, p)) >= cond.Threshold
	case catalog.CondPerfectQuiz:
		return ev != nil && ev.Action == ActionQuizComplete &&
			ev.Total >= cond.MinQuestions && ev.Score == ev.Total
	case catalog.CondPurchaseCount:
		return len(p.PurchasedItems) >= cond.Threshold
	case catalog.CondThemeCount:
		return ownedThemes(c, p) >= cond.Threshold
	case catalog.CondXPTotal:
		return p.XP >= cond.Threshold
	case catalog.CondLoginStreak:
		return p.LoginStreak >= cond.Threshold
	case catalog.CondLanguagesTouched:
		return languagesTouched(c, p) >= cond.Threshold
	case catalog.CondLanguageMastered:
		return languageMastered(c, p, cond.Language)
	case catalog.CondTimeOfDay:
		return hourInWindow(hour, cond.StartHour, cond.EndHour)
	default:
		log.Printf("[progression] achievement %s: unknown condition kind %q", a.ID, cond.Kind)
		return false
	}
}

func ownedThemes(c *catalog.Catalog, p models.UserProgress) int {
	n := 0
	for _, id := range p.PurchasedItems {
		if item := c.Item(id); item != nil && item.Type == catalog.ItemTheme {
			n++
		}
	}
	return n
}

// languagesTouched counts distinct languages with at least one completed level.
func languagesTouched(c *catalog.Catalog, p models.UserProgress) int {
	langs := map[string]bool{}
	for _, t := range c.Topics {
		if p.CompletedLevels[t.ID] >= 1 {
			langs[t.Language] = true
		}
	}
	return len(langs)
}

// languageMastered reports whether every topic in the language is mastered.
// A language with no topics in the catalog is never mastered.
func languageMastered(c *catalog.Catalog, p models.UserProgress, lang string) bool {
	found := false
	for _, t := range c.Topics {
		if t.Language != lang {
			continue
		}
		found = true
		if p.CompletedLevels[t.ID] < len(t.Levels) {
			return false
		}
	}
	return found
}

// hourInWindow checks [start, end), allowing windows that wrap midnight
// (e.g. 22..4 for a night-owl window).
func hourInWindow(hour, start, end int) bool {
	if start == end {
		return false
	}
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}
