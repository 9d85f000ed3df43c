package progression

import (
	"fmt"
	"log"
	"time"

	"github.com/grammar-quest/backend/internal/catalog"
	"github.com/grammar-quest/backend/internal/models"
)

// Store is the persistence boundary: load a blob, save a blob, plus the
// XP audit log. The engine never touches storage directly.
type Store interface {
	LoadProgress(userID int64) (models.UserProgress, error)
	SaveProgress(userID int64, p models.UserProgress) error
	DeleteProgress(userID int64) error
	LogXPEvent(userID int64, eventType string, xpAmount int, metadata map[string]interface{}) error
}

// Service wires the pure engine operations to storage. Every user action
// follows the same shape: load a snapshot, transform it, run one
// achievement pass, persist once. Save failures are logged and the updated
// state is still returned; the durability guarantee degrades, not the
// session's state.
type Service struct {
	store Store
	cat   *catalog.Catalog
	now   func() time.Time
}

func NewService(store Store, cat *catalog.Catalog) *Service {
	return &Service{store: store, cat: cat, now: time.Now}
}

// WithClock overrides the time source. Tests use this to pin the calendar
// day and the hour seen by time-of-day achievements.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ── Reads ───────────────────────────────────────────────

func (s *Service) GetProgress(userID int64) (*models.ProgressResponse, error) {
	p, err := s.store.LoadProgress(userID)
	if err != nil {
		return nil, err
	}
	return &models.ProgressResponse{
		Progress:        p,
		MasteredTopics:  MasteredTopics(s.cat, p),
		CompletedLevels: CompletedLevelCount(s.cat, p),
		TotalLevels:     s.cat.TotalLevels(),
	}, nil
}

// ── Session bootstrap ───────────────────────────────────

// StartSession applies the daily login check. It runs once per session,
// before any other progress-mutating action, and its result feeds the
// first achievement pass so streak achievements fire on login.
func (s *Service) StartSession(userID int64) (*models.SessionStartResponse, error) {
	p, err := s.store.LoadProgress(userID)
	if err != nil {
		return nil, err
	}

	today := s.now().Format(ISODate)
	after, bonus, applied := ApplyDailyLogin(s.cat, p, today)
	if !applied {
		return &models.SessionStartResponse{
			ActionResponse: models.ActionResponse{Progress: p, AchievementsUnlocked: []string{}},
			LoginStreak:    p.LoginStreak,
		}, nil
	}

	s.logEvent(userID, "daily_bonus", bonus.Applied, map[string]interface{}{
		"streak":     after.LoginStreak,
		"raw_xp":     bonus.Raw,
		"multiplier": bonus.Multiplier,
	})

	final, ach := s.evaluate(userID, after, &Event{Action: ActionDailyLogin})
	s.persist(userID, final)

	return &models.SessionStartResponse{
		ActionResponse: models.ActionResponse{
			Progress:             final,
			Applied:              true,
			XP:                   breakdown(bonus),
			AchievementsUnlocked: ach.Unlocked,
			AchievementXP:        achievementBreakdown(ach),
		},
		LoginStreak: final.LoginStreak,
		FirstToday:  true,
	}, nil
}

// ── Level completion ────────────────────────────────────

func (s *Service) CompleteLevel(userID int64, topicID string, levelID int) (*models.CompleteLevelResponse, error) {
	p, err := s.store.LoadProgress(userID)
	if err != nil {
		return nil, err
	}

	after, xp, applied := CompleteLevel(s.cat, p, topicID, levelID)
	if !applied {
		return &models.CompleteLevelResponse{
			ActionResponse: models.ActionResponse{Progress: p, AchievementsUnlocked: []string{}},
			TopicMastered:  TopicMastered(s.cat, p, topicID),
		}, nil
	}

	s.logEvent(userID, "level_complete", xp.Applied, map[string]interface{}{
		"topic_id":   topicID,
		"level_id":   levelID,
		"raw_xp":     xp.Raw,
		"multiplier": xp.Multiplier,
	})

	final, ach := s.evaluate(userID, after, &Event{Action: ActionLevelComplete})
	s.persist(userID, final)

	return &models.CompleteLevelResponse{
		ActionResponse: models.ActionResponse{
			Progress:             final,
			Applied:              true,
			XP:                   breakdown(xp),
			AchievementsUnlocked: ach.Unlocked,
			AchievementXP:        achievementBreakdown(ach),
		},
		TopicMastered: TopicMastered(s.cat, final, topicID),
	}, nil
}

// ── Quiz and exercise ───────────────────────────────────

func (s *Service) CompleteQuiz(userID int64, score, total int) (*models.ActionResponse, error) {
	if total <= 0 || score < 0 || score > total {
		return nil, fmt.Errorf("invalid quiz result %d/%d", score, total)
	}

	p, err := s.store.LoadProgress(userID)
	if err != nil {
		return nil, err
	}

	after, xp := AwardXP(s.cat, p, QuizXP(score, total))
	if xp.Applied != 0 {
		s.logEvent(userID, "quiz_complete", xp.Applied, map[string]interface{}{
			"score":      score,
			"total":      total,
			"raw_xp":     xp.Raw,
			"multiplier": xp.Multiplier,
		})
	}

	final, ach := s.evaluate(userID, after, &Event{Action: ActionQuizComplete, Score: score, Total: total})
	if xp.Applied != 0 || len(ach.Unlocked) > 0 {
		s.persist(userID, final)
	}

	return &models.ActionResponse{
		Progress:             final,
		Applied:              xp.Applied != 0,
		XP:                   breakdown(xp),
		AchievementsUnlocked: ach.Unlocked,
		AchievementXP:        achievementBreakdown(ach),
	}, nil
}

// SubmitExercise awards the flat sentence-completion bonus for a correct
// answer. Incorrect answers change nothing.
func (s *Service) SubmitExercise(userID int64, correct bool) (*models.ActionResponse, error) {
	p, err := s.store.LoadProgress(userID)
	if err != nil {
		return nil, err
	}
	if !correct {
		return &models.ActionResponse{Progress: p, AchievementsUnlocked: []string{}}, nil
	}

	after, xp := AwardXP(s.cat, p, ExerciseXP)
	s.logEvent(userID, "exercise_correct", xp.Applied, map[string]interface{}{
		"raw_xp":     xp.Raw,
		"multiplier": xp.Multiplier,
	})

	final, ach := s.evaluate(userID, after, &Event{Action: ActionExercise})
	s.persist(userID, final)

	return &models.ActionResponse{
		Progress:             final,
		Applied:              true,
		XP:                   breakdown(xp),
		AchievementsUnlocked: ach.Unlocked,
		AchievementXP:        achievementBreakdown(ach),
	}, nil
}

// ── Store purchases and themes ──────────────────────────

func (s *Service) PurchaseItem(userID int64, itemID string) (*models.ActionResponse, error) {
	p, err := s.store.LoadProgress(userID)
	if err != nil {
		return nil, err
	}

	after, applied := PurchaseItem(s.cat, p, itemID)
	if !applied {
		return &models.ActionResponse{Progress: p, AchievementsUnlocked: []string{}}, nil
	}

	item := s.cat.Item(itemID)
	s.logEvent(userID, "purchase", -item.Cost, map[string]interface{}{
		"item_id": itemID,
	})

	final, ach := s.evaluate(userID, after, &Event{Action: ActionPurchase})
	s.persist(userID, final)

	return &models.ActionResponse{
		Progress:             final,
		Applied:              true,
		AchievementsUnlocked: ach.Unlocked,
		AchievementXP:        achievementBreakdown(ach),
	}, nil
}

func (s *Service) ActivateTheme(userID int64, themeID string) (*models.ActionResponse, error) {
	p, err := s.store.LoadProgress(userID)
	if err != nil {
		return nil, err
	}

	after, applied := ActivateTheme(s.cat, p, themeID)
	if !applied {
		return &models.ActionResponse{Progress: p, AchievementsUnlocked: []string{}}, nil
	}

	final, ach := s.evaluate(userID, after, nil)
	s.persist(userID, final)

	return &models.ActionResponse{
		Progress:             final,
		Applied:              true,
		AchievementsUnlocked: ach.Unlocked,
		AchievementXP:        achievementBreakdown(ach),
	}, nil
}

// ── Cheat code and reset ────────────────────────────────

// GrantCheatXP applies the developer code grant. The code is checked here
// so the handler stays a thin decoder.
func (s *Service) GrantCheatXP(userID int64, code string) (*models.ActionResponse, error) {
	if code != "PG1" {
		return nil, fmt.Errorf("invalid code")
	}

	p, err := s.store.LoadProgress(userID)
	if err != nil {
		return nil, err
	}

	after, xp := AwardXP(s.cat, p, CheatXP)
	s.logEvent(userID, "cheat_grant", xp.Applied, map[string]interface{}{
		"raw_xp":     xp.Raw,
		"multiplier": xp.Multiplier,
	})

	final, ach := s.evaluate(userID, after, nil)
	s.persist(userID, final)

	return &models.ActionResponse{
		Progress:             final,
		Applied:              true,
		XP:                   breakdown(xp),
		AchievementsUnlocked: ach.Unlocked,
		AchievementXP:        achievementBreakdown(ach),
	}, nil
}

// ResetProgress wipes the blob back to the zero state. The one operation
// allowed to shrink the purchased and achievement sets.
func (s *Service) ResetProgress(userID int64) (*models.ProgressResponse, error) {
	if err := s.store.DeleteProgress(userID); err != nil {
		return nil, fmt.Errorf("reset progress: %w", err)
	}
	p := models.DefaultProgress()
	return &models.ProgressResponse{
		Progress:       p,
		MasteredTopics: []string{},
		TotalLevels:    s.cat.TotalLevels(),
	}, nil
}

// ── Internals ───────────────────────────────────────────

// evaluate runs the post-mutation achievement pass with the clock's hour.
func (s *Service) evaluate(userID int64, p models.UserProgress, ev *Event) (models.UserProgress, AchievementResult) {
	final, ach := EvaluateAchievements(s.cat, p, ev, s.now().Hour())
	if len(ach.Unlocked) > 0 {
		s.logEvent(userID, "achievement_unlock", ach.XP.Applied, map[string]interface{}{
			"achievements": ach.Unlocked,
			"raw_xp":       ach.XP.Raw,
		})
	}
	return final, ach
}

// persist writes the blob once per action. Failures degrade durability
// only; the in-memory result is still returned to the caller.
func (s *Service) persist(userID int64, p models.UserProgress) {
	if err := s.store.SaveProgress(userID, p); err != nil {
		log.Printf("[progression] failed to save progress for user %d: %v", userID, err)
	}
}

func (s *Service) logEvent(userID int64, eventType string, amount int, metadata map[string]interface{}) {
	if err := s.store.LogXPEvent(userID, eventType, amount, metadata); err != nil {
		log.Printf("[progression] failed to log %s event for user %d: %v", eventType, userID, err)
	}
}

func breakdown(xp XPResult) *models.XPBreakdown {
	return &models.XPBreakdown{RawXP: xp.Raw, AppliedXP: xp.Applied, Multiplier: xp.Multiplier}
}

func achievementBreakdown(ach AchievementResult) *models.XPBreakdown {
	if len(ach.Unlocked) == 0 {
		return nil
	}
	return &models.XPBreakdown{RawXP: ach.XP.Raw, AppliedXP: ach.XP.Applied, Multiplier: ach.XP.Multiplier}
}
