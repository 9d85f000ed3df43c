package models

// ── User Progress ─────────────────────────────────────────

// UserProgress is the single mutable aggregate per user. It is persisted as
// one JSON blob; the field names are part of the storage format.
type UserProgress struct {
	XP              int            `json:"xp"`
	PurchasedItems  []string       `json:"purchasedItems"`
	CompletedLevels map[string]int `json:"completedLevels"`
	ActiveThemeID   string         `json:"activeThemeId"`
	Achievements    []string       `json:"achievements"`
	LastLoginDate   string         `json:"lastLoginDate"` // ISO date: YYYY-MM-DD
	LoginStreak     int            `json:"loginStreak"`
}

// DefaultProgress returns the zero state used for new users and for
// missing or corrupt stored records.
func DefaultProgress() UserProgress {
	return UserProgress{
		PurchasedItems:  []string{},
		CompletedLevels: map[string]int{},
		ActiveThemeID:   "default",
		Achievements:    []string{},
	}
}

// Clone returns a deep copy so engine operations can transform a snapshot
// without aliasing the caller's maps and slices.
func (p UserProgress) Clone() UserProgress {
	c := p
	c.PurchasedItems = make([]string, len(p.PurchasedItems))
	copy(c.PurchasedItems, p.PurchasedItems)
	c.Achievements = make([]string, len(p.Achievements))
	copy(c.Achievements, p.Achievements)
	c.CompletedLevels = make(map[string]int, len(p.CompletedLevels))
	for k, v := range p.CompletedLevels {
		c.CompletedLevels[k] = v
	}
	return c
}

// Normalize replaces nil collections with empty ones and fills in the
// default theme. Deserialized blobs from older revisions may miss fields.
func (p UserProgress) Normalize() UserProgress {
	if p.PurchasedItems == nil {
		p.PurchasedItems = []string{}
	}
	if p.CompletedLevels == nil {
		p.CompletedLevels = map[string]int{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if p.ActiveThemeID == "" {
		p.ActiveThemeID = "default"
	}
	if p.XP < 0 {
		p.XP = 0
	}
	return p
}

// HasPurchased reports whether the item id is in the purchased set.
func (p UserProgress) HasPurchased(itemID string) bool {
	for _, id := range p.PurchasedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// HasAchievement reports whether the achievement id is already unlocked.
func (p UserProgress) HasAchievement(achievementID string) bool {
	for _, id := range p.Achievements {
		if id == achievementID {
			return true
		}
	}
	return false
}

// ── Request Types ─────────────────────────────────────────

type CompleteLevelRequest struct {
	TopicID string `json:"topic_id"`
	LevelID int    `json:"level_id"`
}

type QuizCompleteRequest struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

type ExerciseAnswerRequest struct {
	Correct bool `json:"correct"`
}

type PurchaseRequest struct {
	ItemID string `json:"item_id"`
}

type ActivateThemeRequest struct {
	ThemeID string `json:"theme_id"`
}

type CheatCodeRequest struct {
	Code string `json:"code"`
}

// ── Response Types ────────────────────────────────────────

// XPBreakdown tells the client what was credited and why, so it can render
// feedback without recomputing multipliers.
type XPBreakdown struct {
	RawXP      int     `json:"raw_xp"`
	AppliedXP  int     `json:"applied_xp"`
	Multiplier float64 `json:"multiplier"`
}

type ProgressResponse struct {
	Progress        UserProgress `json:"progress"`
	MasteredTopics  []string     `json:"mastered_topics"`
	CompletedLevels int          `json:"completed_levels_total"`
	TotalLevels     int          `json:"total_levels"`
}

type ActionResponse struct {
	Progress             UserProgress `json:"progress"`
	Applied              bool         `json:"applied"`
	XP                   *XPBreakdown `json:"xp,omitempty"`
	AchievementsUnlocked []string     `json:"achievements_unlocked"`
	AchievementXP        *XPBreakdown `json:"achievement_xp,omitempty"`
}

type CompleteLevelResponse struct {
	ActionResponse
	TopicMastered bool `json:"topic_mastered"`
}

type SessionStartResponse struct {
	ActionResponse
	LoginStreak int  `json:"login_streak"`
	FirstToday  bool `json:"first_today"`
}
