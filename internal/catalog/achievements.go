package catalog

// ConditionKind tags an achievement's unlock rule. Conditions are plain
// data evaluated by the progression engine's dispatch, with no closures in
// catalog records, so the catalog stays serializable.
type ConditionKind string

const (
	// CondLevelCount fires when total completed levels reach Threshold.
	CondLevelCount ConditionKind = "level_count"
	// CondTopicsMastered fires when Threshold topics are fully completed.
	CondTopicsMastered ConditionKind = "topics_mastered"
	// CondPerfectQuiz fires on a quiz_complete event with a full score over
	// at least MinQuestions questions.
	CondPerfectQuiz ConditionKind = "perfect_quiz"
	// CondPurchaseCount fires when owned store items reach Threshold.
	CondPurchaseCount ConditionKind = "purchase_count"
	// CondThemeCount fires when owned themes reach Threshold.
	CondThemeCount ConditionKind = "theme_count"
	// CondXPTotal fires when the XP total reaches Threshold.
	CondXPTotal ConditionKind = "xp_total"
	// CondLoginStreak fires when the login streak reaches Threshold.
	CondLoginStreak ConditionKind = "login_streak"
	// CondLanguagesTouched fires when at least one level is completed in
	// Threshold distinct languages.
	CondLanguagesTouched ConditionKind = "languages_touched"
	// CondLanguageMastered fires when every topic in Language is mastered.
	CondLanguageMastered ConditionKind = "language_mastered"
	// CondTimeOfDay fires on any action inside [StartHour, EndHour) local
	// hours; the window may wrap midnight. The only wall-clock condition.
	CondTimeOfDay ConditionKind = "time_of_day"
)

// Condition is a tagged variant; only the fields for its Kind are set.
type Condition struct {
	Kind         ConditionKind `json:"kind"`
	Threshold    int           `json:"threshold,omitempty"`
	MinQuestions int           `json:"min_questions,omitempty"`
	Language     string        `json:"language,omitempty"`
	StartHour    int           `json:"start_hour,omitempty"`
	EndHour      int           `json:"end_hour,omitempty"`
}

// Achievement is a one-time, condition-gated XP bonus. TranslationKey is
// stored data; the client must not derive it from the id.
type Achievement struct {
	ID             string    `json:"id"`
	TranslationKey string    `json:"translation_key"`
	Name           string    `json:"name"`
	XPReward       int       `json:"xp_reward"`
	Condition      Condition `json:"condition"`
}

var Achievements = []Achievement{
	{
		ID: "ach_first_level", TranslationKey: "first_level", Name: "First Steps",
		XPReward: 25, Condition: Condition{Kind: CondLevelCount, Threshold: 1},
	},
	{
		ID: "ach_first_topic", TranslationKey: "first_topic", Name: "Topic Master",
		XPReward: 100, Condition: Condition{Kind: CondTopicsMastered, Threshold: 1},
	},
	{
		ID: "ach_perfect_quiz", TranslationKey: "perfect_quiz", Name: "Flawless",
		XPReward: 50, Condition: Condition{Kind: CondPerfectQuiz, MinQuestions: 5},
	},
	{
		ID: "ach_first_purchase", TranslationKey: "first_purchase", Name: "First Purchase",
		XPReward: 20, Condition: Condition{Kind: CondPurchaseCount, Threshold: 1},
	},
	{
		ID: "ach_xp_1000", TranslationKey: "xp_1000", Name: "Rising Star",
		XPReward: 100, Condition: Condition{Kind: CondXPTotal, Threshold: 1000},
	},
	{
		ID: "ach_polyglot", TranslationKey: "polyglot", Name: "Polyglot",
		XPReward: 75, Condition: Condition{Kind: CondLanguagesTouched, Threshold: 3},
	},
	{
		ID: "ach_streak_3", TranslationKey: "streak_3", Name: "On a Roll",
		XPReward: 30, Condition: Condition{Kind: CondLoginStreak, Threshold: 3},
	},
	{
		ID: "ach_night_owl", TranslationKey: "night_owl", Name: "Night Owl",
		XPReward: 15, Condition: Condition{Kind: CondTimeOfDay, StartHour: 22, EndHour: 4},
	},
	{
		ID: "ach_early_bird", TranslationKey: "early_bird", Name: "Early Bird",
		XPReward: 15, Condition: Condition{Kind: CondTimeOfDay, StartHour: 4, EndHour: 8},
	},
	{
		ID: "ach_shopaholic", TranslationKey: "shopaholic", Name: "Shopaholic",
		XPReward: 40, Condition: Condition{Kind: CondPurchaseCount, Threshold: 3},
	},
	{
		ID: "ach_theme_collector", TranslationKey: "theme_collector", Name: "Theme Collector",
		XPReward: 60, Condition: Condition{Kind: CondThemeCount, Threshold: 3},
	},
	{
		ID: "ach_master_ar", TranslationKey: "master_ar", Name: "Arabic Grammarian",
		XPReward: 200, Condition: Condition{Kind: CondLanguageMastered, Language: LangArabic},
	},
	{
		ID: "ach_master_fr", TranslationKey: "master_fr", Name: "Maître du Français",
		XPReward: 200, Condition: Condition{Kind: CondLanguageMastered, Language: LangFrench},
	},
	{
		ID: "ach_master_en", TranslationKey: "master_en", Name: "English Expert",
		XPReward: 200, Condition: Condition{Kind: CondLanguageMastered, Language: LangEnglish},
	},
}
