package catalog

// LessonLevel is one gated unit of content within a topic. Ids within a
// topic are contiguous and ascending, starting at 1.
type LessonLevel struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	XPReward int    `json:"xp_reward"`
}

// GrammarTopic is a read-only course of ordered levels in one language.
type GrammarTopic struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Language string        `json:"language"` // "ar", "fr", or "en"
	Levels   []LessonLevel `json:"levels"`
}

const (
	LangArabic  = "ar"
	LangFrench  = "fr"
	LangEnglish = "en"
)

// Topics is the static course catalog. Level rewards climb within a topic
// so later levels are worth grinding for.
var Topics = []GrammarTopic{
	{
		ID: "maf3ul_mutlaq", Title: "المفعول المطلق", Language: LangArabic,
		Levels: []LessonLevel{
			{ID: 1, Title: "التعريف والأنواع", XPReward: 10},
			{ID: 2, Title: "إعراب المفعول المطلق", XPReward: 20},
			{ID: 3, Title: "النائب عن المفعول المطلق", XPReward: 30},
		},
	},
	{
		ID: "maf3ul_liajlih", Title: "المفعول لأجله", Language: LangArabic,
		Levels: []LessonLevel{
			{ID: 1, Title: "التعريف والشروط", XPReward: 10},
			{ID: 2, Title: "أحوال المفعول لأجله", XPReward: 20},
			{ID: 3, Title: "تدريبات متقدمة", XPReward: 30},
		},
	},
	{
		ID: "haal", Title: "الحال", Language: LangArabic,
		Levels: []LessonLevel{
			{ID: 1, Title: "تعريف الحال وصاحبها", XPReward: 10},
			{ID: 2, Title: "أنواع الحال", XPReward: 20},
			{ID: 3, Title: "الحال الجملة وشبه الجملة", XPReward: 30},
		},
	},
	{
		ID: "lazim_muta3addi", Title: "الفعل اللازم والمتعدي", Language: LangArabic,
		Levels: []LessonLevel{
			{ID: 1, Title: "الفعل اللازم", XPReward: 10},
			{ID: 2, Title: "الفعل المتعدي", XPReward: 20},
			{ID: 3, Title: "التعدية بالهمزة والتضعيف", XPReward: 30},
		},
	},
	{
		ID: "alamat_i3rab", Title: "علامات الإعراب", Language: LangArabic,
		Levels: []LessonLevel{
			{ID: 1, Title: "العلامات الأصلية", XPReward: 15},
			{ID: 2, Title: "العلامات الفرعية", XPReward: 25},
			{ID: 3, Title: "الإعراب التقديري", XPReward: 40},
		},
	},
	{
		ID: "fr_articles", Title: "Les Articles", Language: LangFrench,
		Levels: []LessonLevel{
			{ID: 1, Title: "Articles définis", XPReward: 10},
			{ID: 2, Title: "Articles indéfinis", XPReward: 20},
			{ID: 3, Title: "Articles partitifs", XPReward: 30},
		},
	},
	{
		ID: "fr_etre", Title: "Le Verbe Être", Language: LangFrench,
		Levels: []LessonLevel{
			{ID: 1, Title: "Présent", XPReward: 10},
			{ID: 2, Title: "Passé composé", XPReward: 20},
			{ID: 3, Title: "Futur simple", XPReward: 30},
		},
	},
	{
		ID: "fr_avoir", Title: "Le Verbe Avoir", Language: LangFrench,
		Levels: []LessonLevel{
			{ID: 1, Title: "Présent", XPReward: 10},
			{ID: 2, Title: "Expressions avec avoir", XPReward: 20},
			{ID: 3, Title: "Avoir comme auxiliaire", XPReward: 30},
		},
	},
	{
		ID: "en_dynamic_verbs", Title: "Dynamic Verbs", Language: LangEnglish,
		Levels: []LessonLevel{
			{ID: 1, Title: "Action in progress", XPReward: 10},
			{ID: 2, Title: "Dynamic verbs in continuous tenses", XPReward: 20},
			{ID: 3, Title: "Mixed usage drills", XPReward: 30},
		},
	},
	{
		ID: "en_stative_verbs", Title: "Stative Verbs", Language: LangEnglish,
		Levels: []LessonLevel{
			{ID: 1, Title: "States, senses and possession", XPReward: 10},
			{ID: 2, Title: "Verbs with both readings", XPReward: 20},
			{ID: 3, Title: "Stative verb drills", XPReward: 30},
		},
	},
}
