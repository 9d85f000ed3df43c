package catalog

import "fmt"

// Catalog bundles the static definitions with id lookups. It is immutable
// for the engine's lifetime; build one at startup and share it.
type Catalog struct {
	Topics       []GrammarTopic
	StoreItems   []StoreItem
	Achievements []Achievement

	topicsByID map[string]*GrammarTopic
	itemsByID  map[string]*StoreItem
}

// Default builds the catalog from the built-in definitions.
func Default() *Catalog {
	return New(Topics, StoreItems, Achievements)
}

func New(topics []GrammarTopic, items []StoreItem, achievements []Achievement) *Catalog {
	c := &Catalog{
		Topics:       topics,
		StoreItems:   items,
		Achievements: achievements,
		topicsByID:   make(map[string]*GrammarTopic, len(topics)),
		itemsByID:    make(map[string]*StoreItem, len(items)),
	}
	for i := range c.Topics {
		c.topicsByID[c.Topics[i].ID] = &c.Topics[i]
	}
	for i := range c.StoreItems {
		c.itemsByID[c.StoreItems[i].ID] = &c.StoreItems[i]
	}
	return c
}

// Topic returns the topic for id, or nil when unknown.
func (c *Catalog) Topic(id string) *GrammarTopic {
	return c.topicsByID[id]
}

// Item returns the store item for id, or nil when unknown.
func (c *Catalog) Item(id string) *StoreItem {
	return c.itemsByID[id]
}

// TotalLevels counts levels across all topics.
func (c *Catalog) TotalLevels() int {
	total := 0
	for _, t := range c.Topics {
		total += len(t.Levels)
	}
	return total
}

// Validate checks the catalog invariants once at startup. Data-authoring
// mistakes found here abort boot; anything that slips through later is
// treated as an internal-error no-op by the engine.
func (c *Catalog) Validate() error {
	seenTopics := make(map[string]bool)
	for _, t := range c.Topics {
		if t.ID == "" {
			return fmt.Errorf("topic with empty id")
		}
		if seenTopics[t.ID] {
			return fmt.Errorf("duplicate topic id %q", t.ID)
		}
		seenTopics[t.ID] = true
		if t.Language != LangArabic && t.Language != LangFrench && t.Language != LangEnglish {
			return fmt.Errorf("topic %q: unknown language %q", t.ID, t.Language)
		}
		if len(t.Levels) == 0 {
			return fmt.Errorf("topic %q has no levels", t.ID)
		}
		for i, l := range t.Levels {
			// Level ids must form a contiguous 1..N range.
			if l.ID != i+1 {
				return fmt.Errorf("topic %q: level at position %d has id %d, want %d", t.ID, i, l.ID, i+1)
			}
			if l.XPReward <= 0 {
				return fmt.Errorf("topic %q level %d: xp reward must be positive", t.ID, l.ID)
			}
		}
	}

	seenItems := make(map[string]bool)
	for _, it := range c.StoreItems {
		if it.ID == "" || it.ID == DefaultThemeID {
			return fmt.Errorf("store item with reserved or empty id %q", it.ID)
		}
		if seenItems[it.ID] {
			return fmt.Errorf("duplicate store item id %q", it.ID)
		}
		seenItems[it.ID] = true
		if it.Cost < 0 {
			return fmt.Errorf("store item %q: negative cost", it.ID)
		}
		switch it.Type {
		case ItemBadge:
			if it.Effect == nil {
				return fmt.Errorf("badge %q has no effect", it.ID)
			}
			switch it.Effect.Kind {
			case EffectReplace:
				// A replace value of exactly 1.0 would be indistinguishable
				// from owning no tier badge, so the catalog forbids it.
				if it.Effect.Value <= 1 {
					return fmt.Errorf("badge %q: replace multiplier must exceed 1", it.ID)
				}
			case EffectAdditive:
				if it.Effect.Value <= 0 || it.Effect.Value >= 1 {
					return fmt.Errorf("badge %q: additive bonus must be in (0, 1)", it.ID)
				}
			default:
				return fmt.Errorf("badge %q: unknown effect kind %q", it.ID, it.Effect.Kind)
			}
			if it.Colors != nil {
				return fmt.Errorf("badge %q must not carry theme colors", it.ID)
			}
		case ItemTheme:
			if it.Effect != nil {
				return fmt.Errorf("theme %q must not carry a badge effect", it.ID)
			}
		default:
			return fmt.Errorf("store item %q: unknown type %q", it.ID, it.Type)
		}
	}

	seenAch := make(map[string]bool)
	for _, a := range c.Achievements {
		if a.ID == "" {
			return fmt.Errorf("achievement with empty id")
		}
		if seenAch[a.ID] {
			return fmt.Errorf("duplicate achievement id %q", a.ID)
		}
		seenAch[a.ID] = true
		if a.TranslationKey == "" {
			return fmt.Errorf("achievement %q: missing translation key", a.ID)
		}
		if a.XPReward < 0 {
			return fmt.Errorf("achievement %q: negative xp reward", a.ID)
		}
		switch a.Condition.Kind {
		case CondLevelCount, CondTopicsMastered, CondPurchaseCount, CondThemeCount,
			CondXPTotal, CondLoginStreak, CondLanguagesTouched:
			if a.Condition.Threshold <= 0 {
				return fmt.Errorf("achievement %q: threshold must be positive", a.ID)
			}
		case CondPerfectQuiz:
			if a.Condition.MinQuestions <= 0 {
				return fmt.Errorf("achievement %q: min questions must be positive", a.ID)
			}
		case CondLanguageMastered:
			if a.Condition.Language == "" {
				return fmt.Errorf("achievement %q: missing language", a.ID)
			}
		case CondTimeOfDay:
			if a.Condition.StartHour < 0 || a.Condition.StartHour > 23 ||
				a.Condition.EndHour < 0 || a.Condition.EndHour > 23 {
				return fmt.Errorf("achievement %q: hours must be in 0..23", a.ID)
			}
		default:
			return fmt.Errorf("achievement %q: unknown condition kind %q", a.ID, a.Condition.Kind)
		}
	}

	return nil
}
