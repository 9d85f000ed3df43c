package progression

import (
	"github.com/grammar-quest/backend/internal/catalog"
	"github.com/grammar-quest/backend/internal/models"
)

// LevelState is the derived state of one (topic, level) pair.
type LevelState string

const (
	LevelLocked    LevelState = "locked"
	LevelAvailable LevelState = "available"
	LevelCompleted LevelState = "completed"
)

// StateOf classifies a level against the per-topic high-water mark. A level
// is available only when every earlier level is already completed.
func StateOf(p models.UserProgress, topicID string, levelID int) LevelState {
	highWater := p.CompletedLevels[topicID]
	switch {
	case levelID <= highWater:
		return LevelCompleted
	case levelID == highWater+1:
		return LevelAvailable
	default:
		return LevelLocked
	}
}

// CompleteLevel records the completion and awards the level's XP through
// the multiplier, as one transition. Unknown topics or levels, locked
// levels, and re-completions are silent no-ops returning the input
// unchanged; they are reachable only through stale client state.
func CompleteLevel(c *catalog.Catalog, p models.UserProgress, topicID string, levelID int) (models.UserProgress, XPResult, bool) {
	topic := c.Topic(topicID)
	if topic == nil || levelID < 1 || levelID > len(topic.Levels) {
		return p, XPResult{}, false
	}
	if StateOf(p, topicID, levelID) != LevelAvailable {
		return p, XPResult{}, false
	}

	level := topic.Levels[levelID-1]
	out, res := AwardXP(c, p, level.XPReward)
	out.CompletedLevels[topicID] = levelID
	return out, res, true
}

// TopicMastered reports whether every level of the topic is completed.
// Mastery is recomputed from current catalog data, never cached, because
// topic definitions can change between revisions.
func TopicMastered(c *catalog.Catalog, p models.UserProgress, topicID string) bool {
	topic := c.Topic(topicID)
	if topic == nil {
		return false
	}
	return p.CompletedLevels[topicID] >= len(topic.Levels)
}

// MasteredTopics lists mastered topic ids in catalog order.
func MasteredTopics(c *catalog.Catalog, p models.UserProgress) []string {
	mastered := []string{}
	for _, t := range c.Topics {
		if p.CompletedLevels[t.ID] >= len(t.Levels) {
			mastered = append(mastered, t.ID)
		}
	}
	return mastered
}

// CompletedLevelCount totals completed levels across topics, capped at each
// topic's actual length so shrunken catalogs never overcount.
func CompletedLevelCount(c *catalog.Catalog, p models.UserProgress) int {
	total := 0
	for _, t := range c.Topics {
		n := p.CompletedLevels[t.ID]
		if n > len(t.Levels) {
			n = len(t.Levels)
		}
		total += n
	}
	return total
}
