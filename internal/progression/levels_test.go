package progression

import (
	"testing"

	"github.com/grammar-quest/backend/internal/catalog"
	"github.com/grammar-quest/backend/internal/models"
)

func TestStateOf(t *testing.T) {
	p := models.DefaultProgress()
	p.CompletedLevels["maf3ul_mutlaq"] = 1

	tests := []struct {
		level int
		want  LevelState
	}{
		{1, LevelCompleted},
		{2, LevelAvailable},
		{3, LevelLocked},
	}
	for _, tt := range tests {
		if got := StateOf(p, "maf3ul_mutlaq", tt.level); got != tt.want {
			t.Errorf("StateOf(level %d) = %q, want %q", tt.level, got, tt.want)
		}
	}

	// Untouched topic starts at level 1
	if got := StateOf(p, "fr_articles", 1); got != LevelAvailable {
		t.Errorf("fresh topic level 1 = %q, want available", got)
	}
	if got := StateOf(p, "fr_articles", 2); got != LevelLocked {
		t.Errorf("fresh topic level 2 = %q, want locked", got)
	}
}

func TestCompleteLevel(t *testing.T) {
	cat := catalog.Default()
	p := models.DefaultProgress()

	out, xp, applied := CompleteLevel(cat, p, "maf3ul_mutlaq", 1)
	if !applied {
		t.Fatal("expected first level completion to apply")
	}
	if out.XP != 10 {
		t.Errorf("XP = %d, want 10", out.XP)
	}
	if xp.Raw != 10 || xp.Applied != 10 {
		t.Errorf("xp result = %+v, want raw 10 applied 10", xp)
	}
	if out.CompletedLevels["maf3ul_mutlaq"] != 1 {
		t.Errorf("high-water mark = %d, want 1", out.CompletedLevels["maf3ul_mutlaq"])
	}
	if p.XP != 0 || p.CompletedLevels["maf3ul_mutlaq"] != 0 {
		t.Error("input snapshot mutated")
	}
}

func TestCompleteLevelRespectsBadges(t *testing.T) {
	cat := catalog.Default()
	p := progressWith("badge_gold")

	out, xp, applied := CompleteLevel(cat, p, "alamat_i3rab", 1)
	if !applied {
		t.Fatal("expected completion to apply")
	}
	// 15 * 1.40 = 21
	if xp.Applied != 21 || out.XP != 21 {
		t.Errorf("applied = %d, XP = %d, want 21 both", xp.Applied, out.XP)
	}
}

func TestCompleteLevelNoOps(t *testing.T) {
	cat := catalog.Default()
	p := models.DefaultProgress()
	p.XP = 40
	p.CompletedLevels["maf3ul_mutlaq"] = 1

	tests := []struct {
		name  string
		topic string
		level int
	}{
		{"unknown topic", "nope", 1},
		{"level id below range", "maf3ul_mutlaq", 0},
		{"level id above range", "maf3ul_mutlaq", 4},
		{"locked level", "maf3ul_mutlaq", 3},
		{"already completed", "maf3ul_mutlaq", 1},
	}
	for _, tt := range tests {
		out, xp, applied := CompleteLevel(cat, p, tt.topic, tt.level)
		if applied {
			t.Errorf("%s: expected no-op", tt.name)
		}
		if out.XP != p.XP || xp.Applied != 0 {
			t.Errorf("%s: no-op changed state", tt.name)
		}
	}
}

func TestCompleteLevelSequence(t *testing.T) {
	cat := catalog.Default()
	p := models.DefaultProgress()

	for level := 1; level <= 3; level++ {
		var applied bool
		p, _, applied = CompleteLevel(cat, p, "maf3ul_mutlaq", level)
		if !applied {
			t.Fatalf("level %d did not apply", level)
		}
	}

	// 10 + 20 + 30
	if p.XP != 60 {
		t.Errorf("XP after full topic = %d, want 60", p.XP)
	}
	if !TopicMastered(cat, p, "maf3ul_mutlaq") {
		t.Error("topic should be mastered after all levels")
	}
	if got := MasteredTopics(cat, p); len(got) != 1 || got[0] != "maf3ul_mutlaq" {
		t.Errorf("MasteredTopics = %v", got)
	}
	if got := CompletedLevelCount(cat, p); got != 3 {
		t.Errorf("CompletedLevelCount = %d, want 3", got)
	}
}

func TestTopicMasteredUnknownTopic(t *testing.T) {
	cat := catalog.Default()
	if TopicMastered(cat, models.DefaultProgress(), "nope") {
		t.Error("unknown topic must never be mastered")
	}
}

func TestCompletedLevelCountCapsAtCatalogLength(t *testing.T) {
	cat := catalog.Default()
	p := models.DefaultProgress()
	// A stored mark beyond the topic's current length (the catalog shrank)
	p.CompletedLevels["maf3ul_mutlaq"] = 7

	if got := CompletedLevelCount(cat, p); got != 3 {
		t.Errorf("CompletedLevelCount = %d, want 3", got)
	}
}
