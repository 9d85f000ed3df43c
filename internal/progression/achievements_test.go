package progression

import (
	"testing"

	"github.com/grammar-quest/backend/internal/catalog"
	"github.com/grammar-quest/backend/internal/models"
)

// midday avoids the night-owl and early-bird windows in every pass below.
const midday = 12

func TestEvaluateFirstLevelAchievement(t *testing.T) {
	cat := catalog.Default()
	p := models.DefaultProgress()
	p, _, _ = CompleteLevel(cat, p, "maf3ul_mutlaq", 1)

	out, res := EvaluateAchievements(cat, p, &Event{Action: ActionLevelComplete}, midday)
	if len(res.Unlocked) != 1 || res.Unlocked[0] != "ach_first_level" {
		t.Fatalf("Unlocked = %v, want [ach_first_level]", res.Unlocked)
	}
	// 10 level XP + 25 achievement reward, no badges
	if out.XP != 35 {
		t.Errorf("XP = %d, want 35", out.XP)
	}
	if !out.HasAchievement("ach_first_level") {
		t.Error("achievement not recorded on progress")
	}
}

func TestEvaluateNeverRefires(t *testing.T) {
	cat := catalog.Default()
	p := models.DefaultProgress()
	p.CompletedLevels["maf3ul_mutlaq"] = 1
	p.Achievements = []string{"ach_first_level"}

	out, res := EvaluateAchievements(cat, p, &Event{Action: ActionLevelComplete}, midday)
	if len(res.Unlocked) != 0 {
		t.Errorf("Unlocked = %v, want none", res.Unlocked)
	}
	if out.XP != p.XP || len(out.Achievements) != 1 {
		t.Error("no-fire pass changed progress")
	}
}

func TestEvaluateSnapshotSemantics(t *testing.T) {
	// The reward from an unlock earlier in the pass must not satisfy an
	// XP-threshold condition later in the same pass.
	cat := catalog.New(nil, nil, []catalog.Achievement{
		{
			ID: "big_reward", TranslationKey: "big_reward", Name: "Big Reward", XPReward: 50,
			Condition: catalog.Condition{Kind: catalog.CondLoginStreak, Threshold: 1},
		},
		{
			ID: "xp_1000", TranslationKey: "xp_1000", Name: "XP 1000", XPReward: 10,
			Condition: catalog.Condition{Kind: catalog.CondXPTotal, Threshold: 1000},
		},
	})

	p := models.DefaultProgress()
	p.XP = 990
	p.LoginStreak = 1

	out, res := EvaluateAchievements(cat, p, nil, midday)
	if len(res.Unlocked) != 1 || res.Unlocked[0] != "big_reward" {
		t.Fatalf("Unlocked = %v, want [big_reward] only", res.Unlocked)
	}
	if out.XP != 1040 {
		t.Errorf("XP = %d, want 1040", out.XP)
	}

	// The next pass sees the settled total and fires the threshold.
	out, res = EvaluateAchievements(cat, out, nil, midday)
	if len(res.Unlocked) != 1 || res.Unlocked[0] != "xp_1000" {
		t.Errorf("second pass Unlocked = %v, want [xp_1000]", res.Unlocked)
	}
	if out.XP != 1050 {
		t.Errorf("XP = %d, want 1050", out.XP)
	}
}

func TestEvaluateRewardsGoThroughMultiplier(t *testing.T) {
	cat := catalog.Default()
	p := progressWith("badge_gold", "badge_bronze", "theme_ocean")
	// Three purchases satisfy both purchase-count achievements at once.

	out, res := EvaluateAchievements(cat, p, &Event{Action: ActionPurchase}, midday)
	want := map[string]bool{"ach_first_purchase": true, "ach_shopaholic": true}
	if len(res.Unlocked) != 2 || !want[res.Unlocked[0]] || !want[res.Unlocked[1]] {
		t.Fatalf("Unlocked = %v, want first_purchase and shopaholic", res.Unlocked)
	}
	// (20 + 40) * 1.40 = 84, applied once over the accumulated total
	if res.XP.Applied != 84 || out.XP != 84 {
		t.Errorf("applied = %d, XP = %d, want 84", res.XP.Applied, out.XP)
	}
}

func TestEvaluatePerfectQuiz(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name string
		ev   *Event
		want bool
	}{
		{"perfect and long enough", &Event{Action: ActionQuizComplete, Score: 5, Total: 5}, true},
		{"perfect but too short", &Event{Action: ActionQuizComplete, Score: 4, Total: 4}, false},
		{"imperfect", &Event{Action: ActionQuizComplete, Score: 9, Total: 10}, false},
		{"wrong action", &Event{Action: ActionLevelComplete, Score: 5, Total: 5}, false},
		{"no event", nil, false},
	}
	for _, tt := range tests {
		_, res := EvaluateAchievements(cat, models.DefaultProgress(), tt.ev, midday)
		got := false
		for _, id := range res.Unlocked {
			if id == "ach_perfect_quiz" {
				got = true
			}
		}
		if got != tt.want {
			t.Errorf("%s: perfect quiz fired = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEvaluateTimeOfDay(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		hour int
		want string
	}{
		{23, "ach_night_owl"},
		{2, "ach_night_owl"},
		{5, "ach_early_bird"},
		{12, ""},
	}
	for _, tt := range tests {
		_, res := EvaluateAchievements(cat, models.DefaultProgress(), nil, tt.hour)
		switch {
		case tt.want == "" && len(res.Unlocked) != 0:
			t.Errorf("hour %d: Unlocked = %v, want none", tt.hour, res.Unlocked)
		case tt.want != "" && (len(res.Unlocked) != 1 || res.Unlocked[0] != tt.want):
			t.Errorf("hour %d: Unlocked = %v, want [%s]", tt.hour, res.Unlocked, tt.want)
		}
	}
}

func TestEvaluateLanguageAchievements(t *testing.T) {
	cat := catalog.Default()
	p := models.DefaultProgress()

	// One completed level in each language
	p.CompletedLevels["maf3ul_mutlaq"] = 1
	p.CompletedLevels["fr_articles"] = 1
	p.CompletedLevels["en_dynamic_verbs"] = 1
	// Suppress the unrelated unlocks so the assertion stays focused
	p.Achievements = []string{"ach_first_level"}

	_, res := EvaluateAchievements(cat, p, nil, midday)
	if len(res.Unlocked) != 1 || res.Unlocked[0] != "ach_polyglot" {
		t.Fatalf("Unlocked = %v, want [ach_polyglot]", res.Unlocked)
	}

	// Master every English topic
	p.CompletedLevels["en_dynamic_verbs"] = 3
	p.CompletedLevels["en_stative_verbs"] = 3
	p.Achievements = []string{"ach_first_level", "ach_polyglot"}

	_, res = EvaluateAchievements(cat, p, nil, midday)
	found := false
	for _, id := range res.Unlocked {
		if id == "ach_master_en" {
			found = true
		}
	}
	if !found {
		t.Errorf("Unlocked = %v, want ach_master_en included", res.Unlocked)
	}
}

func TestEvaluateNoChangeReturnsInputUnchanged(t *testing.T) {
	cat := catalog.Default()
	p := models.DefaultProgress()
	p.XP = 500

	out, res := EvaluateAchievements(cat, p, nil, midday)
	if len(res.Unlocked) != 0 || res.XP.Applied != 0 {
		t.Fatalf("expected empty pass, got %+v", res)
	}
	if out.XP != 500 || len(out.Achievements) != 0 {
		t.Error("empty pass changed progress")
	}
}

func TestHourInWindow(t *testing.T) {
	tests := []struct {
		hour, start, end int
		want             bool
	}{
		{22, 22, 4, true},
		{0, 22, 4, true},
		{3, 22, 4, true},
		{4, 22, 4, false},
		{12, 22, 4, false},
		{4, 4, 8, true},
		{7, 4, 8, true},
		{8, 4, 8, false},
		{5, 5, 5, false}, // degenerate window never matches
	}
	for _, tt := range tests {
		if got := hourInWindow(tt.hour, tt.start, tt.end); got != tt.want {
			t.Errorf("hourInWindow(%d, %d, %d) = %v, want %v", tt.hour, tt.start, tt.end, got, tt.want)
		}
	}
}
