package progression

import (
	"math"

	"github.com/grammar-quest/backend/internal/catalog"
	"github.com/grammar-quest/backend/internal/models"
)

// Raw XP amounts for the fixed-size sources. Level rewards come from the
// catalog; quiz rewards scale with the score (see QuizXP).
const (
	ExerciseXP     = 5    // one correct sentence-completion answer
	CheatXP        = 5000 // developer code grant
	QuizMaxXP      = 50   // a perfect quiz earns this
	DailyBonusBase = 15   // daily bonus = base + streak * DailyBonusStep
	DailyBonusStep = 5
)

// XPResult reports what a single award did, so callers can render feedback
// without recomputing the multiplier.
type XPResult struct {
	Raw        int
	Applied    int
	Multiplier float64
}

// ComputeMultiplier derives the active XP multiplier from owned badges.
// Exactly one tier ("replace") badge applies at a time (the highest owned,
// floor 1.0) and additive bonuses stack on top of it.
func ComputeMultiplier(c *catalog.Catalog, p models.UserProgress) float64 {
	base := 1.0
	additive := 0.0
	for _, id := range p.PurchasedItems {
		item := c.Item(id)
		if item == nil || item.Type != catalog.ItemBadge || item.Effect == nil {
			continue
		}
		switch item.Effect.Kind {
		case catalog.EffectReplace:
			if item.Effect.Value > base {
				base = item.Effect.Value
			}
		case catalog.EffectAdditive:
			additive += item.Effect.Value
		}
	}
	return base + additive
}

// AwardXP applies the multiplier to raw and credits the rounded result.
// The stored total clamps at zero, so a negative raw amount (a cheat
// penalty) can never drive it below zero. A raw amount of zero is a legal
// no-op that still clamps.
func AwardXP(c *catalog.Catalog, p models.UserProgress, raw int) (models.UserProgress, XPResult) {
	mult := ComputeMultiplier(c, p)
	applied := int(math.Round(float64(raw) * mult))

	out := p.Clone()
	out.XP += applied
	if out.XP < 0 {
		out.XP = 0
	}
	return out, XPResult{Raw: raw, Applied: applied, Multiplier: mult}
}

// QuizXP converts a quiz score into a raw XP amount: a perfect quiz is
// worth QuizMaxXP, partial scores scale linearly.
func QuizXP(score, total int) int {
	if total <= 0 || score <= 0 {
		return 0
	}
	if score > total {
		score = total
	}
	return int(math.Round(float64(score) / float64(total) * QuizMaxXP))
}
