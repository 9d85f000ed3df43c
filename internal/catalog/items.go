package catalog

// ── Store Items ───────────────────────────────────────────

type ItemType string

const (
	ItemBadge ItemType = "badge"
	ItemTheme ItemType = "theme"
)

// EffectKind distinguishes tier badges, where only the highest owned tier
// applies, from flat bonuses that stack on top.
type EffectKind string

const (
	EffectReplace  EffectKind = "replace"
	EffectAdditive EffectKind = "additive"
)

// BadgeEffect is a badge's contribution to the XP multiplier. Replace
// effects compete (max wins, floor 1.0); additive effects sum.
type BadgeEffect struct {
	Kind  EffectKind `json:"kind"`
	Value float64    `json:"value"`
}

// StoreItem is a purchasable badge or theme. Costs are paid in raw XP and
// are never multiplied. Colors are opaque to the engine; the client applies
// them as CSS variables.
type StoreItem struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Cost        int               `json:"cost"`
	Type        ItemType          `json:"type"`
	Effect      *BadgeEffect      `json:"effect,omitempty"`
	Colors      map[string]string `json:"colors,omitempty"`
}

var StoreItems = []StoreItem{
	{
		ID: "badge_bronze", Name: "Bronze Badge", Cost: 100, Type: ItemBadge,
		Description: "Earn 15% more XP from every source.",
		Effect:      &BadgeEffect{Kind: EffectReplace, Value: 1.15},
	},
	{
		ID: "badge_silver", Name: "Silver Badge", Cost: 250, Type: ItemBadge,
		Description: "Earn 25% more XP from every source.",
		Effect:      &BadgeEffect{Kind: EffectReplace, Value: 1.25},
	},
	{
		ID: "badge_gold", Name: "Gold Badge", Cost: 500, Type: ItemBadge,
		Description: "Earn 40% more XP from every source.",
		Effect:      &BadgeEffect{Kind: EffectReplace, Value: 1.40},
	},
	{
		ID: "badge_expert", Name: "Expert Badge", Cost: 1000, Type: ItemBadge,
		Description: "Earn 60% more XP from every source.",
		Effect:      &BadgeEffect{Kind: EffectReplace, Value: 1.60},
	},
	{
		ID: "badge_book", Name: "Bookworm Badge", Cost: 150, Type: ItemBadge,
		Description: "A flat +5% XP bonus that stacks with your tier badge.",
		Effect:      &BadgeEffect{Kind: EffectAdditive, Value: 0.05},
	},
	{
		ID: "badge_star", Name: "Star Badge", Cost: 300, Type: ItemBadge,
		Description: "A flat +10% XP bonus that stacks with your tier badge.",
		Effect:      &BadgeEffect{Kind: EffectAdditive, Value: 0.10},
	},
	{
		ID: "theme_ocean", Name: "Ocean Theme", Cost: 200, Type: ItemTheme,
		Description: "Deep blues and teals.",
		Colors:      map[string]string{"brand": "#0ea5e9", "brand-light": "#7dd3fc", "accent": "#14b8a6"},
	},
	{
		ID: "theme_sunset", Name: "Sunset Theme", Cost: 200, Type: ItemTheme,
		Description: "Warm oranges and pinks.",
		Colors:      map[string]string{"brand": "#f97316", "brand-light": "#fdba74", "accent": "#ec4899"},
	},
	{
		ID: "theme_forest", Name: "Forest Theme", Cost: 250, Type: ItemTheme,
		Description: "Greens with golden highlights.",
		Colors:      map[string]string{"brand": "#16a34a", "brand-light": "#86efac", "accent": "#eab308"},
	},
}

// DefaultThemeID is always a legal active theme and never needs purchasing.
const DefaultThemeID = "default"
