package progression

import (
	"github.com/grammar-quest/backend/internal/catalog"
	"github.com/grammar-quest/backend/internal/models"
)

// PurchaseItem deducts the item's cost and appends it to the purchased
// set. Costs are paid in raw XP; no multiplier ever applies to spending.
// Unknown items, repurchases, and unaffordable purchases are silent
// no-ops returning the input unchanged.
func PurchaseItem(c *catalog.Catalog, p models.UserProgress, itemID string) (models.UserProgress, bool) {
	item := c.Item(itemID)
	if item == nil || p.HasPurchased(itemID) || p.XP < item.Cost {
		return p, false
	}

	out := p.Clone()
	out.XP -= item.Cost
	out.PurchasedItems = append(out.PurchasedItems, itemID)
	return out, true
}

// ActivateTheme switches the active theme. Activation never costs XP and
// is fully reversible; the only check is ownership (or the built-in
// default). Reactivating the current theme is a no-op.
func ActivateTheme(c *catalog.Catalog, p models.UserProgress, themeID string) (models.UserProgress, bool) {
	if themeID == p.ActiveThemeID {
		return p, false
	}
	if themeID != catalog.DefaultThemeID {
		item := c.Item(themeID)
		if item == nil || item.Type != catalog.ItemTheme || !p.HasPurchased(themeID) {
			return p, false
		}
	}

	out := p.Clone()
	out.ActiveThemeID = themeID
	return out, true
}
