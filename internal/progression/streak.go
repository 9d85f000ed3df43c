package progression

import (
	"time"

	"github.com/grammar-quest/backend/internal/catalog"
	"github.com/grammar-quest/backend/internal/models"
)

// ISODate is the calendar-date layout used for lastLoginDate.
const ISODate = "2006-01-02"

// ApplyDailyLogin runs the once-per-day streak check. today must be an ISO
// calendar date from the injected clock. A second call on the same day is
// a no-op. A consecutive day extends the streak; any gap, or an
// unparseable previous date, resets it to 1. The bonus (15 + streak*5 raw
// XP) goes through the XP engine so badge multipliers apply.
func ApplyDailyLogin(c *catalog.Catalog, p models.UserProgress, today string) (models.UserProgress, XPResult, bool) {
	if p.LastLoginDate == today {
		return p, XPResult{}, false
	}

	streak := 1
	if prev, err := time.Parse(ISODate, p.LastLoginDate); err == nil {
		if cur, err := time.Parse(ISODate, today); err == nil {
			diffDays := int(cur.Sub(prev).Hours() / 24)
			if diffDays == 1 {
				streak = p.LoginStreak + 1
			}
		}
	}

	bonus := DailyBonusBase + streak*DailyBonusStep
	out, res := AwardXP(c, p, bonus)
	out.LoginStreak = streak
	out.LastLoginDate = today
	return out, res, true
}
