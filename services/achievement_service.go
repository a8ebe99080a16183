package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"typingmaster/db"
	"typingmaster/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Streak lengths that earn a badge. Exact-match semantics: a user who skips
// a day and climbs back past a value they never landed on exactly does not
// earn it retroactively.
var streakMilestones = map[int]bool{
	5:   true,
	10:  true,
	15:  true,
	30:  true,
	50:  true,
	100: true,
}

// Speed milestones ordered highest first so the best matching title wins
var speedMilestones = []struct {
	MinWPM float64
	Title  string
}{
	{100, "Lightning Fingers"},
	{80, "Speed Demon"},
	{60, "Fast Typer"},
	{40, "Speed Boost"},
}

// BadgeAward is a pending badge produced by rule evaluation
type BadgeAward struct {
	Type        string  `json:"type"` // "streak" or "wpm"
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Days        int     `json:"days,omitempty"`
	WPM         float64 `json:"wpm,omitempty"`
}

// StreakMilestoneTitle returns the badge title for a streak value, if that
// exact value is a milestone.
func StreakMilestoneTitle(streak int) (string, bool) {
	if !streakMilestones[streak] {
		return "", false
	}
	return fmt.Sprintf("%d Day Streak", streak), true
}

// SpeedMilestoneTitle returns the title for the highest speed threshold the
// given WPM satisfies.
func SpeedMilestoneTitle(wpm float64) (string, bool) {
	for _, m := range speedMilestones {
		if wpm >= m.MinWPM {
			return m.Title, true
		}
	}
	return "", false
}

// Evaluate runs both milestone rule families against a freshly recomputed
// snapshot and returns the badges to award. A speed badge requires the
// just-submitted WPM to equal the stored best (this submission IS the
// record); a tie with an existing best qualifies again, and awards are not
// deduplicated against previously earned badges.
func Evaluate(latestWPM float64, stats *models.UserStats) []BadgeAward {
	var awards []BadgeAward

	if title, ok := StreakMilestoneTitle(stats.CurrentStreak); ok {
		awards = append(awards, BadgeAward{
			Type:        "streak",
			Title:       title,
			Description: fmt.Sprintf("Maintained %d day typing streak!", stats.CurrentStreak),
			Days:        stats.CurrentStreak,
		})
	}

	if latestWPM == stats.BestWPM && latestWPM >= 40 {
		if title, ok := SpeedMilestoneTitle(latestWPM); ok {
			awards = append(awards, BadgeAward{
				Type:        "wpm",
				Title:       title,
				Description: fmt.Sprintf("Achieved %g WPM!", latestWPM),
				WPM:         latestWPM,
			})
		}
	}

	return awards
}

// AwardBadges renders an artifact for each pending award and records the
// badge. A failed render is logged and the badge is stored without an
// artifact path; the award itself must not be lost to a collaborator error.
func AwardBadges(ctx context.Context, userID primitive.ObjectID, awards []BadgeAward) ([]models.Badge, error) {
	badges := make([]models.Badge, 0, len(awards))
	for _, award := range awards {
		imagePath, err := RenderBadge(userID.Hex(), award.Title, award.Description)
		if err != nil {
			log.Printf("Error rendering badge artifact: %v", err)
			imagePath = ""
		}

		badge := models.Badge{
			ID:          primitive.NewObjectID(),
			UserID:      userID,
			BadgeType:   award.Type,
			Title:       award.Title,
			Description: award.Description,
			ImagePath:   imagePath,
			EarnedAt:    time.Now(),
		}
		if _, err := db.GetCollection("badges").InsertOne(ctx, badge); err != nil {
			return nil, fmt.Errorf("failed to save badge: %w", err)
		}
		badges = append(badges, badge)
	}
	return badges, nil
}

// ShareURLs builds social share links for an earned badge
func ShareURLs(title string) map[string]string {
	message := url.QueryEscape(fmt.Sprintf("I just earned a new badge on TypingMaster: %s!", title))
	return map[string]string{
		"whatsapp": "https://wa.me/?text=" + message,
		"telegram": "https://t.me/share/url?url=https://typingmaster.app&text=" + message,
		"twitter":  "https://twitter.com/intent/tweet?text=" + message + "&url=https://typingmaster.app",
	}
}
