package controllers

import (
	"context"
	"net/http"
	"time"

	"typingmaster/db"
	"typingmaster/services"
	"typingmaster/structs"
	"typingmaster/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultTestDuration = 60

// SubmitResult records a completed typing test: save the result, advance the
// streak, recompute the stats snapshot and evaluate milestone badges. The
// response carries any badges earned by this submission plus a motivational
// quote and the current streak.
func SubmitResult(ctx *gin.Context) {
	var request structs.SubmitResultRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	userID := ctx.MustGet("userID").(primitive.ObjectID)

	duration := request.Duration
	if duration <= 0 {
		duration = defaultTestDuration
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.SaveTypingResult(dbCtx, userID, *request.WPM, *request.Accuracy, duration); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save result"})
		return
	}

	currentStreak, err := services.UpdateStreak(dbCtx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update streak"})
		return
	}

	stats, err := services.GetUserStats(dbCtx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	awards := services.Evaluate(*request.WPM, stats)
	badges, err := services.AwardBadges(dbCtx, userID, awards)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record badges"})
		return
	}

	earned := make([]gin.H, 0, len(badges))
	for _, badge := range badges {
		earned = append(earned, gin.H{
			"title":       badge.Title,
			"description": badge.Description,
			"type":        badge.BadgeType,
			"imagePath":   badge.ImagePath,
			"shareUrls":   services.ShareURLs(badge.Title),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":       true,
		"badges":        earned,
		"quote":         utils.RandomQuote(),
		"currentStreak": currentStreak,
	})
}
