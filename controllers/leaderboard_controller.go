package controllers

import (
	"context"
	"net/http"
	"time"

	"typingmaster/services"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns the top typists ranked by best WPM
func GetLeaderboard(ctx *gin.Context) {
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	entries, err := services.GetLeaderboard(dbCtx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leaderboard"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
