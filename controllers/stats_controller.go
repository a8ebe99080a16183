package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"typingmaster/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetTypingStats returns the authenticated user's stats snapshot
func GetTypingStats(ctx *gin.Context) {
	userID := ctx.MustGet("userID").(primitive.ObjectID)

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := services.GetUserStats(dbCtx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// GetDashboard bundles the user's own stats with a small directory preview
// of top typists.
func GetDashboard(ctx *gin.Context) {
	userID := ctx.MustGet("userID").(primitive.ObjectID)

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := services.GetUserStats(dbCtx, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	preview, err := services.GetDirectoryPreview(dbCtx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load top typists"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"stats":      stats,
		"topTypists": preview,
	})
}

// GetUserProfile returns another user's public stats snapshot by id
func GetUserProfile(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := services.GetUserStats(dbCtx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
