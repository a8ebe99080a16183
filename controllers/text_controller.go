package controllers

import (
	"net/http"

	"typingmaster/utils"

	"github.com/gin-gonic/gin"
)

// GetTypingText serves a random practice passage. Public: the typing screen
// loads it before the user signs in.
func GetTypingText(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"text": utils.RandomPracticeText()})
}
