package controllers

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"
	"time"

	"typingmaster/services"
	"typingmaster/structs"

	"github.com/gin-gonic/gin"
)

// GenerateSpeech synthesizes the practice text as MP3 audio, returned
// base64-encoded so the client can play it without a second fetch.
func GenerateSpeech(ctx *gin.Context) {
	var request structs.GenerateSpeechRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	ttsCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	audio, err := services.SynthesizeSpeech(ttsCtx, request.Text)
	if err != nil {
		log.Printf("Error synthesizing speech: %v", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Speech synthesis unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"audioContent": base64.StdEncoding.EncodeToString(audio),
		"contentType":  "audio/mpeg",
	})
}
