package routes

import (
	"typingmaster/controllers"

	"github.com/gin-gonic/gin"
)

func GetTypingTextRouteHandler(ctx *gin.Context) {
	controllers.GetTypingText(ctx)
}

func SubmitResultRouteHandler(ctx *gin.Context) {
	controllers.SubmitResult(ctx)
}

func GetTypingStatsRouteHandler(ctx *gin.Context) {
	controllers.GetTypingStats(ctx)
}

func GetDashboardRouteHandler(ctx *gin.Context) {
	controllers.GetDashboard(ctx)
}

func GetUserProfileRouteHandler(ctx *gin.Context) {
	controllers.GetUserProfile(ctx)
}

func GenerateSpeechRouteHandler(ctx *gin.Context) {
	controllers.GenerateSpeech(ctx)
}
