package routes

import (
	"typingmaster/controllers"

	"github.com/gin-gonic/gin"
)

func GetLeaderboardRouteHandler(ctx *gin.Context) {
	controllers.GetLeaderboard(ctx)
}
