package routes

import (
	"typingmaster/controllers"

	"github.com/gin-gonic/gin"
)

func SignUpRouteHandler(ctx *gin.Context) {
	controllers.SignUp(ctx)
}

func LoginRouteHandler(ctx *gin.Context) {
	controllers.Login(ctx)
}

func GoogleLoginRouteHandler(ctx *gin.Context) {
	controllers.GoogleLogin(ctx)
}
