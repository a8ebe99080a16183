package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"typingmaster/config"
	"typingmaster/db"
	"typingmaster/models"
	"typingmaster/structs"
	"typingmaster/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"google.golang.org/api/idtoken"
)

var appConfig *config.Config

// SetConfig injects the loaded configuration for the auth handlers
func SetConfig(cfg *config.Config) {
	appConfig = cfg
}

// SignUp registers a local account. The welcome email is best-effort: a
// send failure is logged and the signup still succeeds.
func SignUp(ctx *gin.Context) {
	var request structs.SignUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.FindUserByEmail(dbCtx, request.Email); err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	} else if err != mongo.ErrNoDocuments {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      request.Name,
		Email:     request.Email,
		Password:  hash,
		CreatedAt: time.Now(),
	}
	if _, err := db.GetCollection("users").InsertOne(dbCtx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	if err := utils.SendWelcomeEmail(appConfig, user.Email, user.Name); err != nil {
		log.Printf("Error sending welcome email to %s: %v", user.Email, err)
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Account created successfully. Please check your email for verification.",
		"accessToken": token,
	})
}

// Login authenticates a local account. Unknown email and wrong password get
// the same generic response.
func Login(ctx *gin.Context) {
	var request structs.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": "Check email and password format"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := db.FindUserByEmail(dbCtx, request.Email)
	if err != nil || user.Password == "" || !utils.CheckPasswordHash(request.Password, user.Password) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Sign-in successful", "accessToken": token})
}

// googleAccount returns the account to issue a token for: the existing user
// when one matches the email, otherwise a new federated account. An existing
// account is returned untouched; a Google sign-in never rewrites stored
// credentials, so a password hash and a Google subject id cannot end up on
// the same document.
func googleAccount(existing *models.User, name, email, subject string) (*models.User, bool) {
	if existing != nil {
		return existing, false
	}
	return &models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		GoogleID:  subject,
		Verified:  true,
		CreatedAt: time.Now(),
	}, true
}

// GoogleLogin verifies a Google ID token and signs the user in, creating the
// account on first login. Only the {sub, email, name} triple from the token
// is consumed.
func GoogleLogin(ctx *gin.Context) {
	var request structs.GoogleLoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	payload, err := idtoken.Validate(ctx, request.Token, appConfig.Google.ClientId)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google token"})
		return
	}
	if name == "" {
		name = utils.ExtractNameFromEmail(email)
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := db.FindUserByEmail(dbCtx, email)
	if err != nil && err != mongo.ErrNoDocuments {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user, created := googleAccount(existing, name, email, payload.Subject)
	if created {
		if _, err := db.GetCollection("users").InsertOne(dbCtx, user); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
	}

	token, err := utils.GenerateJWTToken(user.ID.Hex(), user.Email)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Sign-in successful", "accessToken": token})
}
