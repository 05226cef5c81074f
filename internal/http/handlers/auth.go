package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"travel-backend/internal/config"
	"travel-backend/internal/http/middleware"
	"travel-backend/internal/repositories"
	"travel-backend/internal/services"
	"travel-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}

	taken, err := repo.EmailOrUsernameTaken(req.Email, req.Username)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "auth", "register_check_failed", err.Error())
		fail(c, http.StatusInternalServerError, "server error")
		return
	}
	if taken {
		fail(c, http.StatusBadRequest, "email or username already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "server error")
		return
	}

	id, err := repo.Create(req.Username, req.Email, string(hash), req.FullName, req.Phone)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "auth", "register_failed", err.Error())
		fail(c, http.StatusInternalServerError, "server error")
		return
	}

	user, err := repo.GetByID(id)
	if err != nil {
		fail(c, http.StatusInternalServerError, "server error")
		return
	}

	Success(c, http.StatusCreated, "registration successful", user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login. The email field also accepts a username.
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}

	user, hash, err := repo.GetCredentials(req.Email)
	if errors.Is(err, sql.ErrNoRows) {
		fail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "auth", "login_failed", err.Error())
		fail(c, http.StatusInternalServerError, "server error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(config.JWTSecret())
	if err != nil {
		fail(c, http.StatusInternalServerError, "server error")
		return
	}

	Success(c, http.StatusOK, "login successful", gin.H{
		"token": tokenString,
		"user":  user,
	})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	svc := services.UserService{
		Repo:      repositories.UserRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	user, err := svc.Get(actor.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Success(c, http.StatusOK, "", user)
}
