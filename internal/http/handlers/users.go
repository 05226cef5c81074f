package handlers

import (
	"net/http"

	"travel-backend/internal/domain/models"
	"travel-backend/internal/http/middleware"
	"travel-backend/internal/repositories"
	"travel-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func userService(c *gin.Context) services.UserService {
	return services.UserService{
		Repo:      repositories.UserRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/users (admin)
func GetUsers(c *gin.Context) {
	list, err := userService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	SuccessList(c, len(list), list)
}

// PUT /api/users/profile updates full name and phone only.
func UpdateProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var u models.ProfileUpdate
	if !BindJSONOrError(c, &u) {
		return
	}

	user, err := userService(c).UpdateProfile(actor, u)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Success(c, http.StatusOK, "profile updated successfully", user)
}
