package handlers

import (
	"net/http"

	"travel-backend/internal/domain/models"
	"travel-backend/internal/http/middleware"
	"travel-backend/internal/repositories"
	"travel-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func destinationService(c *gin.Context) services.DestinationService {
	return services.DestinationService{
		Repo:        repositories.DestinationRepository{},
		PackageRepo: repositories.PackageRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/destinations
func GetDestinations(c *gin.Context) {
	list, err := destinationService(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	SuccessList(c, len(list), list)
}

// GET /api/destinations/:id
func GetDestination(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := destinationService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Success(c, http.StatusOK, "", detail)
}

// POST /api/destinations (admin)
func CreateDestination(c *gin.Context) {
	var in models.DestinationInput
	if !BindJSONOrError(c, &in) {
		return
	}

	dest, err := destinationService(c).Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Success(c, http.StatusCreated, "destination created successfully", dest)
}
