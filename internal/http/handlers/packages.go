package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"travel-backend/internal/domain/models"
	"travel-backend/internal/http/middleware"
	"travel-backend/internal/repositories"
	"travel-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func packageService(c *gin.Context) services.PackageService {
	return services.PackageService{
		Repo:       repositories.PackageRepository{},
		ReviewRepo: repositories.ReviewRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
}

// GET /api/packages?destination&minPrice&maxPrice&available
func GetPackages(c *gin.Context) {
	var f models.PackageFilter
	f.Destination = strings.TrimSpace(c.Query("destination"))

	if v := strings.TrimSpace(c.Query("minPrice")); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			fail(c, http.StatusBadRequest, "invalid minPrice")
			return
		}
		f.MinPrice = &p
	}
	if v := strings.TrimSpace(c.Query("maxPrice")); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			fail(c, http.StatusBadRequest, "invalid maxPrice")
			return
		}
		f.MaxPrice = &p
	}
	if v := strings.TrimSpace(c.Query("available")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			fail(c, http.StatusBadRequest, "invalid available flag")
			return
		}
		f.Available = &b
	}

	list, err := packageService(c).List(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	SuccessList(c, len(list), list)
}

// GET /api/packages/:id
func GetPackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := packageService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Success(c, http.StatusOK, "", detail)
}

// POST /api/packages (admin)
func CreatePackage(c *gin.Context) {
	var in models.PackageInput
	if !BindJSONOrError(c, &in) {
		return
	}

	detail, err := packageService(c).Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Success(c, http.StatusCreated, "package created successfully", detail)
}

// PUT /api/packages/:id (admin); omitted fields keep their stored values.
func UpdatePackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var u models.PackageUpdate
	if !BindJSONOrError(c, &u) {
		return
	}

	detail, err := packageService(c).Update(id, u)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Success(c, http.StatusOK, "package updated successfully", detail)
}

// DELETE /api/packages/:id (admin)
func DeletePackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := packageService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	Success(c, http.StatusOK, "package deleted successfully", nil)
}
