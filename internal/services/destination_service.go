package services

import (
	"database/sql"
	"errors"
	"fmt"

	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
	"travel-backend/internal/repositories"
	"travel-backend/internal/utils"
)

type DestinationService struct {
	Repo        repositories.DestinationRepository
	PackageRepo repositories.PackageRepository
	RequestID   string
}

func (s DestinationService) List() ([]models.Destination, error) {
	list, err := s.Repo.List()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list destinations", Err: err}
	}
	return list, nil
}

// Get returns a destination with its currently-available packages.
func (s DestinationService) Get(id int64) (models.DestinationDetail, error) {
	dest, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DestinationDetail{}, domain.NotFoundError{Resource: "destination"}
	}
	if err != nil {
		return models.DestinationDetail{}, domain.InternalError{Msg: "failed to load destination", Err: err}
	}

	packages, err := s.PackageRepo.ListAvailableByDestination(id)
	if err != nil {
		return models.DestinationDetail{}, domain.InternalError{Msg: "failed to load packages", Err: err}
	}

	return models.DestinationDetail{Destination: dest, Packages: packages}, nil
}

func (s DestinationService) Create(in models.DestinationInput) (models.Destination, error) {
	id, err := s.Repo.Create(in)
	if err != nil {
		return models.Destination{}, domain.InternalError{Msg: "failed to create destination", Err: err}
	}

	utils.LogEvent(s.RequestID, "destination", "create", fmt.Sprintf("destination_id=%d", id))

	dest, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Destination{}, domain.InternalError{Msg: "failed to load created destination", Err: err}
	}
	return dest, nil
}
