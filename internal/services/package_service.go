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

// PackageService owns the public catalog and the admin CRUD on packages.
type PackageService struct {
	Repo       repositories.PackageRepository
	ReviewRepo repositories.ReviewRepository
	RequestID  string
}

func (s PackageService) List(f models.PackageFilter) ([]models.Package, error) {
	list, err := s.Repo.List(f)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list packages", Err: err}
	}
	return list, nil
}

// Get returns the package detail with its full review list, newest first.
func (s PackageService) Get(id int64) (models.PackageDetail, error) {
	detail, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PackageDetail{}, domain.NotFoundError{Resource: "package"}
	}
	if err != nil {
		return models.PackageDetail{}, domain.InternalError{Msg: "failed to load package", Err: err}
	}

	reviews, err := s.ReviewRepo.ListByPackage(id)
	if err != nil {
		return models.PackageDetail{}, domain.InternalError{Msg: "failed to load reviews", Err: err}
	}
	detail.Reviews = reviews
	return detail, nil
}

func (s PackageService) Create(in models.PackageInput) (models.PackageDetail, error) {
	if in.Price <= 0 {
		return models.PackageDetail{}, domain.ValidationError{Field: "price", Msg: "must be greater than 0"}
	}
	if in.MaxPeople <= 0 {
		return models.PackageDetail{}, domain.ValidationError{Field: "max_people", Msg: "must be greater than 0"}
	}

	id, err := s.Repo.Create(in)
	if err != nil {
		return models.PackageDetail{}, domain.InternalError{Msg: "failed to create package", Err: err}
	}

	utils.LogEvent(s.RequestID, "package", "create", fmt.Sprintf("package_id=%d", id))

	detail, err := s.Repo.GetByID(id)
	if err != nil {
		return models.PackageDetail{}, domain.InternalError{Msg: "failed to load created package", Err: err}
	}
	return detail, nil
}

// Update applies a partial update; omitted fields keep their stored values.
func (s PackageService) Update(id int64, u models.PackageUpdate) (models.PackageDetail, error) {
	if u.Price != nil && *u.Price <= 0 {
		return models.PackageDetail{}, domain.ValidationError{Field: "price", Msg: "must be greater than 0"}
	}
	if u.MaxPeople != nil && *u.MaxPeople <= 0 {
		return models.PackageDetail{}, domain.ValidationError{Field: "max_people", Msg: "must be greater than 0"}
	}

	exists, err := s.Repo.Exists(id)
	if err != nil {
		return models.PackageDetail{}, domain.InternalError{Msg: "failed to check package", Err: err}
	}
	if !exists {
		return models.PackageDetail{}, domain.NotFoundError{Resource: "package"}
	}

	if !u.Empty() {
		if err := s.Repo.Update(id, u); err != nil {
			return models.PackageDetail{}, domain.InternalError{Msg: "failed to update package", Err: err}
		}
		utils.LogEvent(s.RequestID, "package", "update", fmt.Sprintf("package_id=%d", id))
	}

	detail, err := s.Repo.GetByID(id)
	if err != nil {
		return models.PackageDetail{}, domain.InternalError{Msg: "failed to load updated package", Err: err}
	}
	return detail, nil
}

// Delete is a hard delete after an existence check.
func (s PackageService) Delete(id int64) error {
	exists, err := s.Repo.Exists(id)
	if err != nil {
		return domain.InternalError{Msg: "failed to check package", Err: err}
	}
	if !exists {
		return domain.NotFoundError{Resource: "package"}
	}

	if err := s.Repo.Delete(id); err != nil {
		return domain.InternalError{Msg: "failed to delete package", Err: err}
	}

	utils.LogEvent(s.RequestID, "package", "delete", fmt.Sprintf("package_id=%d", id))
	return nil
}
