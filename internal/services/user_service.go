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

type UserService struct {
	Repo      repositories.UserRepository
	RequestID string
}

// List is the admin user listing; the repository already excludes the hash.
func (s UserService) List() ([]models.User, error) {
	list, err := s.Repo.List()
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list users", Err: err}
	}
	return list, nil
}

func (s UserService) Get(id int64) (models.User, error) {
	u, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to load user", Err: err}
	}
	return u, nil
}

// UpdateProfile lets the actor change full name and phone only.
func (s UserService) UpdateProfile(actor models.Actor, u models.ProfileUpdate) (models.User, error) {
	if err := s.Repo.UpdateProfile(actor.UserID, u); err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to update profile", Err: err}
	}

	utils.LogEvent(s.RequestID, "user", "update_profile", fmt.Sprintf("user_id=%d", actor.UserID))

	updated, err := s.Repo.GetByID(actor.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to load profile", Err: err}
	}
	return updated, nil
}
