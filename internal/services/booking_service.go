package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"travel-backend/internal/config"
	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
	"travel-backend/internal/repositories"
	"travel-backend/internal/utils"

	"github.com/jinzhu/now"
)

// BookingService owns the booking lifecycle: creation, listing, status
// transitions, cancellation and review attachment.
type BookingService struct {
	Repo       repositories.BookingRepository
	ReviewRepo repositories.ReviewRepository
	DB         *sql.DB
	RequestID  string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return config.DB
}

// Create books a package for the actor. The capacity check and the insert run
// in one transaction with the package row locked, so a concurrent price or
// capacity change cannot slip between them.
func (s BookingService) Create(actor models.Actor, in models.BookingInput) (models.Booking, error) {
	if in.NumPeople < 1 {
		return models.Booking{}, domain.ValidationError{Field: "num_people", Msg: "must be at least 1"}
	}

	travelDate, err := now.Parse(strings.TrimSpace(in.TravelDate))
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "travel_date", Msg: "invalid date", Err: err}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to start transaction", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	var (
		price     float64
		maxPeople int
		available bool
	)
	err = tx.QueryRow(
		`SELECT price, max_people, available FROM packages WHERE package_id = ? FOR UPDATE`,
		in.PackageID,
	).Scan(&price, &maxPeople, &available)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "package"}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to load package", Err: err}
	}
	if !available {
		// Unavailable packages are invisible to booking, same as absent ones.
		return models.Booking{}, domain.NotFoundError{Resource: "package"}
	}
	if in.NumPeople > maxPeople {
		return models.Booking{}, domain.ValidationError{
			Field: "num_people",
			Msg:   fmt.Sprintf("maximum %d people allowed for this package", maxPeople),
		}
	}

	// Snapshot: later price changes never alter existing bookings.
	total := price * float64(in.NumPeople)

	res, err := tx.Exec(`
		INSERT INTO bookings
			(user_id, package_id, booking_date, travel_date, num_people,
			total_amount, special_requests, status, payment_status)
		VALUES (?, ?, CURDATE(), ?, ?, ?, ?, ?, ?)`,
		actor.UserID, in.PackageID, travelDate.Format("2006-01-02"), in.NumPeople,
		total, in.SpecialRequests, models.BookingPending, models.PaymentPending,
	)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to create booking", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to read booking id", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to commit booking", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d package_id=%d num_people=%d", id, in.PackageID, in.NumPeople))

	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to load created booking", Err: err}
	}
	return booking, nil
}

// ListMine returns the actor's own bookings, newest first.
func (s BookingService) ListMine(actor models.Actor) ([]models.Booking, error) {
	list, err := s.Repo.ListByUser(actor.UserID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list bookings", Err: err}
	}
	return list, nil
}

// ListAll is the admin view across users. Filter values must be valid enum
// members when present.
func (s BookingService) ListAll(f models.BookingFilter) ([]models.Booking, error) {
	if f.Status != "" && !models.ValidBookingStatus(f.Status) {
		return nil, domain.ValidationError{Field: "status", Msg: "unknown status"}
	}
	if f.PaymentStatus != "" && !models.ValidPaymentStatus(f.PaymentStatus) {
		return nil, domain.ValidationError{Field: "payment_status", Msg: "unknown payment status"}
	}
	list, err := s.Repo.ListAll(f)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list bookings", Err: err}
	}
	return list, nil
}

// Get returns one booking to its owner or an admin.
func (s BookingService) Get(actor models.Actor, id int64) (models.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	if !actor.IsAdmin() && booking.UserID != actor.UserID {
		return models.Booking{}, domain.ForbiddenError{Msg: "not authorized to access this booking"}
	}
	return booking, nil
}

// UpdateStatus lets an admin overwrite status and/or payment_status. Only enum
// membership is validated; the two fields stay independent.
func (s BookingService) UpdateStatus(id int64, u models.BookingStatusUpdate) (models.Booking, error) {
	if u.Status != nil && !models.ValidBookingStatus(*u.Status) {
		return models.Booking{}, domain.ValidationError{Field: "status", Msg: "unknown status"}
	}
	if u.PaymentStatus != nil && !models.ValidPaymentStatus(*u.PaymentStatus) {
		return models.Booking{}, domain.ValidationError{Field: "payment_status", Msg: "unknown payment status"}
	}

	if _, _, err := s.Repo.GetOwnerAndStatus(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, domain.InternalError{Msg: "failed to load booking", Err: err}
	}

	if err := s.Repo.UpdateStatus(id, u); err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to update booking", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "update_status", fmt.Sprintf("booking_id=%d", id))

	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "failed to load updated booking", Err: err}
	}
	return booking, nil
}

// Cancel sets status=cancelled for the owner or an admin. payment_status is
// deliberately untouched; refunds are a separate admin action.
func (s BookingService) Cancel(actor models.Actor, id int64) error {
	ownerID, status, err := s.Repo.GetOwnerAndStatus(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	if !actor.IsAdmin() && ownerID != actor.UserID {
		return domain.ForbiddenError{Msg: "not authorized to cancel this booking"}
	}
	if status == models.BookingCancelled {
		return domain.ValidationError{Msg: "booking already cancelled"}
	}

	if err := s.Repo.Cancel(id); err != nil {
		return domain.InternalError{Msg: "failed to cancel booking", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "cancel", fmt.Sprintf("booking_id=%d", id))
	return nil
}

// AddReview attaches the single allowed review to the actor's own booking.
// A booking owned by someone else reads as absent, matching the lookup.
func (s BookingService) AddReview(actor models.Actor, bookingID int64, in models.ReviewInput) error {
	if in.Rating < 1 || in.Rating > 5 {
		return domain.ValidationError{Field: "rating", Msg: "must be between 1 and 5"}
	}

	ownerID, packageID, err := s.Repo.GetOwnerAndPackage(bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	if ownerID != actor.UserID {
		return domain.NotFoundError{Resource: "booking"}
	}

	exists, err := s.ReviewRepo.ExistsForBooking(bookingID)
	if err != nil {
		return domain.InternalError{Msg: "failed to check existing review", Err: err}
	}
	if exists {
		return domain.ValidationError{Msg: "review already submitted for this booking"}
	}

	if _, err := s.ReviewRepo.Create(actor.UserID, packageID, bookingID, in.Rating, in.Comment); err != nil {
		return domain.InternalError{Msg: "failed to add review", Err: err}
	}

	utils.LogEvent(s.RequestID, "review", "create", fmt.Sprintf("booking_id=%d rating=%d", bookingID, in.Rating))
	return nil
}
