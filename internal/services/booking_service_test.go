package services

import (
	"testing"

	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
	"travel-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookingDetailCols = []string{
	"booking_id", "user_id", "package_id", "booking_date", "travel_date",
	"num_people", "total_amount", "special_requests", "status", "payment_status",
	"created_at",
	"username", "email", "full_name", "phone",
	"title", "image_url", "duration_days", "duration_nights",
	"name", "country",
}

func TestBookingCreateLocksPackageAndSnapshotsTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT price, max_people, available FROM packages`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"price", "max_people", "available"}).
			AddRow(250.0, 8, true))
	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs(int64(7), int64(3), "2026-07-01", 4, 1000.0, "window seats",
			models.BookingPending, models.PaymentPending).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`FROM bookings b`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(bookingDetailCols).AddRow(
			42, 7, 3, "2026-06-01", "2026-07-01",
			4, 1000.0, "window seats", "pending", "pending",
			"2026-06-01 10:00:00",
			"alice", "alice@example.com", "Alice Tan", "0800",
			"Bali Getaway", "https://img/bali.jpg", 4, 3,
			"Bali", "Indonesia",
		))

	svc := BookingService{
		Repo:      repositories.BookingRepository{DB: db},
		DB:        db,
		RequestID: "test",
	}

	booking, err := svc.Create(models.Actor{UserID: 7, Role: models.RoleCustomer}, models.BookingInput{
		PackageID:       3,
		TravelDate:      "2026-07-01",
		NumPeople:       4,
		SpecialRequests: "window seats",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}

	if booking.ID != 42 {
		t.Fatalf("expected booking 42, got %d", booking.ID)
	}
	if booking.TotalAmount != 1000.0 {
		t.Fatalf("total not snapshotted, got %v", booking.TotalAmount)
	}
	if booking.Status != models.BookingPending || booking.PaymentStatus != models.PaymentPending {
		t.Fatalf("new booking should start pending/pending, got %s/%s", booking.Status, booking.PaymentStatus)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateRejectsOverCapacity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT price, max_people, available FROM packages`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"price", "max_people", "available"}).
			AddRow(250.0, 4, true))
	mock.ExpectRollback()

	svc := BookingService{DB: db, RequestID: "test"}

	_, err = svc.Create(models.Actor{UserID: 7, Role: models.RoleCustomer}, models.BookingInput{
		PackageID:  3,
		TravelDate: "2026-07-01",
		NumPeople:  6,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateTreatsUnavailableAsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT price, max_people, available FROM packages`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"price", "max_people", "available"}).
			AddRow(250.0, 4, false))
	mock.ExpectRollback()

	svc := BookingService{DB: db, RequestID: "test"}

	_, err = svc.Create(models.Actor{UserID: 7, Role: models.RoleCustomer}, models.BookingInput{
		PackageID:  3,
		TravelDate: "2026-07-01",
		NumPeople:  2,
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCancelTwiceFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT user_id, status FROM bookings`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "status"}).
			AddRow(7, models.BookingCancelled))

	svc := BookingService{
		Repo:      repositories.BookingRepository{DB: db},
		RequestID: "test",
	}

	err = svc.Cancel(models.Actor{UserID: 7, Role: models.RoleCustomer}, 9)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "booking already cancelled" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCancelForbiddenForOtherUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT user_id, status FROM bookings`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "status"}).
			AddRow(1, models.BookingPending))

	svc := BookingService{
		Repo:      repositories.BookingRepository{DB: db},
		RequestID: "test",
	}

	err = svc.Cancel(models.Actor{UserID: 7, Role: models.RoleCustomer}, 9)
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingReviewNotOwnedReadsAsAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT user_id, package_id FROM bookings`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "package_id"}).
			AddRow(1, 3))

	svc := BookingService{
		Repo:       repositories.BookingRepository{DB: db},
		ReviewRepo: repositories.ReviewRepository{DB: db},
		RequestID:  "test",
	}

	err = svc.AddReview(models.Actor{UserID: 7, Role: models.RoleCustomer}, 9, models.ReviewInput{Rating: 5})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingReviewRejectsDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT user_id, package_id FROM bookings`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "package_id"}).
			AddRow(7, 3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reviews`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	svc := BookingService{
		Repo:       repositories.BookingRepository{DB: db},
		ReviewRepo: repositories.ReviewRepository{DB: db},
		RequestID:  "test",
	}

	err = svc.AddReview(models.Actor{UserID: 7, Role: models.RoleCustomer}, 9, models.ReviewInput{Rating: 4})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingListAllRejectsUnknownStatusFilter(t *testing.T) {
	svc := BookingService{RequestID: "test"}

	_, err := svc.ListAll(models.BookingFilter{Status: "done"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = svc.ListAll(models.BookingFilter{PaymentStatus: "confirmed"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
