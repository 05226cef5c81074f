package services

import (
	"bytes"
	"testing"

	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
	"travel-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectBookingDetail(mock sqlmock.Sqlmock, id, userID int64, paymentStatus string) {
	mock.ExpectQuery(`FROM bookings b`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(bookingDetailCols).AddRow(
			id, userID, 3, "2026-06-01", "2026-07-01",
			2, 500.0, "", "confirmed", paymentStatus,
			"2026-06-01 10:00:00",
			"alice", "alice@example.com", "Alice Tan", "0800",
			"Bali Getaway", "https://img/bali.jpg", 4, 3,
			"Bali", "Indonesia",
		))
}

func TestGenerateInvoiceProducesPDF(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectBookingDetail(mock, 42, 7, models.PaymentPaid)

	svc := DocsService{
		BookingRepo: repositories.BookingRepository{DB: db},
		RequestID:   "test",
	}

	pdfBytes, filename, err := svc.GenerateInvoice(models.Actor{UserID: 7, Role: models.RoleCustomer}, 42)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if filename != "INVOICE_42.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGenerateInvoiceRefusedBeforePayment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectBookingDetail(mock, 42, 7, models.PaymentPending)

	svc := DocsService{
		BookingRepo: repositories.BookingRepository{DB: db},
		RequestID:   "test",
	}

	_, _, err = svc.GenerateInvoice(models.Actor{UserID: 7, Role: models.RoleCustomer}, 42)
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
}

func TestGenerateInvoiceRefusedForOtherUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectBookingDetail(mock, 42, 1, models.PaymentPaid)

	svc := DocsService{
		BookingRepo: repositories.BookingRepository{DB: db},
		RequestID:   "test",
	}

	_, _, err = svc.GenerateInvoice(models.Actor{UserID: 7, Role: models.RoleCustomer}, 42)
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden error, got %v", err)
	}

	admin := models.Actor{UserID: 99, Role: models.RoleAdmin}
	expectBookingDetail(mock, 42, 1, models.PaymentPaid)
	if _, _, err := svc.GenerateInvoice(admin, 42); err != nil {
		t.Fatalf("admin should be allowed, got %v", err)
	}
}
