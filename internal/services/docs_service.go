package services

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-backend/internal/domain"
	"travel-backend/internal/domain/models"
	"travel-backend/internal/repositories"
	"travel-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the booking invoice PDF. Invoices are only issued to
// the booking owner or an admin, and only once payment is settled.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
}

func (s DocsService) GenerateInvoice(actor models.Actor, bookingID int64) ([]byte, string, error) {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to load booking", Err: err}
	}
	if !actor.IsAdmin() && booking.UserID != actor.UserID {
		return nil, "", domain.ForbiddenError{Msg: "not authorized to access this booking"}
	}
	if booking.PaymentStatus != models.PaymentPaid {
		return nil, "", domain.ForbiddenError{Msg: "invoice available after payment"}
	}

	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(booking)
}

func buildInvoicePDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d", b.ID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name  : %s", safe(b.FullName, b.Username)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Email : %s", safe(b.Email, "-")))
	pdf.Ln(10)

	desc := fmt.Sprintf("%s, %s (%s) - travel date %s, %d people",
		safe(b.PackageTitle, "-"), safe(b.DestinationName, "-"),
		safe(b.Country, "-"), safe(b.TravelDate, "-"), b.NumPeople,
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatMoney(b.TotalAmount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This invoice covers the full booking amount recorded at booking time.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render invoice", Err: err}
	}

	filename := fmt.Sprintf("INVOICE_%d.pdf", b.ID)
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
