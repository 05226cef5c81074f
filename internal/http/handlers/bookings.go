package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"travel-backend/internal/domain/models"
	"travel-backend/internal/http/middleware"
	"travel-backend/internal/repositories"
	"travel-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Repo:       repositories.BookingRepository{},
		ReviewRepo: repositories.ReviewRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var in models.BookingInput
	if !BindJSONOrError(c, &in) {
		return
	}

	booking, err := bookingService(c).Create(actor, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Success(c, http.StatusCreated, "booking created successfully", booking)
}

// GET /api/bookings/my-bookings
func GetMyBookings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	list, err := bookingService(c).ListMine(actor)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	SuccessList(c, len(list), list)
}

// GET /api/bookings?status&paymentStatus (admin)
func GetAllBookings(c *gin.Context) {
	f := models.BookingFilter{
		Status:        strings.TrimSpace(c.Query("status")),
		PaymentStatus: strings.TrimSpace(c.Query("paymentStatus")),
	}

	list, err := bookingService(c).ListAll(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	SuccessList(c, len(list), list)
}

// GET /api/bookings/:id, owner or admin.
func GetBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := bookingService(c).Get(actor, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Success(c, http.StatusOK, "", booking)
}

// PUT /api/bookings/:id/status (admin)
func UpdateBookingStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var u models.BookingStatusUpdate
	if !BindJSONOrError(c, &u) {
		return
	}

	booking, err := bookingService(c).UpdateStatus(id, u)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	Success(c, http.StatusOK, "booking updated successfully", booking)
}

// PUT /api/bookings/:id/cancel, owner or admin.
func CancelBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := bookingService(c).Cancel(actor, id); err != nil {
		RespondDomainError(c, err)
		return
	}

	Success(c, http.StatusOK, "booking cancelled successfully", nil)
}

// POST /api/bookings/:id/review, owner only, one review per booking.
func ReviewBooking(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in models.ReviewInput
	if !BindJSONOrError(c, &in) {
		return
	}

	if err := bookingService(c).AddReview(actor, id, in); err != nil {
		RespondDomainError(c, err)
		return
	}

	Success(c, http.StatusCreated, "review added successfully", nil)
}

// GET /api/bookings/:id/invoice returns the PDF, owner or admin, paid bookings only.
func GetBookingInvoice(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	svc := services.DocsService{
		BookingRepo: repositories.BookingRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateInvoice(actor, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
