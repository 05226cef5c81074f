package models

// Booking status values. Forward path: pending -> confirmed -> completed, with
// cancellation possible from pending or confirmed. The API validates enum
// membership only; admins may overwrite any value with any other.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Payment status values. Tracked independently of the booking status; the
// recommended correlation (refund cancelled+paid bookings) is operational
// policy, not enforced here.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

type Booking struct {
	ID              int64   `json:"booking_id"`
	UserID          int64   `json:"user_id"`
	PackageID       int64   `json:"package_id"`
	BookingDate     string  `json:"booking_date"`
	TravelDate      string  `json:"travel_date"`
	NumPeople       int     `json:"num_people"`
	TotalAmount     float64 `json:"total_amount"`
	SpecialRequests string  `json:"special_requests"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	CreatedAt       string  `json:"created_at,omitempty"`

	// Joined package/destination display fields.
	PackageTitle    string `json:"package_title,omitempty"`
	PackageImage    string `json:"package_image,omitempty"`
	DurationDays    int    `json:"duration_days,omitempty"`
	DurationNights  int    `json:"duration_nights,omitempty"`
	DestinationName string `json:"destination_name,omitempty"`
	Country         string `json:"country,omitempty"`

	// Joined customer fields (admin views).
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

type BookingInput struct {
	PackageID       int64  `json:"package_id" binding:"required"`
	TravelDate      string `json:"travel_date" binding:"required"`
	NumPeople       int    `json:"num_people" binding:"required"`
	SpecialRequests string `json:"special_requests"`
}

// BookingStatusUpdate is a coalesce update; nil fields leave stored values alone.
type BookingStatusUpdate struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
}

// BookingFilter narrows the admin list; empty strings mean no constraint.
type BookingFilter struct {
	Status        string
	PaymentStatus string
}
