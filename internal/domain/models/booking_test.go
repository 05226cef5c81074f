package models

import "testing"

func TestValidBookingStatus(t *testing.T) {
	for _, s := range []string{BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled} {
		if !ValidBookingStatus(s) {
			t.Fatalf("%q should be a valid booking status", s)
		}
	}
	for _, s := range []string{"", "Pending", "done", "paid"} {
		if ValidBookingStatus(s) {
			t.Fatalf("%q should not be a valid booking status", s)
		}
	}
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []string{PaymentPending, PaymentPaid, PaymentRefunded} {
		if !ValidPaymentStatus(s) {
			t.Fatalf("%q should be a valid payment status", s)
		}
	}
	for _, s := range []string{"", "confirmed", "Paid", "refund"} {
		if ValidPaymentStatus(s) {
			t.Fatalf("%q should not be a valid payment status", s)
		}
	}
}

func TestPackageUpdateEmpty(t *testing.T) {
	var u PackageUpdate
	if !u.Empty() {
		t.Fatalf("zero update should be empty")
	}

	title := "New title"
	u.Title = &title
	if u.Empty() {
		t.Fatalf("update with a field set should not be empty")
	}
}
