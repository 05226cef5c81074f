package models

type Review struct {
	ID        int64  `json:"review_id"`
	UserID    int64  `json:"user_id"`
	PackageID int64  `json:"package_id"`
	BookingID int64  `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at,omitempty"`

	// Reviewer identity joined for package detail views.
	Username string `json:"username,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
