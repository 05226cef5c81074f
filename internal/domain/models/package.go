package models

type Package struct {
	ID               int64   `json:"package_id"`
	DestinationID    int64   `json:"destination_id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	DurationDays     int     `json:"duration_days"`
	DurationNights   int     `json:"duration_nights"`
	Price            float64 `json:"price"`
	MaxPeople        int     `json:"max_people"`
	IncludedServices string  `json:"included_services"`
	ExcludedServices string  `json:"excluded_services"`
	Itinerary        string  `json:"itinerary"`
	ImageURL         string  `json:"image_url"`
	Available        bool    `json:"available"`
	CreatedAt        string  `json:"created_at,omitempty"`

	// Joined display fields.
	DestinationName string  `json:"destination_name,omitempty"`
	Country         string  `json:"country,omitempty"`
	AvgRating       float64 `json:"avg_rating"`
	ReviewCount     int     `json:"review_count"`
}

// PackageDetail adds the full review list for the detail endpoint.
type PackageDetail struct {
	Package
	DestinationDescription string   `json:"destination_description,omitempty"`
	Reviews                []Review `json:"reviews"`
}

// PackageFilter holds optional list predicates; nil/empty means no constraint.
type PackageFilter struct {
	Destination string
	MinPrice    *float64
	MaxPrice    *float64
	Available   *bool
}

type PackageInput struct {
	DestinationID    int64   `json:"destination_id" binding:"required"`
	Title            string  `json:"title" binding:"required"`
	Description      string  `json:"description"`
	DurationDays     int     `json:"duration_days"`
	DurationNights   int     `json:"duration_nights"`
	Price            float64 `json:"price" binding:"required"`
	MaxPeople        int     `json:"max_people" binding:"required"`
	IncludedServices string  `json:"included_services"`
	ExcludedServices string  `json:"excluded_services"`
	Itinerary        string  `json:"itinerary"`
	ImageURL         string  `json:"image_url"`
}

// PackageUpdate applies field-by-field; nil pointers leave the stored value unchanged.
type PackageUpdate struct {
	DestinationID    *int64   `json:"destination_id"`
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	DurationDays     *int     `json:"duration_days"`
	DurationNights   *int     `json:"duration_nights"`
	Price            *float64 `json:"price"`
	MaxPeople        *int     `json:"max_people"`
	IncludedServices *string  `json:"included_services"`
	ExcludedServices *string  `json:"excluded_services"`
	Itinerary        *string  `json:"itinerary"`
	ImageURL         *string  `json:"image_url"`
	Available        *bool    `json:"available"`
}

// Empty reports whether the update would touch nothing.
func (u PackageUpdate) Empty() bool {
	return u.DestinationID == nil && u.Title == nil && u.Description == nil &&
		u.DurationDays == nil && u.DurationNights == nil && u.Price == nil &&
		u.MaxPeople == nil && u.IncludedServices == nil && u.ExcludedServices == nil &&
		u.Itinerary == nil && u.ImageURL == nil && u.Available == nil
}
