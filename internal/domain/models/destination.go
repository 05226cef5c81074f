package models

type Destination struct {
	ID          int64  `json:"destination_id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Popular     bool   `json:"popular"`
	CreatedAt   string `json:"created_at,omitempty"`

	// PackageCount is filled by the list query only.
	PackageCount int `json:"package_count,omitempty"`
}

// DestinationDetail bundles a destination with its currently-available packages.
type DestinationDetail struct {
	Destination
	Packages []Package `json:"packages"`
}

type DestinationInput struct {
	Name        string `json:"name" binding:"required"`
	Country     string `json:"country" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Popular     bool   `json:"popular"`
}
