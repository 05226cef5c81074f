package repositories

import (
	"database/sql"
	"strings"

	"travel-backend/internal/config"
	"travel-backend/internal/domain/models"
)

// PackageRepository wraps DB access for the packages table.
type PackageRepository struct {
	DB *sql.DB
}

func (r PackageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const packageColumns = `
	p.package_id,
	p.destination_id,
	p.title,
	COALESCE(p.description,''),
	p.duration_days,
	p.duration_nights,
	p.price,
	p.max_people,
	COALESCE(p.included_services,''),
	COALESCE(p.excluded_services,''),
	COALESCE(p.itinerary,''),
	COALESCE(p.image_url,''),
	p.available,
	DATE_FORMAT(p.created_at,'%Y-%m-%d %H:%i:%s')`

func scanPackage(scan func(dest ...any) error, p *models.Package) error {
	return scan(
		&p.ID,
		&p.DestinationID,
		&p.Title,
		&p.Description,
		&p.DurationDays,
		&p.DurationNights,
		&p.Price,
		&p.MaxPeople,
		&p.IncludedServices,
		&p.ExcludedServices,
		&p.Itinerary,
		&p.ImageURL,
		&p.Available,
		&p.CreatedAt,
	)
}

// List returns packages with destination display fields and the review
// aggregate. Filters left empty are simply omitted from the predicate.
func (r PackageRepository) List(f models.PackageFilter) ([]models.Package, error) {
	query := `
		SELECT` + packageColumns + `,
			COALESCE(d.name,''),
			COALESCE(d.country,''),
			COALESCE(AVG(r.rating),0) AS avg_rating,
			COUNT(DISTINCT r.review_id) AS review_count
		FROM packages p
		LEFT JOIN destinations d ON p.destination_id = d.destination_id
		LEFT JOIN reviews r ON p.package_id = r.package_id
		WHERE 1=1`
	args := []any{}

	if strings.TrimSpace(f.Destination) != "" {
		query += " AND d.name LIKE ?"
		args = append(args, "%"+strings.TrimSpace(f.Destination)+"%")
	}
	if f.MinPrice != nil {
		query += " AND p.price >= ?"
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query += " AND p.price <= ?"
		args = append(args, *f.MaxPrice)
	}
	if f.Available != nil {
		query += " AND p.available = ?"
		args = append(args, *f.Available)
	}

	query += " GROUP BY p.package_id ORDER BY p.created_at DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Package{}
	for rows.Next() {
		var p models.Package
		if err := scanPackage(func(dest ...any) error {
			dest = append(dest, &p.DestinationName, &p.Country, &p.AvgRating, &p.ReviewCount)
			return rows.Scan(dest...)
		}, &p); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID loads one package with destination details and the review aggregate.
// Reviews themselves are attached by the service.
func (r PackageRepository) GetByID(id int64) (models.PackageDetail, error) {
	var d models.PackageDetail
	err := scanPackage(func(dest ...any) error {
		dest = append(dest, &d.DestinationName, &d.Country, &d.DestinationDescription, &d.AvgRating, &d.ReviewCount)
		return r.db().QueryRow(`
			SELECT`+packageColumns+`,
				COALESCE(d.name,''),
				COALESCE(d.country,''),
				COALESCE(d.description,''),
				COALESCE(AVG(r.rating),0) AS avg_rating,
				COUNT(DISTINCT r.review_id) AS review_count
			FROM packages p
			LEFT JOIN destinations d ON p.destination_id = d.destination_id
			LEFT JOIN reviews r ON p.package_id = r.package_id
			WHERE p.package_id = ?
			GROUP BY p.package_id`, id).Scan(dest...)
	}, &d.Package)
	if err != nil {
		return models.PackageDetail{}, err
	}
	return d, nil
}

// ListAvailableByDestination returns the packages shown on a destination page.
func (r PackageRepository) ListAvailableByDestination(destinationID int64) ([]models.Package, error) {
	rows, err := r.db().Query(`
		SELECT`+packageColumns+`
		FROM packages p
		WHERE p.destination_id = ? AND p.available = 1
		ORDER BY p.created_at DESC`, destinationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Package{}
	for rows.Next() {
		var p models.Package
		if err := scanPackage(rows.Scan, &p); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r PackageRepository) Create(in models.PackageInput) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO packages
			(destination_id, title, description, duration_days, duration_nights,
			price, max_people, included_services, excluded_services, itinerary, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.DestinationID, in.Title, in.Description, in.DurationDays, in.DurationNights,
		in.Price, in.MaxPeople, in.IncludedServices, in.ExcludedServices, in.Itinerary, in.ImageURL,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update applies coalesce semantics: nil fields keep the stored value.
func (r PackageRepository) Update(id int64, u models.PackageUpdate) error {
	_, err := r.db().Exec(`
		UPDATE packages SET
			destination_id = COALESCE(?, destination_id),
			title = COALESCE(?, title),
			description = COALESCE(?, description),
			duration_days = COALESCE(?, duration_days),
			duration_nights = COALESCE(?, duration_nights),
			price = COALESCE(?, price),
			max_people = COALESCE(?, max_people),
			included_services = COALESCE(?, included_services),
			excluded_services = COALESCE(?, excluded_services),
			itinerary = COALESCE(?, itinerary),
			image_url = COALESCE(?, image_url),
			available = COALESCE(?, available)
		WHERE package_id = ?`,
		u.DestinationID, u.Title, u.Description, u.DurationDays, u.DurationNights,
		u.Price, u.MaxPeople, u.IncludedServices, u.ExcludedServices, u.Itinerary,
		u.ImageURL, u.Available, id,
	)
	return err
}

func (r PackageRepository) Delete(id int64) error {
	_, err := r.db().Exec(`DELETE FROM packages WHERE package_id = ?`, id)
	return err
}

func (r PackageRepository) Exists(id int64) (bool, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM packages WHERE package_id = ?`, id).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}
