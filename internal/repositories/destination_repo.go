package repositories

import (
	"database/sql"

	"travel-backend/internal/config"
	"travel-backend/internal/domain/models"
)

// DestinationRepository wraps DB access for the destinations table.
type DestinationRepository struct {
	DB *sql.DB
}

func (r DestinationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// List returns all destinations with a package count, popular ones first.
func (r DestinationRepository) List() ([]models.Destination, error) {
	rows, err := r.db().Query(`
		SELECT
			d.destination_id,
			d.name,
			d.country,
			COALESCE(d.description,''),
			COALESCE(d.image_url,''),
			d.popular,
			DATE_FORMAT(d.created_at,'%Y-%m-%d %H:%i:%s'),
			COUNT(p.package_id) AS package_count
		FROM destinations d
		LEFT JOIN packages p ON d.destination_id = p.destination_id
		GROUP BY d.destination_id
		ORDER BY d.popular DESC, d.name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Destination{}
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(
			&d.ID, &d.Name, &d.Country, &d.Description, &d.ImageURL,
			&d.Popular, &d.CreatedAt, &d.PackageCount,
		); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r DestinationRepository) GetByID(id int64) (models.Destination, error) {
	var d models.Destination
	err := r.db().QueryRow(`
		SELECT
			destination_id,
			name,
			country,
			COALESCE(description,''),
			COALESCE(image_url,''),
			popular,
			DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s')
		FROM destinations
		WHERE destination_id = ?`, id).Scan(
		&d.ID, &d.Name, &d.Country, &d.Description, &d.ImageURL, &d.Popular, &d.CreatedAt,
	)
	if err != nil {
		return models.Destination{}, err
	}
	return d, nil
}

func (r DestinationRepository) Create(in models.DestinationInput) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO destinations (name, country, description, image_url, popular)
		VALUES (?, ?, ?, ?, ?)`,
		in.Name, in.Country, in.Description, in.ImageURL, in.Popular,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
