package repositories

import (
	"database/sql"

	"travel-backend/internal/config"
	"travel-backend/internal/domain/models"
)

// ReviewRepository wraps DB access for the reviews table.
type ReviewRepository struct {
	DB *sql.DB
}

func (r ReviewRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// ListByPackage returns a package's reviews with reviewer identity, newest first.
func (r ReviewRepository) ListByPackage(packageID int64) ([]models.Review, error) {
	rows, err := r.db().Query(`
		SELECT
			r.review_id,
			r.user_id,
			r.package_id,
			r.booking_id,
			r.rating,
			COALESCE(r.comment,''),
			DATE_FORMAT(r.created_at,'%Y-%m-%d %H:%i:%s'),
			u.username,
			COALESCE(u.full_name,'')
		FROM reviews r
		JOIN users u ON r.user_id = u.user_id
		WHERE r.package_id = ?
		ORDER BY r.created_at DESC`, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Review{}
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(
			&rv.ID, &rv.UserID, &rv.PackageID, &rv.BookingID, &rv.Rating,
			&rv.Comment, &rv.CreatedAt, &rv.Username, &rv.FullName,
		); err != nil {
			return nil, err
		}
		list = append(list, rv)
	}
	return list, rows.Err()
}

// ExistsForBooking enforces the one-review-per-booking rule.
func (r ReviewRepository) ExistsForBooking(bookingID int64) (bool, error) {
	var n int
	if err := r.db().QueryRow(
		`SELECT COUNT(*) FROM reviews WHERE booking_id = ?`, bookingID,
	).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r ReviewRepository) Create(userID, packageID, bookingID int64, rating int, comment string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO reviews (user_id, package_id, booking_id, rating, comment)
		VALUES (?, ?, ?, ?, ?)`,
		userID, packageID, bookingID, rating, comment,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
