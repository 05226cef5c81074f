package repositories

import (
	"database/sql"

	"travel-backend/internal/config"
	"travel-backend/internal/domain/models"
)

// BookingRepository wraps DB access for the bookings table. Creation lives in
// BookingService because it spans a transaction with the package row lock.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

const bookingColumns = `
	b.booking_id,
	b.user_id,
	b.package_id,
	DATE_FORMAT(b.booking_date,'%Y-%m-%d'),
	DATE_FORMAT(b.travel_date,'%Y-%m-%d'),
	b.num_people,
	b.total_amount,
	COALESCE(b.special_requests,''),
	b.status,
	b.payment_status,
	DATE_FORMAT(b.created_at,'%Y-%m-%d %H:%i:%s')`

func scanBooking(scan func(dest ...any) error, b *models.Booking) error {
	return scan(
		&b.ID,
		&b.UserID,
		&b.PackageID,
		&b.BookingDate,
		&b.TravelDate,
		&b.NumPeople,
		&b.TotalAmount,
		&b.SpecialRequests,
		&b.Status,
		&b.PaymentStatus,
		&b.CreatedAt,
	)
}

// GetByID loads one booking with customer, package and destination fields.
func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	var b models.Booking
	err := scanBooking(func(dest ...any) error {
		dest = append(dest,
			&b.Username, &b.Email, &b.FullName, &b.Phone,
			&b.PackageTitle, &b.PackageImage, &b.DurationDays, &b.DurationNights,
			&b.DestinationName, &b.Country,
		)
		return r.db().QueryRow(`
			SELECT`+bookingColumns+`,
				u.username, u.email, COALESCE(u.full_name,''), COALESCE(u.phone,''),
				p.title, COALESCE(p.image_url,''), p.duration_days, p.duration_nights,
				d.name, d.country
			FROM bookings b
			JOIN users u ON b.user_id = u.user_id
			JOIN packages p ON b.package_id = p.package_id
			JOIN destinations d ON p.destination_id = d.destination_id
			WHERE b.booking_id = ?`, id).Scan(dest...)
	}, &b)
	if err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

// ListByUser returns the actor's bookings, newest first.
func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT`+bookingColumns+`,
			p.title, COALESCE(p.image_url,''), p.duration_days, p.duration_nights,
			d.name, d.country
		FROM bookings b
		JOIN packages p ON b.package_id = p.package_id
		JOIN destinations d ON p.destination_id = d.destination_id
		WHERE b.user_id = ?
		ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := scanBooking(func(dest ...any) error {
			dest = append(dest,
				&b.PackageTitle, &b.PackageImage, &b.DurationDays, &b.DurationNights,
				&b.DestinationName, &b.Country,
			)
			return rows.Scan(dest...)
		}, &b); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// ListAll returns every booking for admin views, optionally filtered by
// status and/or payment status.
func (r BookingRepository) ListAll(f models.BookingFilter) ([]models.Booking, error) {
	query := `
		SELECT` + bookingColumns + `,
			u.username, u.email, COALESCE(u.full_name,''), COALESCE(u.phone,''),
			p.title,
			d.name
		FROM bookings b
		JOIN users u ON b.user_id = u.user_id
		JOIN packages p ON b.package_id = p.package_id
		JOIN destinations d ON p.destination_id = d.destination_id
		WHERE 1=1`
	args := []any{}

	if f.Status != "" {
		query += " AND b.status = ?"
		args = append(args, f.Status)
	}
	if f.PaymentStatus != "" {
		query += " AND b.payment_status = ?"
		args = append(args, f.PaymentStatus)
	}

	query += " ORDER BY b.created_at DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := scanBooking(func(dest ...any) error {
			dest = append(dest,
				&b.Username, &b.Email, &b.FullName, &b.Phone,
				&b.PackageTitle,
				&b.DestinationName,
			)
			return rows.Scan(dest...)
		}, &b); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// GetOwnerAndStatus is the cheap lookup used by ownership and cancel checks.
func (r BookingRepository) GetOwnerAndStatus(id int64) (int64, string, error) {
	var userID int64
	var status string
	err := r.db().QueryRow(
		`SELECT user_id, status FROM bookings WHERE booking_id = ?`, id,
	).Scan(&userID, &status)
	if err != nil {
		return 0, "", err
	}
	return userID, status, nil
}

// GetOwnerAndPackage backs the review flow, which needs the package snapshot.
func (r BookingRepository) GetOwnerAndPackage(id int64) (int64, int64, error) {
	var userID, packageID int64
	err := r.db().QueryRow(
		`SELECT user_id, package_id FROM bookings WHERE booking_id = ?`, id,
	).Scan(&userID, &packageID)
	if err != nil {
		return 0, 0, err
	}
	return userID, packageID, nil
}

// UpdateStatus applies coalesce semantics: nil fields keep the stored value.
func (r BookingRepository) UpdateStatus(id int64, u models.BookingStatusUpdate) error {
	_, err := r.db().Exec(`
		UPDATE bookings SET
			status = COALESCE(?, status),
			payment_status = COALESCE(?, payment_status)
		WHERE booking_id = ?`,
		u.Status, u.PaymentStatus, id,
	)
	return err
}

func (r BookingRepository) Cancel(id int64) error {
	_, err := r.db().Exec(
		`UPDATE bookings SET status = ? WHERE booking_id = ?`,
		models.BookingCancelled, id,
	)
	return err
}
