package repositories

import (
	"database/sql"

	"travel-backend/internal/config"
	"travel-backend/internal/domain/models"
)

// UserRepository wraps DB access for the users table. The password hash is
// only ever returned by GetCredentials.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// List returns all users without sensitive fields, newest first.
func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.db().Query(`
		SELECT
			user_id,
			username,
			email,
			COALESCE(full_name,''),
			COALESCE(phone,''),
			role,
			DATE_FORMAT(created_at,'%Y-%m-%d %H:%i:%s')
		FROM users
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.FullName, &u.Phone, &u.Role, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT user_id, username, email, COALESCE(full_name,''), COALESCE(phone,''), role
		FROM users
		WHERE user_id = ?`, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.Phone, &u.Role,
	)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetCredentials resolves a login (email or username) to the public user plus
// the stored password hash.
func (r UserRepository) GetCredentials(login string) (models.User, string, error) {
	var u models.User
	var hash string
	err := r.db().QueryRow(`
		SELECT user_id, username, email, COALESCE(full_name,''), COALESCE(phone,''), role, password
		FROM users
		WHERE email = ? OR username = ?`, login, login).Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.Phone, &u.Role, &hash,
	)
	if err != nil {
		return models.User{}, "", err
	}
	return u, hash, nil
}

func (r UserRepository) EmailOrUsernameTaken(email, username string) (bool, error) {
	var n int
	if err := r.db().QueryRow(
		`SELECT COUNT(*) FROM users WHERE email = ? OR username = ?`, email, username,
	).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts a customer account; role is fixed at creation.
func (r UserRepository) Create(username, email, passwordHash, fullName, phone string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (username, email, password, full_name, phone, role)
		VALUES (?, ?, ?, ?, ?, ?)`,
		username, email, passwordHash, fullName, phone, models.RoleCustomer,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateProfile applies coalesce semantics to the self-editable fields.
func (r UserRepository) UpdateProfile(id int64, u models.ProfileUpdate) error {
	_, err := r.db().Exec(`
		UPDATE users SET
			full_name = COALESCE(?, full_name),
			phone = COALESCE(?, phone)
		WHERE user_id = ?`,
		u.FullName, u.Phone, id,
	)
	return err
}
