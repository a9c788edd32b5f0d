package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"
	"github.com/babludoman333/rail-easy-seats/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByLogin resolves email-or-username to a user plus password hash.
func (r UserRepository) GetByLogin(login string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, full_name, username, email, phone, password_hash, role
		FROM users
		WHERE email = ? OR username = ?
	`, login, login).Scan(&u.ID, &u.FullName, &u.Username, &u.Email, &u.Phone, &hash, &u.Role)
	return u, hash, err
}

func (r UserRepository) Exists(email, username string) (bool, error) {
	var count int
	err := r.db().QueryRow(`
		SELECT COUNT(*)
		FROM users
		WHERE email = ? OR username = ?
	`, email, username).Scan(&count)
	return count > 0, err
}

func (r UserRepository) Insert(u models.User, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (full_name, username, email, phone, password_hash, role)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		strings.TrimSpace(u.FullName),
		strings.TrimSpace(u.Username),
		strings.TrimSpace(u.Email),
		strings.TrimSpace(u.Phone),
		passwordHash,
		u.Role,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
