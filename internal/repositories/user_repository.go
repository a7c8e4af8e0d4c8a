package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"estateBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

// Projections are explicit everywhere; the password column is only read by
// GetUserByEmail for credential checks.
const userColumns = `id, name, email, phone, avatar, agency, role, is_verified, created_at, updated_at`

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (int, error) {
	query := `
		INSERT INTO users (name, email, phone, password, role, is_verified, created_at)
		VALUES (?, ?, ?, ?, ?, FALSE, NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		user.Name, user.Email, user.Phone, user.Password, user.Role,
	)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	var u models.User
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.Avatar, &u.Agency, &u.Role, &u.IsVerified,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetUserByEmail loads the stored password hash for sign-in.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `SELECT ` + userColumns + `, password FROM users WHERE email = ?`

	var u models.User
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.Phone, &u.Avatar, &u.Agency, &u.Role, &u.IsVerified,
		&u.CreatedAt, &u.UpdatedAt, &u.Password,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r *UserRepository) ListUsers(ctx context.Context, limit, offset int) ([]models.User, int, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Phone, &u.Avatar, &u.Agency, &u.Role, &u.IsVerified,
			&u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepository) ListAgents(ctx context.Context) ([]models.Agent, error) {
	query := `
		SELECT id, name, email, phone, avatar, agency
		FROM users
		WHERE role = ?
		ORDER BY name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, models.RoleAgent)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := []models.Agent{}
	for rows.Next() {
		var (
			a     models.Agent
			phone sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &phone, &a.Avatar, &a.Agency); err != nil {
			return nil, err
		}
		a.Phone = phone.String
		agents = append(agents, a)
	}

	return agents, rows.Err()
}

func (r *UserRepository) UpdateUserRole(ctx context.Context, id int, role string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE users SET role = ?, updated_at = NOW() WHERE id = ?`, role, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SaveSession(ctx context.Context, userID int, refreshToken string, expiresAt time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE users SET refresh_token = ?, refresh_expires_at = ? WHERE id = ?`,
		refreshToken, expiresAt, userID,
	)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `SELECT id, role, refresh_token, refresh_expires_at FROM users WHERE refresh_token = ?`

	var s models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&s.UserID, &s.Role, &s.RefreshToken, &s.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (r *UserRepository) GetFCMToken(ctx context.Context, userID int) (string, error) {
	var token sql.NullString
	err := r.DB.QueryRowContext(ctx, `SELECT fcm_token FROM users WHERE id = ?`, userID).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return token.String, nil
}

func (r *UserRepository) SaveFCMToken(ctx context.Context, userID int, token string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE users SET fcm_token = ? WHERE id = ?`, token, userID)
	return err
}
