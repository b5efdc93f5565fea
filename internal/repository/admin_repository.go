package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"brandhub/api/internal/models"
)

var ErrAdminNotFound = errors.New("admin not found")

const adminColumns = `id, username, email, password_hash, role, is_active,
	last_login, login_attempts, lock_until, created_at, updated_at`

type AdminRepository struct {
	pool *pgxpool.Pool
}

func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

func (r *AdminRepository) Create(ctx context.Context, admin models.Admin) error {
	const query = `
		INSERT INTO admins (
			id, username, email, password_hash, role, is_active,
			login_attempts, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			0, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		admin.ID,
		admin.Username,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
		admin.IsActive,
	)
	return err
}

// FindActiveByEmail only matches active accounts; a deactivated account is
// indistinguishable from a missing one at login time.
func (r *AdminRepository) FindActiveByEmail(ctx context.Context, email string) (models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1 AND is_active`

	row := r.pool.QueryRow(ctx, query, email)
	return scanAdmin(row)
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	return scanAdmin(row)
}

func (r *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []models.Admin
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	return admins, rows.Err()
}

// RecordLoginFailure persists a lockout transition in one statement. Losing a
// concurrent write here is acceptable: the counter is advisory and lock_until
// is the binding control.
func (r *AdminRepository) RecordLoginFailure(ctx context.Context, id string, attempts int, lockUntil *time.Time) error {
	const query = `
		UPDATE admins
		SET login_attempts = $2, lock_until = $3, updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, attempts, lockUntil)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepository) RecordLoginSuccess(ctx context.Context, id string, lastLogin time.Time) error {
	const query = `
		UPDATE admins
		SET login_attempts = 0, lock_until = NULL, last_login = $2, updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, lastLogin)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepository) UpdatePassword(ctx context.Context, id string, passwordHash []byte) error {
	const query = `UPDATE admins SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepository) SetActive(ctx context.Context, id string, active bool) error {
	const query = `UPDATE admins SET is_active = $2, updated_at = NOW() WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, active)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM admins WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *AdminRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM admins WHERE username = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *AdminRepository) CountActive(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM admins WHERE is_active`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanAdmin(row pgx.Row) (models.Admin, error) {
	var admin models.Admin
	if err := row.Scan(
		&admin.ID,
		&admin.Username,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Role,
		&admin.IsActive,
		&admin.LastLogin,
		&admin.LoginAttempts,
		&admin.LockUntil,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Admin{}, ErrAdminNotFound
		}
		return models.Admin{}, err
	}
	return admin, nil
}
