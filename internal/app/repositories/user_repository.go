package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusspace/backend/internal/app/models"
	"github.com/campusspace/backend/internal/pkg/apperrors"
	"github.com/campusspace/backend/internal/pkg/dberrors"
)

// UsersEmailConstraint is the unique constraint guarding users.email.
const UsersEmailConstraint = "users_email_key"

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	SetAdmin(ctx context.Context, id int64, isAdmin bool) error
	Delete(ctx context.Context, id int64) error
	AdminExists(ctx context.Context) (bool, error)
}

// UserRepository implements IUserRepository on a pgx pool
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and fills in its generated ID.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (full_name, email, password, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		user.FullName, user.Email, user.Password, user.IsAdmin).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, UsersEmailConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, full_name, email, password, is_admin, created_at, updated_at
		FROM users
		WHERE id = $1`,
		id).Scan(
		&user.ID, &user.FullName, &user.Email, &user.Password,
		&user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, full_name, email, password, is_admin, created_at, updated_at
		FROM users
		WHERE email = $1`,
		email).Scan(
		&user.ID, &user.FullName, &user.Email, &user.Password,
		&user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// GetAll returns every user. The password column is excluded at the query
// level, so hashes never travel through this path.
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, full_name, email, is_admin, created_at, updated_at
		FROM users
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID, &user.FullName, &user.Email,
			&user.IsAdmin, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// SetAdmin persists the admin flag without touching the rest of the row.
func (r *UserRepository) SetAdmin(ctx context.Context, id int64, isAdmin bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET is_admin = $1, updated_at = NOW() WHERE id = $2`,
		isAdmin, id)
	if err != nil {
		return fmt.Errorf("error updating admin flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user by ID. Deleting a nonexistent ID is not an error.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}

// AdminExists reports whether at least one admin account exists.
func (r *UserRepository) AdminExists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE is_admin)`).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking admins: %w", err)
	}

	return exists, nil
}
