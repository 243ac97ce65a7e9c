//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"bloodlink/domain"
	apperrors "bloodlink/errors"
)

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	UpdateLocation(ctx context.Context, id string, loc domain.Location) error
}

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) IUserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	var lat, lng *float64
	err := r.store.pool.QueryRow(ctx, `
		SELECT id, name, role, blood_type, verified, latitude, longitude, updated_at
		FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.Role, &u.BloodType, &u.Verified, &lat, &lng, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	if lat != nil && lng != nil {
		u.Location = &domain.Location{Latitude: *lat, Longitude: *lng}
	}
	return u, nil
}

func (r *UserRepository) UpdateLocation(ctx context.Context, id string, loc domain.Location) error {
	tag, err := r.store.pool.Exec(ctx, `
		UPDATE users SET latitude = $2, longitude = $3, updated_at = $4 WHERE id = $1
	`, id, loc.Latitude, loc.Longitude, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
