package auth

import (
	"context"
	"errors"

	"bloodlink/domain"
	apperrors "bloodlink/errors"
	"bloodlink/repositories"
)

// Identity is the resolved principal behind a credential.
type Identity struct {
	UserID string
	Name   string
	Role   domain.Role
}

// Resolver validates a bearer credential and maps it to a stable user
// identity. A structurally valid token for a revoked or deleted account
// still fails: the identity is confirmed against the store on every call.
type Resolver struct {
	codec Codec
	users repositories.IUserRepository
}

func NewResolver(codec Codec, users repositories.IUserRepository) Resolver {
	return Resolver{codec: codec, users: users}
}

func (r Resolver) Authenticate(ctx context.Context, credential string) (Identity, error) {
	if credential == "" {
		return Identity{}, apperrors.ErrMissingCredential
	}

	claims, err := r.codec.Validate(credential)
	if err != nil {
		return Identity{}, err
	}

	user, err := r.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return Identity{}, apperrors.ErrUnknownIdentity
		}
		return Identity{}, err
	}

	return Identity{UserID: user.ID, Name: user.Name, Role: user.Role}, nil
}
