package repository

import (
	"context"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-users-items-api/internal/shared/errors"
)

type UsersRepository struct {
	store *MemoryStore[models.User]
	opts  options
}

func NewUsersRepository(opts ...Option) *UsersRepository {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &UsersRepository{
		store: NewMemoryStore[models.User](),
		opts:  o,
	}
}

func (r *UsersRepository) Create(ctx context.Context, name, email string) (models.User, error) {
	createdAt := r.opts.timestamp()
	return r.store.Insert(func(id int) models.User {
		return models.User{
			ID:        id,
			Name:      name,
			Email:     email,
			CreatedAt: createdAt,
		}
	}), nil
}

func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	return r.store.List(nil), nil
}

func (r *UsersRepository) GetByID(ctx context.Context, id int) (models.User, error) {
	u, ok := r.store.Get(id)
	if !ok {
		return models.User{}, serr.ErrUserNotFound
	}
	return u, nil
}

func (r *UsersRepository) Update(ctx context.Context, id int, patch models.UserPatch) (models.User, error) {
	u, ok := r.store.Update(id, patch.Apply)
	if !ok {
		return models.User{}, serr.ErrUserNotFound
	}
	return u, nil
}

func (r *UsersRepository) Delete(ctx context.Context, id int) error {
	if !r.store.Delete(id) {
		return serr.ErrUserNotFound
	}
	return nil
}
