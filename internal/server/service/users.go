package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-users-items-api/internal/shared/errors"
)

type UsersService struct {
	repo UsersRepo
}

func NewUsersService(repo UsersRepo) *UsersService {
	return &UsersService{repo: repo}
}

// Create создаёт пользователя. name и email обязательны,
// при ошибке валидации счётчик id не трогается.
func (s *UsersService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if req.Name == "" || req.Email == "" {
		return models.User{}, serr.ErrUserFieldsRequired
	}
	return s.repo.Create(ctx, req.Name, req.Email)
}

func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *UsersService) Get(ctx context.Context, id int) (models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update частично обновляет пользователя.
//
// Несуществующий id даёт ErrUserNotFound даже при пустом теле,
// пустое тело у существующего пользователя — ErrUserNoUpdateFields.
func (s *UsersService) Update(ctx context.Context, id int, req models.UpdateUserRequest) (models.User, error) {
	patch := models.UserPatch{
		Name:  nonEmpty(req.Name),
		Email: nonEmpty(req.Email),
	}
	if patch.Empty() {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return models.User{}, err
		}
		return models.User{}, serr.ErrUserNoUpdateFields
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *UsersService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
