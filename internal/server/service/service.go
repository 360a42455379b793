// Package service содержит бизнес-логику ресурсов users и items:
// валидацию входных данных и вызов ровно одной операции хранилища.
//
// Сервис не знает о HTTP, ошибки возвращаются доменными (serr.APIError)
// и маппятся на статусы в api слое.
package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/models"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// UsersRepo хранилище пользователей.
type UsersRepo interface {
	Create(ctx context.Context, name, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int) (models.User, error)
	Update(ctx context.Context, id int, patch models.UserPatch) (models.User, error)
	Delete(ctx context.Context, id int) error
}

// ItemsRepo хранилище товаров.
type ItemsRepo interface {
	Create(ctx context.Context, name, description string, price float64, category string) (models.Item, error)
	List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error)
	GetByID(ctx context.Context, id int) (models.Item, error)
	Update(ctx context.Context, id int, patch models.ItemPatch) (models.Item, error)
	Delete(ctx context.Context, id int) error
}

// Repositories набор хранилищ приложения.
type Repositories struct {
	Users UsersRepo
	Items ItemsRepo
}

// Services набор сервисов приложения, передаётся в api.Handler.
type Services struct {
	Users *UsersService
	Items *ItemsService
}

func NewServices(repos Repositories) *Services {
	return &Services{
		Users: NewUsersService(repos.Users),
		Items: NewItemsService(repos.Items),
	}
}

// nonEmpty пустая строка считается непереданным полем.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
