package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-users-items-api/internal/shared/errors"
)

type ItemsService struct {
	repo ItemsRepo
}

func NewItemsService(repo ItemsRepo) *ItemsService {
	return &ItemsService{repo: repo}
}

// Create создаёт товар. name, description и price обязательны,
// price = 0 допустим, отсутствие price — нет.
func (s *ItemsService) Create(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	if req.Name == "" || req.Description == "" || req.Price == nil {
		return models.Item{}, serr.ErrItemFieldsRequired
	}
	return s.repo.Create(ctx, req.Name, req.Description, *req.Price, req.Category)
}

// List возвращает товары, category фильтрует по точному совпадению.
func (s *ItemsService) List(ctx context.Context, category string) ([]models.Item, error) {
	return s.repo.List(ctx, models.ItemFilter{Category: category})
}

func (s *ItemsService) Get(ctx context.Context, id int) (models.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// Update частично обновляет товар. Порядок проверок как у users:
// сначала 404, потом "нет полей".
func (s *ItemsService) Update(ctx context.Context, id int, req models.UpdateItemRequest) (models.Item, error) {
	patch := models.ItemPatch{
		Name:        nonEmpty(req.Name),
		Description: nonEmpty(req.Description),
		Price:       req.Price,
		Category:    nonEmpty(req.Category),
	}
	if patch.Empty() {
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return models.Item{}, err
		}
		return models.Item{}, serr.ErrItemNoUpdateFields
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *ItemsService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
