package repository

import (
	"context"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-users-items-api/internal/shared/errors"
)

type ItemsRepository struct {
	store *MemoryStore[models.Item]
	opts  options
}

func NewItemsRepository(opts ...Option) *ItemsRepository {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ItemsRepository{
		store: NewMemoryStore[models.Item](),
		opts:  o,
	}
}

// Create сохраняет товар. Пустая category заменяется категорией по умолчанию.
func (r *ItemsRepository) Create(ctx context.Context, name, description string, price float64, category string) (models.Item, error) {
	if category == "" {
		category = r.opts.defaultCategory
	}
	createdAt := r.opts.timestamp()
	return r.store.Insert(func(id int) models.Item {
		return models.Item{
			ID:          id,
			Name:        name,
			Description: description,
			Price:       price,
			Category:    category,
			CreatedAt:   createdAt,
		}
	}), nil
}

func (r *ItemsRepository) List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	return r.store.List(filter.Match), nil
}

func (r *ItemsRepository) GetByID(ctx context.Context, id int) (models.Item, error) {
	it, ok := r.store.Get(id)
	if !ok {
		return models.Item{}, serr.ErrItemNotFound
	}
	return it, nil
}

func (r *ItemsRepository) Update(ctx context.Context, id int, patch models.ItemPatch) (models.Item, error) {
	it, ok := r.store.Update(id, patch.Apply)
	if !ok {
		return models.Item{}, serr.ErrItemNotFound
	}
	return it, nil
}

func (r *ItemsRepository) Delete(ctx context.Context, id int) error {
	if !r.store.Delete(id) {
		return serr.ErrItemNotFound
	}
	return nil
}
