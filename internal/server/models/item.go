package models

// Item — товар.
//
// Price может быть 0, это валидное значение.
// Category по умолчанию "uncategorized".
type Item struct {
	ID          int     `json:"id" example:"1"`
	Name        string  `json:"name" example:"Go book"`
	Description string  `json:"description" example:"The Go Programming Language"`
	Price       float64 `json:"price" example:"39.99"`
	Category    string  `json:"category" example:"books"`
	CreatedAt   string  `json:"createdAt" example:"2024-01-01T00:00:00.000Z"`
}

// CreateItemRequest тело POST /api/items.
// Price — указатель, чтобы отличать "не передан" от 0.
type CreateItemRequest struct {
	Name        string   `json:"name" example:"Go book"`
	Description string   `json:"description" example:"The Go Programming Language"`
	Price       *float64 `json:"price" example:"39.99"`
	Category    string   `json:"category,omitempty" example:"books"`
}

// UpdateItemRequest тело PUT /api/items/{id}.
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" example:"0"`
	Category    *string  `json:"category,omitempty"`
}

// ItemPatch частичное обновление товара на уровне хранилища.
type ItemPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
}

func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Category == nil
}

func (p ItemPatch) Apply(it Item) Item {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	return it
}

// ItemFilter фильтр списка товаров. Пустой Category — без фильтра.
type ItemFilter struct {
	Category string
}

func (f ItemFilter) Match(it Item) bool {
	return f.Category == "" || it.Category == f.Category
}
