// Package models содержит модели ресурсов users и items
// и тела запросов к ним.
package models

// User — пользователь.
//
// ID выдаётся хранилищем последовательно начиная с 1 и не переиспользуется.
// CreatedAt — ISO-8601 в UTC с миллисекундами, проставляется один раз.
type User struct {
	ID        int    `json:"id" example:"1"`
	Name      string `json:"name" example:"Ann"`
	Email     string `json:"email" example:"ann@x.com"`
	CreatedAt string `json:"createdAt" example:"2024-01-01T00:00:00.000Z"`
}

// CreateUserRequest тело POST /api/users. Оба поля обязательны.
type CreateUserRequest struct {
	Name  string `json:"name" example:"Ann"`
	Email string `json:"email" example:"ann@x.com"`
}

// UpdateUserRequest тело PUT /api/users/{id}.
// Передаются только изменяемые поля, пустая строка считается непереданной.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" example:"Anna"`
	Email *string `json:"email,omitempty" example:"anna@x.com"`
}

// UserPatch частичное обновление пользователя на уровне хранилища.
// nil — поле не меняется.
type UserPatch struct {
	Name  *string
	Email *string
}

// Empty true, если ни одно поле не задано.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil
}

// Apply возвращает копию u с применёнными полями патча.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}
