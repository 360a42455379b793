package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/models"
)

// CreateUser создаёт пользователя.
//
// Ответы:
//   - 201 Created: пользователь создан;
//   - 400 Bad Request: не передан name или email.
//
// @Summary      Create user
// @Description  Creates a new user. Both name and email are required.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body models.CreateUserRequest true "User to create"
// @Success      201 {object} models.User
// @Failure      400 {object} ErrorResponse "Name and email are required"
// @Router       /api/users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !h.decodeBody(w, r, "create user", &req) {
		return
	}

	user, err := h.Svc.Users.Create(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, "create user", err)
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}

// ListUsers godoc
// @Summary      List users
// @Description  Returns all users in creation order.
// @Tags         users
// @Produce      json
// @Success      200 {array} models.User
// @Router       /api/users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.Users.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "list users", err)
		return
	}

	WriteJSON(w, http.StatusOK, users)
}

// GetUser возвращает пользователя по id.
// Нечисловой id не ошибка формата, а просто отсутствующий пользователь (404).
//
// @Summary      Get user
// @Description  Returns a single user by id.
// @Tags         users
// @Produce      json
// @Param        id   path      integer  true  "User ID"
// @Success      200 {object} models.User
// @Failure      404 {object} ErrorResponse "User not found"
// @Router       /api/users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Svc.Users.Get(r.Context(), parseID(r))
	if err != nil {
		h.writeServiceError(w, r, "get user", err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// UpdateUser частично обновляет пользователя.
//
// Ответы:
//   - 200 OK: обновлённый пользователь;
//   - 400 Bad Request: не передано ни одного поля;
//   - 404 Not Found: пользователя нет (проверяется раньше 400).
//
// @Summary      Update user
// @Description  Updates name and/or email. Omitted or empty fields keep their value.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      integer                   true  "User ID"
// @Param        request  body      models.UpdateUserRequest  true  "Fields to update"
// @Success      200 {object} models.User
// @Failure      400 {object} ErrorResponse "At least one field (name or email) must be provided"
// @Failure      404 {object} ErrorResponse "User not found"
// @Router       /api/users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if !h.decodeBody(w, r, "update user", &req) {
		return
	}

	user, err := h.Svc.Users.Update(r.Context(), parseID(r), req)
	if err != nil {
		h.writeServiceError(w, r, "update user", err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// DeleteUser удаляет пользователя, при успехе 204 без тела.
//
// @Summary      Delete user
// @Description  Deletes a user by id.
// @Tags         users
// @Produce      json
// @Param        id   path      integer  true  "User ID"
// @Success      204 "No Content"
// @Failure      404 {object} ErrorResponse "User not found"
// @Router       /api/users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Users.Delete(r.Context(), parseID(r)); err != nil {
		h.writeServiceError(w, r, "delete user", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
