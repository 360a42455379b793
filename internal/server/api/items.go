package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/models"
)

// CreateItem создаёт товар. price = 0 допустим, category по умолчанию "uncategorized".
//
// @Summary      Create item
// @Description  Creates a new item. name, description and price are required; price may be 0.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request body models.CreateItemRequest true "Item to create"
// @Success      201 {object} models.Item
// @Failure      400 {object} ErrorResponse "Name, description, and price are required"
// @Router       /api/items [post]
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if !h.decodeBody(w, r, "create item", &req) {
		return
	}

	item, err := h.Svc.Items.Create(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, "create item", err)
		return
	}

	WriteJSON(w, http.StatusCreated, item)
}

// ListItems godoc
// @Summary      List items
// @Description  Returns all items, optionally filtered by exact category match.
// @Tags         items
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Success      200 {array} models.Item
// @Router       /api/items [get]
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.Items.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.writeServiceError(w, r, "list items", err)
		return
	}

	WriteJSON(w, http.StatusOK, items)
}

// GetItem godoc
// @Summary      Get item
// @Description  Returns a single item by id.
// @Tags         items
// @Produce      json
// @Param        id   path      integer  true  "Item ID"
// @Success      200 {object} models.Item
// @Failure      404 {object} ErrorResponse "Item not found"
// @Router       /api/items/{id} [get]
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Svc.Items.Get(r.Context(), parseID(r))
	if err != nil {
		h.writeServiceError(w, r, "get item", err)
		return
	}

	WriteJSON(w, http.StatusOK, item)
}

// UpdateItem частично обновляет товар.
//
// @Summary      Update item
// @Description  Updates any of name, description, price, category. price 0 is a valid value.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id       path      integer                   true  "Item ID"
// @Param        request  body      models.UpdateItemRequest  true  "Fields to update"
// @Success      200 {object} models.Item
// @Failure      400 {object} ErrorResponse "At least one field must be provided for update"
// @Failure      404 {object} ErrorResponse "Item not found"
// @Router       /api/items/{id} [put]
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateItemRequest
	if !h.decodeBody(w, r, "update item", &req) {
		return
	}

	item, err := h.Svc.Items.Update(r.Context(), parseID(r), req)
	if err != nil {
		h.writeServiceError(w, r, "update item", err)
		return
	}

	WriteJSON(w, http.StatusOK, item)
}

// DeleteItem godoc
// @Summary      Delete item
// @Description  Deletes an item by id.
// @Tags         items
// @Produce      json
// @Param        id   path      integer  true  "Item ID"
// @Success      204 "No Content"
// @Failure      404 {object} ErrorResponse "Item not found"
// @Router       /api/items/{id} [delete]
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Items.Delete(r.Context(), parseID(r)); err != nil {
		h.writeServiceError(w, r, "delete item", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
