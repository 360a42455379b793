package api

import (
	"net/url"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/models"
)

// ListItems GET /api/items, category пустая — без фильтра.
func (c *Client) ListItems(category string) ([]models.Item, error) {
	path := "/api/items"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var resp []models.Item
	err := c.GetJSON(path, &resp)
	return resp, err
}

// GetItem GET /api/items/{id}
func (c *Client) GetItem(id string) (models.Item, error) {
	var resp models.Item
	err := c.GetJSON(itemPath(id), &resp)
	return resp, err
}

// CreateItem POST /api/items
func (c *Client) CreateItem(req models.CreateItemRequest) (models.Item, error) {
	var resp models.Item
	err := c.PostJSON("/api/items", req, &resp)
	return resp, err
}

// UpdateItem PUT /api/items/{id}
func (c *Client) UpdateItem(id string, req models.UpdateItemRequest) (models.Item, error) {
	var resp models.Item
	err := c.PutJSON(itemPath(id), req, &resp)
	return resp, err
}

// DeleteItem DELETE /api/items/{id}
func (c *Client) DeleteItem(id string) error {
	return c.DeleteJSON(itemPath(id))
}

// itemPath путь до записи, id экранируется: "1/2" не должен попасть в другой маршрут.
func itemPath(id string) string {
	return "/api/items/" + url.PathEscape(id)
}
