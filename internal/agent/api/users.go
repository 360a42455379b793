package api

import (
	"net/url"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/server/models"
)

// ListUsers GET /api/users
func (c *Client) ListUsers() ([]models.User, error) {
	var resp []models.User
	err := c.GetJSON("/api/users", &resp)
	return resp, err
}

// GetUser GET /api/users/{id}
func (c *Client) GetUser(id string) (models.User, error) {
	var resp models.User
	err := c.GetJSON(userPath(id), &resp)
	return resp, err
}

// CreateUser POST /api/users
func (c *Client) CreateUser(req models.CreateUserRequest) (models.User, error) {
	var resp models.User
	err := c.PostJSON("/api/users", req, &resp)
	return resp, err
}

// UpdateUser PUT /api/users/{id}, в теле только заданные поля.
func (c *Client) UpdateUser(id string, req models.UpdateUserRequest) (models.User, error) {
	var resp models.User
	err := c.PutJSON(userPath(id), req, &resp)
	return resp, err
}

// DeleteUser DELETE /api/users/{id}
func (c *Client) DeleteUser(id string) error {
	return c.DeleteJSON(userPath(id))
}

// userPath путь до записи, id экранируется: "1/2" не должен попасть в другой маршрут.
func userPath(id string) string {
	return "/api/users/" + url.PathEscape(id)
}
