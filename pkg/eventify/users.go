package eventify

import (
	"context"
	"net/http"

	"github.com/eventifyseu/eventify-web/pkg/model"
)

// NewUser carries the fields for a super-admin-created account.
type NewUser struct {
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

// ListUsers returns all accounts. The collection arrives nested under
// data.users.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	const op = "users.list"

	env, err := c.get(ctx, op, "/api/users/")
	if err != nil {
		return nil, err
	}

	payload, err := decodeData[struct {
		Users []model.User `json:"users"`
	}](op, env)
	if err != nil {
		return nil, err
	}
	if payload.Users == nil {
		return []model.User{}, nil
	}
	return payload.Users, nil
}

// CreateUser creates an account with an explicit role.
func (c *Client) CreateUser(ctx context.Context, u NewUser) error {
	const op = "users.create"

	_, _, err := c.sendJSON(ctx, op, http.MethodPost, "/api/users/create-user", u)
	return err
}

// UpdateUserRole changes an account's role.
func (c *Client) UpdateUserRole(ctx context.Context, userID string, role model.Role) error {
	const op = "users.updateRole"

	body := map[string]any{"userId": userID, "role": role}
	_, _, err := c.sendJSON(ctx, op, http.MethodPatch, "/api/users/"+userID+"/role", body)
	return err
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	const op = "users.delete"

	_, _, err := c.send(ctx, op, http.MethodDelete, "/api/users/delete/"+userID, "", nil)
	return err
}
