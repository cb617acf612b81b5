package backend

import (
	"context"
	"net/http"
)

// User is the backend's user object. It is held in the session alongside the
// token and shown by the view layer.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Profession string `json:"profession"`
	CreatedAt  string `json:"created_at,omitempty"`
}

type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// Login exchanges credentials for a token and user object.
func (c *Client) Login(ctx context.Context, email, password string) (string, User, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/login", "", body, &resp); err != nil {
		return "", User{}, err
	}
	return resp.Token, resp.User, nil
}

// Signup registers a new account and returns its token and user object.
func (c *Client) Signup(ctx context.Context, name, email, password, profession string) (string, User, error) {
	var resp authResponse
	body := map[string]string{
		"name":       name,
		"email":      email,
		"password":   password,
		"profession": profession,
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/signup", "", body, &resp); err != nil {
		return "", User{}, err
	}
	return resp.Token, resp.User, nil
}

// Verify checks a stored token against the backend and returns the user it
// belongs to.
func (c *Client) Verify(ctx context.Context, token string) (User, error) {
	var resp struct {
		Message string `json:"message"`
		User    User   `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/verify", token, nil, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}
