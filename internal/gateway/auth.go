package gateway

import (
	"auction-client/internal/models"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Login exchanges credentials for an identity and a bearer token
func (c *Client) Login(ctx context.Context, email, password string) (models.Identity, string, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	var payload loginData
	err := c.do(ctx, request{
		op:          "login",
		method:      http.MethodPost,
		path:        "auth/login",
		body:        []byte(form.Encode()),
		contentType: formContentType,
		anonymous:   true,
		decode: func(data json.RawMessage) error {
			return c.decodeInto(data, &payload)
		},
	})
	if err != nil {
		return models.Identity{}, "", err
	}
	return payload.User.toModel(), payload.Token, nil
}

// Register creates an account. It does not sign the user in.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	form := url.Values{}
	form.Set("name", name)
	form.Set("email", email)
	form.Set("password", password)

	return c.do(ctx, request{
		op:          "register",
		method:      http.MethodPost,
		path:        "auth/register",
		body:        []byte(form.Encode()),
		contentType: formContentType,
		anonymous:   true,
	})
}

// Me returns the identity that token belongs to
func (c *Client) Me(ctx context.Context, token string) (models.Identity, error) {
	var payload meData
	err := c.do(ctx, request{
		op:     "me",
		method: http.MethodGet,
		path:   "auth/me",
		token:  token,
		decode: func(data json.RawMessage) error {
			return c.decodeInto(data, &payload)
		},
	})
	if err != nil {
		return models.Identity{}, err
	}
	return payload.User.toModel(), nil
}
