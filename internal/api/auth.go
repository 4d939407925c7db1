// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"net/http"

	"github.com/acheiapp/achei/internal/model"
)

// loginRequest is the credential payload both login endpoints accept.
// The username carries the CPF for citizens and the matrícula for officers.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the success body of the login endpoints.
type loginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// RegisterRequest is the citizen sign-up payload.
type RegisterRequest struct {
	Name     string        `json:"nome"`
	Document string        `json:"documento"`
	Email    string        `json:"email"`
	Password string        `json:"senha"`
	Address  model.Address `json:"endereco"`
}

// LoginCitizen authenticates a citizen by CPF. On success the returned
// session carries the bearer token and the profile in one value; persisting
// it is the caller's decision (the TUI shows a success banner first).
func (c *Client) LoginCitizen(ctx context.Context, cpf, password string) (model.Session, error) {
	return c.login(ctx, "/auth/cidadao/login", cpf, password, model.UserCitizen)
}

// LoginOfficer authenticates a police officer by matrícula.
func (c *Client) LoginOfficer(ctx context.Context, matricula, password string) (model.Session, error) {
	return c.login(ctx, "/auth/policial/login", matricula, password, model.UserOfficer)
}

func (c *Client) login(ctx context.Context, path, username, password string, typ model.UserType) (model.Session, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, path, loginRequest{Username: username, Password: password}, &resp, false)
	if err != nil {
		return model.Session{}, err
	}
	if resp.User.Type == "" {
		// older deployments omit the type; the chosen endpoint implies it
		resp.User.Type = typ
	}
	return model.Session{Token: resp.Token, User: resp.User}, nil
}

// Register creates a citizen account. The service logs the new account in
// implicitly: the response is the same token+user pair as login.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (model.Session, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/cidadao/registro", req, &resp, false)
	if err != nil {
		return model.Session{}, err
	}
	if resp.User.Type == "" {
		resp.User.Type = model.UserCitizen
	}
	return model.Session{Token: resp.Token, User: resp.User}, nil
}
