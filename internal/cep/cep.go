// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

// package cep looks up Brazilian postal codes against a ViaCEP-compatible
// service to auto-fill address forms. The lookup needs no authentication.
package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/acheiapp/achei/internal/model"
)

// ErrNotFound is returned when the service flags the code as unknown
// (body {"erro": true}). Callers leave their form fields untouched.
var ErrNotFound = errors.New("cep: not found")

// ErrInvalidCEP is returned for input that is not an 8-digit code. No
// network call is made.
var ErrInvalidCEP = errors.New("cep: invalid code")

var cepDigits = regexp.MustCompile(`^[0-9]{8}$`)

// Client queries a ViaCEP-compatible endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// Config carries the lookup settings.
type Config struct {
	// BaseURL of the service, e.g. https://viacep.com.br.
	BaseURL string
	// Timeout bounds each request. Zero means 10s.
	Timeout time.Duration
	// HTTPClient overrides the transport; used by tests.
	HTTPClient *http.Client
}

// New builds a lookup client.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{baseURL: strings.TrimRight(cfg.BaseURL, "/"), http: hc}
}

// Normalize strips the formatting from a CEP ("01310-100" -> "01310100")
// and reports whether the result is a valid 8-digit code.
func Normalize(raw string) (string, bool) {
	s := strings.NewReplacer("-", "", ".", "", " ", "").Replace(raw)
	return s, cepDigits.MatchString(s)
}

// viaCEPResponse is the wire shape of a lookup. The service answers 200 with
// {"erro": true} for unknown codes instead of a 404.
type viaCEPResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	Erro         bool   `json:"erro"`
}

// Lookup resolves a postal code to an address. Formatting in the input is
// tolerated; an invalid code fails locally with ErrInvalidCEP.
func (c *Client) Lookup(ctx context.Context, raw string) (model.Address, error) {
	code, ok := Normalize(raw)
	if !ok {
		return model.Address{}, ErrInvalidCEP
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.Address{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return model.Address{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Address{}, fmt.Errorf("cep: unexpected status %d", resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.Address{}, fmt.Errorf("cep: decode response: %w", err)
	}
	if body.Erro {
		return model.Address{}, ErrNotFound
	}

	return model.Address{
		CEP:          body.CEP,
		Street:       body.Street,
		Complement:   body.Complement,
		Neighborhood: body.Neighborhood,
		City:         body.City,
		State:        body.State,
	}, nil
}
