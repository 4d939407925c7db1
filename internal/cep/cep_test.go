// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package cep_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acheiapp/achei/internal/cep"
	"github.com/acheiapp/achei/internal/model"
)

func TestLookup_KnownCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/01310100/json/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"cep": "01310-100",
			"logradouro": "Avenida Paulista",
			"complemento": "de 612 a 1510 - lado par",
			"bairro": "Bela Vista",
			"localidade": "São Paulo",
			"uf": "SP"
		}`))
	}))
	defer srv.Close()

	c := cep.New(cep.Config{BaseURL: srv.URL})
	addr, err := c.Lookup(context.Background(), "01310-100")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if addr.Street != "Avenida Paulista" {
		t.Errorf("street = %q", addr.Street)
	}
	if addr.Neighborhood != "Bela Vista" || addr.City != "São Paulo" || addr.State != "SP" {
		t.Errorf("address mismatch: %+v", addr)
	}
}

func TestLookup_UnknownCodeReturnsErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	c := cep.New(cep.Config{BaseURL: srv.URL})
	addr, err := c.Lookup(context.Background(), "99999999")
	if !errors.Is(err, cep.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if addr != (model.Address{}) {
		t.Errorf("address should be zero on error, got %+v", addr)
	}
}

func TestLookup_InvalidCodeFailsLocally(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := cep.New(cep.Config{BaseURL: srv.URL})
	for _, raw := range []string{"", "1234", "abcdefgh", "01310-10"} {
		if _, err := c.Lookup(context.Background(), raw); !errors.Is(err, cep.ErrInvalidCEP) {
			t.Errorf("Lookup(%q): expected ErrInvalidCEP, got %v", raw, err)
		}
	}
	if called {
		t.Error("invalid codes must not reach the network")
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"01310-100", "01310100", true},
		{"01310100", "01310100", true},
		{"01.310-100", "01310100", true},
		{"1310100", "1310100", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := cep.Normalize(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
