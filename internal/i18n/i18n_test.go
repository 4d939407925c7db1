// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import (
	"testing"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("pt-BR")
	if GetLang() != "pt-BR" {
		t.Fatalf("expected lang 'pt-BR', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"pt-BR", "en"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present", k)
		}
	}
}

func TestT_PortugueseDefault(t *testing.T) {
	Init("pt-BR")

	if got := T("login.error.password_required"); got != "Senha é obrigatória" {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := T("login.password"); got != "Senha" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestT_EnglishSwitch(t *testing.T) {
	SetLang("en")
	defer SetLang("pt-BR")

	if got := T("login.error.password_required"); got != "Password is required" {
		t.Fatalf("unexpected translation: %q", got)
	}
}

func TestT_UnknownIDFallsBackToID(t *testing.T) {
	Init("pt-BR")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected ID fallback, got %q", got)
	}
}
