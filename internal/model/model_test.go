// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package model_test

import (
	"testing"

	"github.com/acheiapp/achei/internal/model"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		in   string
		want model.CaseStatus
	}{
		{"Pendente", model.StatusAnalysis},
		{"pendente", model.StatusAnalysis},
		{"em análise", model.StatusAnalysis},
		{"Em análise", model.StatusAnalysis},
		{"Localizado", model.StatusLocated},
		{"Recuperado", model.StatusRecovered},
		{"Resolvido", model.StatusResolved},
		{"Arquivado", model.StatusArchived},
		{"algo estranho", model.CaseStatus("algo estranho")},
	}
	for _, c := range cases {
		if got := model.NormalizeStatus(c.in); got != c.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestKnownStatus(t *testing.T) {
	for _, s := range model.AllStatuses() {
		if !model.KnownStatus(s) {
			t.Errorf("KnownStatus(%q) = false, want true", s)
		}
	}
	if model.KnownStatus(model.CaseStatus("Perdido")) {
		t.Error("KnownStatus accepted an unknown label")
	}
}
