// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.
package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFlattenYAML_NestedAndFlat(t *testing.T) {
	out := map[string]struct{}{}
	flattenYAML("", map[string]interface{}{
		"login.title": "Entrar",
		"menu": map[string]interface{}{
			"quit": "Sair",
		},
	}, out)

	for _, want := range []string{"login.title", "menu.quit"} {
		if _, ok := out[want]; !ok {
			t.Errorf("missing flattened key %q", want)
		}
	}
}

func TestLoadKeysFromLocale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pt-BR.yaml")
	content := "login.title: \"Entrar\"\ncases.empty: \"Nenhum caso\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	keys, err := loadKeysFromLocale(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
	if _, ok := keys["cases.empty"]; !ok {
		t.Error("cases.empty not loaded")
	}
}

func TestFindUsedKeys_ScansTAndTf(t *testing.T) {
	dir := t.TempDir()
	src := `package x
import "github.com/acheiapp/achei/internal/i18n"
func f() {
	_ = i18n.T("login.title")
	_ = i18n.Tf("export.done", nil)
}`
	if err := os.WriteFile(filepath.Join(dir, "x.go"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	// Test files must be ignored.
	if err := os.WriteFile(filepath.Join(dir, "x_test.go"), []byte(`package x // i18n.T("test.only")`), 0o644); err != nil {
		t.Fatal(err)
	}

	keys, err := findUsedKeys(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"login.title", "export.done"} {
		if _, ok := keys[want]; !ok {
			t.Errorf("missing used key %q", want)
		}
	}
	if _, ok := keys["test.only"]; ok {
		t.Error("keys from _test.go files must be ignored")
	}
}

func TestSubtract(t *testing.T) {
	a := map[string]struct{}{"x": {}, "y": {}}
	b := map[string]struct{}{"y": {}}
	got := subtract(a, b)
	if len(got) != 1 || got[0] != "x" {
		t.Fatalf("expected [x], got %v", got)
	}
}
