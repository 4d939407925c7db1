// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/acheiapp/achei/internal/config"
)

func defaults() map[string]any {
	return map[string]any{
		"api.base_url":  "https://api.achei.example/v1",
		"cep.base_url":  "https://viacep.com.br",
		"http.timeout":  15,
		"database.type": "sqlite",
		"database.dsn":  "./achei.db",
		"language":      "pt-BR",
	}
}

func TestLoadConfig_DefaultsApply(t *testing.T) {
	tmp := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmp)
	defer os.Unsetenv("XDG_CONFIG_HOME")
	viper.Reset()
	defer viper.Reset()

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, defaults(), nil)
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if c.API.BaseURL != "https://api.achei.example/v1" {
		t.Errorf("api.base_url default not applied: %q", c.API.BaseURL)
	}
	if c.Database.Type != "sqlite" || c.Language != "pt-BR" {
		t.Errorf("defaults not applied: %+v", c)
	}
	if c.HTTP.TimeoutSeconds != 15 {
		t.Errorf("http.timeout default not applied: %d", c.HTTP.TimeoutSeconds)
	}
	if used := cfg.FileUsed(); used != "" {
		t.Errorf("no config file exists, but FileUsed reports %q", used)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	tmp := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmp)
	defer os.Unsetenv("XDG_CONFIG_HOME")
	viper.Reset()
	defer viper.Reset()

	dir := filepath.Join(tmp, "achei")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "api:\n  base_url: https://staging.achei.example/v1\nlanguage: en\n"
	if err := os.WriteFile(filepath.Join(dir, "achei.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, defaults(), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.API.BaseURL != "https://staging.achei.example/v1" {
		t.Errorf("file value not applied: %q", c.API.BaseURL)
	}
	if c.Language != "en" {
		t.Errorf("file language not applied: %q", c.Language)
	}
	// untouched keys keep defaults
	if c.Database.Dsn != "./achei.db" {
		t.Errorf("default dsn lost: %q", c.Database.Dsn)
	}
	if used := cfg.FileUsed(); filepath.Base(used) != "achei.yaml" {
		t.Errorf("FileUsed does not point at the loaded file: %q", used)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	tmp := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmp)
	os.Setenv("ACHEI_LANGUAGE", "en")
	defer os.Unsetenv("XDG_CONFIG_HOME")
	defer os.Unsetenv("ACHEI_LANGUAGE")
	viper.Reset()
	defer viper.Reset()

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, defaults(), nil)
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if c.Language != "en" {
		t.Errorf("env override not applied: %q", c.Language)
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	tmp := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tmp)
	defer os.Unsetenv("XDG_CONFIG_HOME")
	viper.Reset()
	defer viper.Reset()

	c := cfg.Config{}
	c.Database.Type = "sqlite"
	c.Database.Dsn = "./achei.db"
	c.Language = "pt-BR"

	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("write: %v", err)
	}
	path := filepath.Join(tmp, "achei", "achei.yaml")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}
}
