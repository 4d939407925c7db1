// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks for missing or orphaned translation keys. It scans the
// Go source for i18n.T() and i18n.Tf() calls and compares them against the
// YAML locale files. pt-BR is the source of truth; every key it defines must
// exist in every other locale.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "pt-BR.yaml"
)

func main() {
	fmt.Println("🔍 Running i18n linter...")

	usedKeys, err := findUsedKeys(".")
	if err != nil {
		fmt.Printf("❌ Error scanning source: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Found %d unique translation keys used in source code.\n", len(usedKeys))

	primaryKeys, err := loadKeysFromLocale(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		fmt.Printf("❌ Error loading primary locale %s: %v\n", primaryLocale, err)
		os.Exit(1)
	}
	fmt.Printf("✅ Loaded %d keys from primary locale (%s).\n\n", len(primaryKeys), primaryLocale)

	failed := false

	fmt.Println("--- Keys used in code but absent from the primary locale ---")
	if missing := subtract(usedKeys, primaryKeys); len(missing) > 0 {
		for _, key := range missing {
			fmt.Printf("  - Missing: %s\n", key)
		}
		failed = true
	} else {
		fmt.Println("  ✨ None found.")
	}
	fmt.Println()

	fmt.Println("--- Orphaned keys (in primary locale but not used in code) ---")
	if orphaned := subtract(primaryKeys, usedKeys); len(orphaned) > 0 {
		for _, key := range orphaned {
			fmt.Printf("  - Orphaned: %s\n", key)
		}
	} else {
		fmt.Println("  ✨ None found.")
	}
	fmt.Println()

	fmt.Println("--- Secondary locales missing keys from the primary ---")
	localeFiles, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		fmt.Printf("❌ Error listing locale files: %v\n", err)
		os.Exit(1)
	}
	for _, file := range localeFiles {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		fmt.Printf("Checking %s:\n", file)
		secondaryKeys, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Printf("  - ❌ Error loading: %v\n", err)
			failed = true
			continue
		}
		if missing := subtract(primaryKeys, secondaryKeys); len(missing) > 0 {
			for _, key := range missing {
				fmt.Printf("  - Missing: %s\n", key)
			}
			failed = true
		} else {
			fmt.Println("  ✨ All keys present.")
		}
	}

	fmt.Println("\n--- Linter Finished ---")
	if failed {
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	}
	fmt.Println("✅ All translation files are consistent!")
}

// subtract returns the sorted keys of a that are absent from b.
func subtract(a, b map[string]struct{}) []string {
	var out []string
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// findUsedKeys scans non-test .go files for i18n.T("key") and
// i18n.Tf("key", ...) calls. Skips tools and underscore directories.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	re := regexp.MustCompile(`i18n\.Tf?\("([^"]+)"`)

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") && name != "." {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range re.FindAllStringSubmatch(string(content), -1) {
			keys[match[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale flattens a locale YAML file into its dotted key set.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", raw, keys)
	return keys, nil
}

func flattenYAML(prefix string, node map[string]interface{}, out map[string]struct{}) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]interface{}); ok {
			flattenYAML(key, sub, out)
			continue
		}
		out[key] = struct{}{}
	}
}
