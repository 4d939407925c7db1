// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

func TestSetDebugTogglesLevel(t *testing.T) {
	var buf bytes.Buffer
	old := L
	L = clog.New(&buf)
	defer func() { L = old }()

	SetDebug(false)
	Debugf("hidden %d", 1)
	if strings.Contains(buf.String(), "hidden") {
		t.Fatal("debug message emitted while debug disabled")
	}

	SetDebug(true)
	Debugf("shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Fatalf("debug message missing with debug enabled: %q", buf.String())
	}
}

func TestErrorfAlwaysEmits(t *testing.T) {
	var buf bytes.Buffer
	old := L
	L = clog.New(&buf)
	defer func() { L = old }()

	SetDebug(false)
	Errorf("boom: %v", "x")
	if !strings.Contains(buf.String(), "boom: x") {
		t.Fatalf("error message missing: %q", buf.String())
	}
}
