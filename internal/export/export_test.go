// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/acheiapp/achei/internal/export"
	"github.com/acheiapp/achei/internal/model"
)

func TestWriteReadRoundTrip(t *testing.T) {
	a := export.Archive{
		GeneratedAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		User:        model.User{ID: 1, Name: "Maria", Type: model.UserCitizen},
		Objects: []model.RegisteredObject{
			{ID: 10, Name: "Bicicleta Caloi", Category: "bicicleta", SerialNumber: "C-123"},
		},
		Cases: []model.Case{
			{Protocol: "BO-2026-001", Status: model.StatusAnalysis},
		},
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, a); err != nil {
		t.Fatalf("write: %v", err)
	}

	// zstd frames start with the magic 0x28B52FFD (little-endian on the wire)
	if buf.Len() < 4 || buf.Bytes()[0] != 0x28 || buf.Bytes()[1] != 0xB5 {
		t.Fatalf("output does not look like a zstd stream: % x", buf.Bytes()[:4])
	}

	got, err := export.Read(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.User.Name != "Maria" || len(got.Objects) != 1 || len(got.Cases) != 1 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Objects[0].SerialNumber != "C-123" {
		t.Errorf("object fields lost: %+v", got.Objects[0])
	}
}

func TestReadGarbageFails(t *testing.T) {
	if _, err := export.Read(bytes.NewReader([]byte("not a zstd stream"))); err == nil {
		t.Fatal("expected error for non-zstd input")
	}
}

func TestDefaultFilename(t *testing.T) {
	got := export.DefaultFilename(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	if got != "achei-export-20260901.json.zst" {
		t.Errorf("filename = %q", got)
	}
}
