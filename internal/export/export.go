// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

// package export writes the user's data (profile, registered objects and
// cases) as a zstd-compressed JSON archive for the "download my data" flow.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/acheiapp/achei/internal/model"
)

// Archive is the exported document.
type Archive struct {
	GeneratedAt time.Time                `json:"gerado_em"`
	User        model.User               `json:"usuario"`
	Objects     []model.RegisteredObject `json:"objetos"`
	Cases       []model.Case             `json:"casos"`
}

// DefaultFilename names an export for the given moment, e.g.
// achei-export-20260901.json.zst.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("achei-export-%s.json.zst", now.Format("20060102"))
}

// Write streams the archive as zstd-compressed JSON onto w.
func Write(w io.Writer, a Archive) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(enc).Encode(a); err != nil {
		enc.Close()
		return fmt.Errorf("encode archive: %w", err)
	}
	return enc.Close()
}

// Read decodes an archive previously produced by Write.
func Read(r io.Reader) (Archive, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return Archive{}, err
	}
	defer dec.Close()

	var a Archive
	if err := json.NewDecoder(dec).Decode(&a); err != nil {
		return Archive{}, fmt.Errorf("decode archive: %w", err)
	}
	return a, nil
}
