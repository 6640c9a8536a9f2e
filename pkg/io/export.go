package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/archdiagram/pkg/diagram"
)

// WriteJSON encodes d as an indented JSON description.
// The output can be re-imported with [ReadJSON].
func WriteJSON(d *diagram.Diagram, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromDiagram(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes d as a TOML description using [[nodes]], [[clusters]]
// and [[edges]] tables. The output can be re-imported with [ReadTOML].
func WriteTOML(d *diagram.Diagram, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(fromDiagram(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportFile writes d to path, choosing the encoder by extension.
func ExportFile(d *diagram.Diagram, path string) (err error) {
	enc, err := EncodingFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if enc == EncodingTOML {
		return WriteTOML(d, f)
	}
	return WriteJSON(d, f)
}
