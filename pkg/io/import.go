package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/archdiagram/pkg/errors"
)

// ReadJSON decodes a JSON diagram description from r.
//
// Unknown fields are rejected. Declaration errors (duplicate IDs, unknown
// nodes, a node in two clusters) are wrapped with the node, cluster or edge
// that caused them and keep their [errors.Code].
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Description, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON")
	}
	return doc.declare()
}

// ReadTOML decodes a TOML diagram description from r.
// Keys that do not map to a field are rejected, as with [ReadJSON].
func ReadTOML(r io.Reader) (*Description, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode TOML")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return doc.declare()
}

// ImportFile reads a description file, choosing the decoder by extension
// (.json or .toml).
func ImportFile(path string) (*Description, error) {
	enc, err := EncodingFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if enc == EncodingTOML {
		return ReadTOML(f)
	}
	return ReadJSON(f)
}
