package nodelink

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/archdiagram/pkg/errors"
)

// Format is an output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatJPG Format = "jpg"
	FormatDOT Format = "dot" // laid-out DOT with coordinates
	FormatPDF Format = "pdf" // via rsvg-convert
)

// DefaultFormat is used when neither an option nor the path extension picks one.
const DefaultFormat = FormatPNG

var formatAliases = map[string]Format{
	"png":  FormatPNG,
	"svg":  FormatSVG,
	"jpg":  FormatJPG,
	"jpeg": FormatJPG,
	"dot":  FormatDOT,
	"gv":   FormatDOT,
	"pdf":  FormatPDF,
}

// Formats returns the supported formats in sorted order.
func Formats() []Format {
	return []Format{FormatDOT, FormatJPG, FormatPDF, FormatPNG, FormatSVG}
}

// ParseFormat resolves a format name or alias ("jpeg", "gv"), ignoring case.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	names := make([]string, 0, len(formatAliases))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (supported: %s)", s, strings.Join(names, ", "))
}

// FormatFromPath infers the format from a file extension.
// A path without an extension yields [DefaultFormat].
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return DefaultFormat, nil
	}
	return ParseFormat(ext)
}

// Ext returns the canonical file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

func (f Format) valid() bool { return slices.Contains(Formats(), f) }
