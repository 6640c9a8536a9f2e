package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-graphviz"
	"github.com/google/uuid"

	"github.com/matzehuels/archdiagram/pkg/diagram"
	"github.com/matzehuels/archdiagram/pkg/errors"
	"github.com/matzehuels/archdiagram/pkg/observability"
	"github.com/matzehuels/archdiagram/pkg/render"
)

// Artifact describes a rendered image file.
type Artifact struct {
	Path      string
	Format    Format
	Size      int64
	DOT       string    // DOT source handed to Graphviz
	Structure Structure // what Graphviz parsed from DOT
}

// RenderOption configures [Render] and [RenderDiagram].
type RenderOption func(*renderer)

type renderer struct {
	format Format
	dot    Options
	scale  float64
}

// WithFormat forces the output format regardless of the path extension.
func WithFormat(f Format) RenderOption {
	return func(r *renderer) { r.format = f }
}

// WithDOTOptions sets the DOT generation options.
func WithDOTOptions(o Options) RenderOption {
	return func(r *renderer) { r.dot = o }
}

// WithScale renders PNG output through SVG at the given scale factor.
// Requires rsvg-convert. A scale of 0 or 1 uses Graphviz's PNG encoder.
func WithScale(s float64) RenderOption {
	return func(r *renderer) { r.scale = s }
}

// Render seals b with the given title and direction, then renders the
// resulting diagram to path. Builder errors are returned unchanged; every
// failure after that carries [errors.ErrCodeRender].
func Render(ctx context.Context, b *diagram.Builder, title string, direction diagram.Direction, path string, opts ...RenderOption) (*Artifact, error) {
	d, err := b.Build(title, direction)
	if err != nil {
		return nil, err
	}
	return RenderDiagram(ctx, d, path, opts...)
}

// RenderDiagram lays out d with Graphviz and writes the encoded image to path.
//
// The format comes from [WithFormat] or, failing that, from the path
// extension ([DefaultFormat] when there is none). The parent directory must
// already exist; it is never created. The file is written to a temporary
// name in the same directory and renamed into place, so a failed render
// never leaves a partial file at path.
func RenderDiagram(ctx context.Context, d *diagram.Diagram, path string, opts ...RenderOption) (art *Artifact, err error) {
	r := renderer{}
	for _, opt := range opts {
		opt(&r)
	}

	if err := errors.ValidateOutputPath(path); err != nil {
		return nil, errors.Render(err, "invalid output path")
	}
	format, err := r.resolveFormat(path)
	if err != nil {
		return nil, err
	}
	if err := checkDir(path); err != nil {
		return nil, err
	}

	hooks := observability.Render()
	ev := observability.RenderStart{
		Title:    d.Title,
		Path:     path,
		Format:   string(format),
		Nodes:    d.NodeCount(),
		Edges:    d.EdgeCount(),
		Clusters: d.ClusterCount(),
	}
	ctx = hooks.OnRenderStart(ctx, ev)
	began := time.Now()
	defer func() {
		res := observability.RenderResult{RenderStart: ev, Duration: time.Since(began), Err: err}
		if art != nil {
			res.Size = art.Size
		}
		hooks.OnRenderComplete(ctx, res)
	}()

	if err := ctx.Err(); err != nil {
		return nil, errors.Render(err, "render %s", path)
	}

	dot := ToDOT(d, r.dot)
	structure, err := Inspect(dot)
	if err != nil {
		return nil, errors.Render(err, "graphviz rejected diagram")
	}
	data, err := r.encode(ctx, dot, format)
	if err != nil {
		return nil, errors.Render(err, "encode %s", format)
	}
	if err := writeAtomic(path, data); err != nil {
		return nil, errors.Render(err, "write %s", path)
	}

	return &Artifact{
		Path:      path,
		Format:    format,
		Size:      int64(len(data)),
		DOT:       dot,
		Structure: structure,
	}, nil
}

// Encode lays out DOT source and encodes it in the given format.
func Encode(ctx context.Context, dot string, format Format) ([]byte, error) {
	r := renderer{}
	return r.encode(ctx, dot, format)
}

// RenderSVG lays out DOT source and returns SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return layout(ctx, dot, graphviz.SVG)
}

func (r *renderer) resolveFormat(path string) (Format, error) {
	if r.format != "" {
		if !r.format.valid() {
			f, err := ParseFormat(string(r.format))
			if err != nil {
				return "", errors.Render(err, "unsupported output format")
			}
			return f, nil
		}
		return r.format, nil
	}
	f, err := FormatFromPath(path)
	if err != nil {
		return "", errors.Render(err, "unsupported output format for %s", path)
	}
	return f, nil
}

func (r *renderer) encode(ctx context.Context, dot string, format Format) ([]byte, error) {
	switch format {
	case FormatSVG:
		return layout(ctx, dot, graphviz.SVG)
	case FormatJPG:
		return layout(ctx, dot, graphviz.JPG)
	case FormatDOT:
		return layout(ctx, dot, graphviz.XDOT)
	case FormatPNG:
		if r.scale > 0 && r.scale != 1 {
			svg, err := layout(ctx, dot, graphviz.SVG)
			if err != nil {
				return nil, err
			}
			return render.ToPNG(ctx, svg, r.scale)
		}
		return layout(ctx, dot, graphviz.PNG)
	case FormatPDF:
		svg, err := layout(ctx, dot, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(ctx, svg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
}

func layout(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.DOT)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func checkDir(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Render(err, "output directory %s is not accessible", dir)
	}
	if !info.IsDir() {
		return errors.Render(nil, "output directory %s is not a directory", dir)
	}
	return nil
}

// writeAtomic writes data next to path under a unique name, then renames it.
func writeAtomic(path string, data []byte) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
