package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/archdiagram/pkg/errors"
	"github.com/matzehuels/archdiagram/pkg/io"
	"github.com/matzehuels/archdiagram/pkg/observability"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(observability.Reset)
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func TestCatalogList(t *testing.T) {
	if err := execute(t, "catalog", "list"); err != nil {
		t.Fatalf("catalog list error: %v", err)
	}
}

func TestCatalogExportThenRender(t *testing.T) {
	dir := t.TempDir()
	desc := filepath.Join(dir, "react.json")

	if err := execute(t, "catalog", "export", "react-aws", "-o", desc); err != nil {
		t.Fatalf("catalog export error: %v", err)
	}
	d, err := io.ImportFile(desc)
	if err != nil {
		t.Fatalf("ImportFile() error: %v", err)
	}
	if d.Title != "React + AWS Architecture" {
		t.Errorf("exported title = %q", d.Title)
	}

	out := filepath.Join(dir, "react.svg")
	if err := execute(t, "render", desc, "-o", out); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if info, err := os.Stat(out); err != nil || info.Size() == 0 {
		t.Errorf("rendered output missing or empty: %v", err)
	}
}

func TestCatalogRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "libs.svg")
	if err := execute(t, "catalog", "render", "project-libraries", "-o", out, "--direction", "TB"); err != nil {
		t.Fatalf("catalog render error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Error(err)
	}
}

func TestCatalogUnknownName(t *testing.T) {
	if err := execute(t, "catalog", "render", "nope"); err == nil {
		t.Error("catalog render with unknown name should fail")
	}
	if _, err := lookupEntry("nope"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("lookupEntry err = %v, want INVALID_INPUT", err)
	}
}

func TestRunCatalogExportDefaultPath(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := runCatalogExport(context.Background(), "react-aws", ""); err != nil {
		t.Fatalf("runCatalogExport() error: %v", err)
	}
	if _, err := os.Stat("react-aws.toml"); err != nil {
		t.Errorf("default export path: %v", err)
	}
}
