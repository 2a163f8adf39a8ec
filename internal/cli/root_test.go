package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/tabcode/internal/cli/config"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCmd_ConvertEndToEnd(t *testing.T) {
	chdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n3,4"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := executeRoot(t, "convert", "--file", path, "--format", "vector", "--no-history")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if strings.TrimSpace(got) != "[1, 2, 3, 4]" {
		t.Errorf("output = %q", got)
	}
}

func TestRootCmd_OutputFlag(t *testing.T) {
	chdir(t, t.TempDir())

	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := executeRoot(t, "detect", "--file", path, "-o", "json")
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if !strings.Contains(got, `"delimiter": ","`) {
		t.Errorf("expected JSON output:\n%s", got)
	}
}

func TestRootCmd_InvalidOutputMode(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := executeRoot(t, "detect", "-o", "xml"); err == nil {
		t.Error("expected a validation error for an unknown output mode")
	}
}

func TestRootCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, "tabcode.yaml"), []byte("format: vector\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := executeRoot(t, "convert", "--file", path, "--no-history")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if strings.TrimSpace(got) != "[1, 2]" {
		t.Errorf("config file format not applied, output = %q", got)
	}
}

func TestRootCmd_Version(t *testing.T) {
	chdir(t, t.TempDir())

	got, err := executeRoot(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(got, "tabcode "+Version) {
		t.Errorf("version output = %q", got)
	}
}
