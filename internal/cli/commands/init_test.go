package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, NewInitCommand(), dir); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "tabcode.yaml"))
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	content := string(data)
	for _, want := range []string{"format: pandas", "max_rows: 200", "indent: 4", "history:"} {
		if !strings.Contains(content, want) {
			t.Errorf("missing %q in generated config:\n%s", want, content)
		}
	}
}

func TestInitCommand_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabcode.yaml")
	if err := os.WriteFile(path, []byte("format: polars\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, NewInitCommand(), dir); err == nil {
		t.Error("expected an error without --force")
	}

	if _, err := execute(t, NewInitCommand(), dir, "--force"); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "format: pandas") {
		t.Errorf("config not overwritten:\n%s", data)
	}
}
