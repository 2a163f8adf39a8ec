package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/leapstack-labs/tabcode/internal/cli/config"
)

func TestDetect_Markdown(t *testing.T) {
	path := writeTempFile(t, "name,age\nalice,30\nbob,25")

	got, err := execute(t, NewDetectCommand(), "--file", path)
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}

	for _, want := range []string{
		"# Detection",
		"- **Delimiter**: ,",
		"- **Header row**: true",
		"- **Data rows**: 2",
		"- **Columns**: name (string), age (integer)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in report:\n%s", want, got)
		}
	}
}

func TestDetect_JSON(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	chdir(t, t.TempDir())
	t.Setenv("TABCODE_OUTPUT", "json")
	if _, err := config.LoadConfig("", nil); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	path := writeTempFile(t, "a\tb\n1\t2.5")

	cmd := NewDetectCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--file", path, "--header", "yes"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("detect failed: %v", err)
	}

	var report struct {
		Delimiter string `json:"delimiter"`
		HasHeader bool   `json:"has_header"`
		Rows      int    `json:"rows"`
		Columns   []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"columns"`
	}
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON output %q: %v", buf.String(), err)
	}
	if report.Delimiter != "tab" || !report.HasHeader || report.Rows != 1 {
		t.Errorf("report = %+v", report)
	}
	if len(report.Columns) != 2 || report.Columns[1].Type != "float" {
		t.Errorf("columns = %+v", report.Columns)
	}
}
