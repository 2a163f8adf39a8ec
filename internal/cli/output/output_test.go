package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestEffectiveMode(t *testing.T) {
	var buf bytes.Buffer

	r := NewRenderer(&buf, &buf, ModeAuto)
	if got := r.EffectiveMode(); got != ModeMarkdown {
		t.Errorf("auto on a buffer = %v, want markdown", got)
	}

	r = NewRenderer(&buf, &buf, ModeJSON)
	if got := r.EffectiveMode(); got != ModeJSON {
		t.Errorf("explicit mode = %v, want json", got)
	}

	r = NewRenderer(&buf, &buf, "")
	if got := r.EffectiveMode(); got != ModeMarkdown {
		t.Errorf("empty mode should resolve as auto, got %v", got)
	}
}

func TestHeaderAndKeyValue_Markdown(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeMarkdown)

	r.Header(2, "Detection")
	r.KeyValue("delimiter", ",")

	got := buf.String()
	if !strings.Contains(got, "## Detection\n") {
		t.Errorf("missing markdown header:\n%s", got)
	}
	if !strings.Contains(got, "- **delimiter**: ,\n") {
		t.Errorf("missing markdown key/value:\n%s", got)
	}
}

func TestErrorf_GoesToErrStream(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRenderer(&out, &errOut, ModeMarkdown)

	r.Errorf("failed: %s", "boom")

	if out.Len() != 0 {
		t.Errorf("stdout should stay clean, got %q", out.String())
	}
	if got := errOut.String(); got != "failed: boom\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, &buf, ModeJSON)

	if err := r.JSON(map[string]int{"rows": 3}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if got := buf.String(); got != "{\n  \"rows\": 3\n}\n" {
		t.Errorf("JSON output = %q", got)
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := FormatHeader(3, "Columns"); got != "### Columns" {
		t.Errorf("FormatHeader = %q", got)
	}
	if got := FormatKeyValue("rows", "12"); got != "- **rows**: 12" {
		t.Errorf("FormatKeyValue = %q", got)
	}
}
