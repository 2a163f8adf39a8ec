// Package clipboard reads and writes the system clipboard through
// external tools, and recognizes vendor-specific listing formats that
// need extraction before the table pipeline can run. Clipboard access
// is best-effort: an unavailable clipboard is an error to report, never
// a reason to panic.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

type command struct {
	name string
	args []string
}

// readers are probed in order; the first one present on PATH wins.
func readers() []command {
	if runtime.GOOS == "darwin" {
		return []command{{name: "pbpaste"}}
	}
	return []command{
		{name: "wl-paste", args: []string{"--no-newline"}},
		{name: "xclip", args: []string{"-selection", "clipboard", "-o"}},
		{name: "xsel", args: []string{"--clipboard", "--output"}},
	}
}

func writers() []command {
	if runtime.GOOS == "darwin" {
		return []command{{name: "pbcopy"}}
	}
	return []command{
		{name: "wl-copy"},
		{name: "xclip", args: []string{"-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--input"}},
	}
}

// Read returns the current clipboard text.
func Read() (string, error) {
	for _, c := range readers() {
		path, err := exec.LookPath(c.name)
		if err != nil {
			continue
		}
		out, err := exec.Command(path, c.args...).Output()
		if err != nil {
			continue
		}
		return string(out), nil
	}
	return "", fmt.Errorf("no clipboard tool found (tried wl-paste, xclip, xsel, pbpaste); use --file or pipe input instead")
}

// Write puts text on the clipboard.
func Write(text string) error {
	for _, c := range writers() {
		path, err := exec.LookPath(c.name)
		if err != nil {
			continue
		}
		cmd := exec.Command(path, c.args...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			continue
		}
		return nil
	}
	return fmt.Errorf("no clipboard tool found (tried wl-copy, xclip, xsel, pbcopy)")
}

// IsTabular reports whether text looks like a delimited table: at least
// two non-blank lines splitting consistently into more than one column
// under some candidate delimiter.
func IsTabular(text string) bool {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return false
	}

	for _, sep := range []string{",", "\t", "|", ";"} {
		count := len(strings.Split(lines[0], sep))
		if count < 2 {
			continue
		}
		consistent := true
		for _, line := range lines[1:] {
			if len(strings.Split(line, sep)) != count {
				consistent = false
				break
			}
		}
		if consistent {
			return true
		}
	}
	return false
}
