package logging

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
)

// Logger writes per-image diagnostics during assessment. A nil Logger or
// one without a Writer discards everything.
//
// The output format is:
//
//	<Prefix> image=<path> <formattedMessage>\n
//
// where <path> is trimmed and "(memory)" for images decoded by the caller.
type Logger struct {
	Writer io.Writer

	PrefixText  string
	PrefixColor string // hex color such as "#F59E0B"; empty leaves the prefix plain
}

// Enabled reports whether messages are written. Callers use it to skip
// building expensive arguments.
func (l *Logger) Enabled() bool { return l != nil && l.Writer != nil }

func (l *Logger) Logf(image string, format string, args ...any) {
	if !l.Enabled() {
		return
	}
	prefix := l.PrefixText
	if prefix == "" {
		prefix = "[*]"
	}
	if l.PrefixColor != "" {
		prefix = lipgloss.NewStyle().Foreground(lipgloss.Color(l.PrefixColor)).Render(prefix)
	}

	p := strings.TrimSpace(image)
	if p == "" {
		p = "(memory)"
	}
	fmt.Fprintf(l.Writer, "%s image=%s %s\n", prefix, p, fmt.Sprintf(format, args...))
}
