// internal/writer/text.go
package writer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tamzrod/s7probe/internal/poller"
)

// textStyles colors console output: labels yellow, values green, errors red.
type textStyles struct {
	label lipgloss.Style
	value lipgloss.Style
	err   lipgloss.Style
	dim   lipgloss.Style
}

func newTextStyles(color bool) textStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return textStyles{label: plain, value: plain, err: plain, dim: plain}
	}
	return textStyles{
		label: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		value: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		err:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		dim:   lipgloss.NewStyle().Faint(true),
	}
}

// textWriter prints one aligned line per tag.
type textWriter struct {
	out    io.Writer
	styles textStyles
}

func newTextWriter(out io.Writer) *textWriter {
	return &textWriter{
		out:    out,
		styles: newTextStyles(isTerminal(out)),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (w *textWriter) Write(res poller.PollResult) error {
	var sb strings.Builder
	f := NewFrame(res)
	at := w.styles.dim.Render(f.At.Format(time.TimeOnly + ".000"))

	if f.Error != "" {
		fmt.Fprintf(&sb, "%s %s\n", at, w.styles.err.Render(fmt.Sprintf("poll failed (0x%08X): %s", f.Code, f.Error)))
		_, err := io.WriteString(w.out, sb.String())
		return err
	}

	width := 0
	for _, r := range f.Values {
		width = max(width, len(r.Tag))
	}

	for _, r := range f.Values {
		name := w.styles.label.Render(fmt.Sprintf("%-*s", width, r.Tag))
		typ := w.styles.dim.Render(fmt.Sprintf("%-10s", r.Type))

		var val string
		if r.Error != "" {
			val = w.styles.err.Render(r.Error)
		} else {
			val = w.styles.value.Render(formatValue(r.Value))
		}
		fmt.Fprintf(&sb, "%s %s %s %s\n", at, name, typ, val)
	}

	_, err := io.WriteString(w.out, sb.String())
	return err
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case TimerRecord:
		return fmt.Sprintf("PT=%dms ET=%dms IN=%t Q=%t", x.PTMs, x.ETMs, x.IN, x.Q)
	default:
		return fmt.Sprint(v)
	}
}
