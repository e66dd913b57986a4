package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/search"
	"github.com/jedib0t/go-pretty/v6/table"
)

type ConsoleUI struct {
	out         io.Writer
	format      string
	lineNumbers bool
}

func NewConsoleUI(out io.Writer, s config.Settings) *ConsoleUI {
	return &ConsoleUI{out: out, format: s.Output.Format, lineNumbers: s.Output.LineNumbers}
}

// Render writes matches in the configured format. No matches writes nothing.
func (c *ConsoleUI) Render(matches []search.Match) error {
	if len(matches) == 0 {
		return nil
	}
	var out string
	switch c.format {
	case config.FormatTable:
		out = renderTable(matches)
	case config.FormatPlain, "":
		out = renderPlain(matches, c.lineNumbers)
	default:
		return fmt.Errorf("unknown output format: %s", c.format)
	}
	_, err := io.WriteString(c.out, out)
	return err
}

func renderPlain(matches []search.Match, lineNumbers bool) string {
	var b strings.Builder
	for _, m := range matches {
		if lineNumbers {
			b.WriteString(strconv.Itoa(m.Number))
			b.WriteByte(':')
		}
		b.WriteString(m.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

func renderTable(matches []search.Match) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Line", "Text"})
	for _, m := range matches {
		tw.AppendRow(table.Row{m.Number, m.Text})
	}
	return tw.Render() + "\n"
}
