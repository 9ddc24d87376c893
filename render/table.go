// Package render prints listings the way operators read them: a title line,
// a borderless table of rows, then the closing line.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"presence-lab/domain/query"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

type Options struct {
	// Colours highlights the traversed entity in the title.
	Colours bool
}

// Lines returns the listing one line at a time. The title and the closing
// line are always present.
func Lines(result query.Result, opts Options) []string {
	lines := []string{title(result.Header, opts)}
	lines = append(lines, table(result)...)
	return append(lines, result.Footer)
}

func Write(w io.Writer, result query.Result, opts Options) error {
	for _, line := range Lines(result, opts) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func title(h query.Header, opts Options) string {
	if h.Subject == "" {
		return h.Title
	}
	subject := h.Subject
	if opts.Colours {
		subject = color.Bold.Sprint(subject)
	}
	return subject + " " + h.Title
}

func table(result query.Result) []string {
	var buf bytes.Buffer
	t := tablewriter.NewWriter(&buf)
	t.SetHeader(result.Header.Columns)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	if result.Domain == query.Channels {
		t.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
			tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		})
	}
	t.SetCenterSeparator("")
	t.SetColumnSeparator("")
	t.SetRowSeparator("")
	t.SetHeaderLine(false)
	t.SetBorder(false)
	t.SetTablePadding("\t")
	t.SetNoWhiteSpace(true)
	for _, row := range result.Rows {
		t.Append(row.Columns())
	}
	t.Render()

	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if line = strings.TrimRight(line, " \t"); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
