package render

import (
	"fmt"
	"io"
	"strings"

	"nbcli/core/utils"

	"github.com/mattn/go-runewidth"
)

// RuleWidth is the width of the rule printed under table headers.
const RuleWidth = 120

// Column describes one table column.
type Column struct {
	// Header is the column title, e.g. "ASSET TAG".
	Header string
	// Width is the padded width of the column in terminal cells.
	Width int
}

// Table is a fixed-width text table.
type Table struct {
	Columns []Column
	Rows    [][]string
}

// NewTable creates an empty table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{Columns: columns}
}

// AddRow appends a row. Values are rendered with utils.ToString; missing
// trailing values are left blank and extra values are dropped.
func (t *Table) AddRow(values ...any) {
	row := make([]string, len(t.Columns))
	for i := range row {
		if i < len(values) {
			row[i] = utils.ToString(values[i])
		}
	}
	t.Rows = append(t.Rows, row)
}

// Headers returns the column titles.
func (t *Table) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Header
	}
	return headers
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Render writes the table to w. When headers is true a header row and a rule
// precede the rows.
func (t *Table) Render(w io.Writer, headers bool) error {
	if headers {
		if _, err := fmt.Fprintln(w, t.formatRow(t.Headers())); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, strings.Repeat("-", RuleWidth)); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if _, err := fmt.Fprintln(w, t.formatRow(row)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) formatRow(values []string) string {
	var b strings.Builder
	for i, c := range t.Columns {
		b.WriteString(runewidth.FillRight(values[i], c.Width))
	}
	return strings.TrimRight(b.String(), " ")
}

// List writes a titled list of identifiers, one per line.
// An empty title prints the items only.
func List(w io.Writer, title string, items []string) error {
	if title != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", runewidth.StringWidth(title))); err != nil {
			return err
		}
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	if title != "" {
		_, err := fmt.Fprintln(w)
		return err
	}
	return nil
}
