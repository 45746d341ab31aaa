package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Table is a rectangular result ready for rendering.
type Table struct {
	Headers []string
	Rows    [][]string
}

// PrintTable writes t. On a TTY it renders aligned columns with a header;
// otherwise it writes tab-separated values for piping.
func PrintTable(w io.Writer, t Table, isTTY bool) {
	if !isTTY {
		printTSV(w, t)
		return
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					BetweenColumns: tw.Off,
					BetweenRows:    tw.Off,
				},
			},
		})),
	)

	table.Header(toAny(t.Headers)...)
	for _, row := range t.Rows {
		table.Append(toAny(row)...)
	}
	table.Render()
}

func printTSV(w io.Writer, t Table) {
	fmt.Fprintln(w, strings.Join(t.Headers, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
}

func toAny(ss []string) []any {
	result := make([]any, len(ss))
	for i, s := range ss {
		result[i] = s
	}
	return result
}

// TableFromRecords builds a table with one row per JSON object in records,
// taking the given columns. Missing keys render as empty cells.
func TableFromRecords(records []any, columns []string) Table {
	t := Table{Headers: make([]string, len(columns))}
	for i, c := range columns {
		t.Headers[i] = strings.ToUpper(c)
	}
	for _, r := range records {
		obj, ok := r.(map[string]any)
		if !ok {
			continue
		}
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = cell(obj[c])
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = cell(e)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(x)
	}
}
