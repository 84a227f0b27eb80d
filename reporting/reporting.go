// Render ordered rows to the terminal.
//
// All inspection commands produce []*ordereddict.Dict rows. Column
// order follows the key order of the first row, the way the
// producing package built it.

package reporting

import (
	"fmt"
	"io"
	"os"

	"github.com/Velocidex/ordereddict"
	"github.com/mattn/go-isatty"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatCSV   Format = "csv"
)

// ResolveFormat picks the output format: an explicit choice wins,
// otherwise tables for humans and jsonl for pipes.
func ResolveFormat(requested string, out *os.File) Format {
	switch requested {
	case "table", "json", "jsonl", "csv":
		return Format(requested)
	}

	if isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()) {
		return FormatTable
	}
	return FormatJSONL
}

func Render(format Format, out io.Writer, rows []*ordereddict.Dict) error {
	switch format {
	case FormatTable:
		return renderTable(out, rows)
	case FormatJSON:
		return renderJSON(out, rows)
	case FormatJSONL:
		return renderJSONL(out, rows)
	case FormatCSV:
		return renderCSV(out, rows)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func columnsOf(rows []*ordereddict.Dict) []string {
	if len(rows) == 0 {
		return nil
	}
	return rows[0].Keys()
}

func stringify(value interface{}) string {
	if value == nil {
		return ""
	}

	switch t := value.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}
