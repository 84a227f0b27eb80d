package reporting

import (
	"io"

	"github.com/Velocidex/ordereddict"
	"github.com/olekukonko/tablewriter"
)

func renderTable(out io.Writer, rows []*ordereddict.Dict) error {
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	columns := columnsOf(rows)
	table.SetHeader(columns)

	for _, row := range rows {
		string_row := []string{}
		for _, key := range columns {
			cell := ""
			value, pres := row.Get(key)
			if pres {
				cell = stringify(value)
			}
			string_row = append(string_row, cell)
		}
		table.Append(string_row)
	}

	table.Render()
	return nil
}
