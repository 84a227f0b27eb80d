package reporting

import (
	"encoding/csv"
	"io"

	"github.com/Velocidex/ordereddict"

	"github.com/analogsec/analog/json"
)

func renderJSON(out io.Writer, rows []*ordereddict.Dict) error {
	serialized, err := json.MarshalIndent(rows)
	if err != nil {
		return err
	}
	_, err = out.Write(append(serialized, '\n'))
	return err
}

func renderJSONL(out io.Writer, rows []*ordereddict.Dict) error {
	items := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		items = append(items, row)
	}

	serialized, err := json.MarshalJsonl(items)
	if err != nil {
		return err
	}
	_, err = out.Write(serialized)
	return err
}

func renderCSV(out io.Writer, rows []*ordereddict.Dict) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	columns := columnsOf(rows)
	if columns != nil {
		err := writer.Write(columns)
		if err != nil {
			return err
		}
	}

	for _, row := range rows {
		record := []string{}
		for _, key := range columns {
			value, _ := row.Get(key)
			record = append(record, stringify(value))
		}
		err := writer.Write(record)
		if err != nil {
			return err
		}
	}

	return nil
}
