package steps

import (
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// getCellValueFromTable gets a cell value from a table row by column name.
// The first row (table.Rows[0]) is the header.
func getCellValueFromTable(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	headerRow := table.Rows[0]
	for i, headerCell := range headerRow.Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}
	return ""
}

// parametersFromTable reads a header of dimension names and one row of values
func parametersFromTable(table *godog.Table) (sushi.ProcessParameters, error) {
	var params sushi.ProcessParameters
	if len(table.Rows) < 2 {
		return params, fmt.Errorf("expected a header row and a value row, got %d rows", len(table.Rows))
	}

	for _, headerCell := range table.Rows[0].Cells {
		d, err := sushi.ParseDimension(headerCell.Value)
		if err != nil {
			return params, err
		}
		raw := getCellValueFromTable(table, table.Rows[1], headerCell.Value)
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return params, fmt.Errorf("invalid value %q for %s: %w", raw, headerCell.Value, err)
		}
		params = params.With(d, v)
	}
	return params, nil
}

func parseResult(s string) (sushi.Result, error) {
	switch s {
	case "PERFECT":
		return sushi.ResultPerfect, nil
	case "GOOD":
		return sushi.ResultGood, nil
	case "FAIL":
		return sushi.ResultFail, nil
	case "NONE":
		return sushi.ResultNone, nil
	}
	return sushi.ResultNone, fmt.Errorf("unknown result %q", s)
}

func approxEqual(a, b float64) bool {
	const epsilon = 0.005
	d := a - b
	return d < epsilon && d > -epsilon
}
