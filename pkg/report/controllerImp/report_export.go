package controllerImp

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"kubeterra/entities"
)

const sheet = "Report"

// renderXLSX builds the export workbook. Snapshot values that are themselves
// objects or arrays are written as compact JSON so nothing is lost.
func renderXLSX(rep *entities.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	rows := [][]any{
		{"Title", rep.Title},
		{"Type", rep.Type},
		{"Module", rep.Module},
		{"Generated by", rep.GeneratedByID},
		{"Created at", rep.CreatedAt.Format(time.RFC3339)},
	}
	if rep.PeriodStart != nil {
		rows = append(rows, []any{"Period start", rep.PeriodStart.Format(time.RFC3339)})
	}
	if rep.PeriodEnd != nil {
		rows = append(rows, []any{"Period end", rep.PeriodEnd.Format(time.RFC3339)})
	}
	rows = append(rows, []any{}, []any{"Snapshot key", "Value"})

	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(rep.DataSnapshot, &snapshot); err != nil {
		// snapshot is not an object; dump it as a single cell
		rows = append(rows, []any{"data", string(rep.DataSnapshot)})
	} else {
		keys := make([]string, 0, len(snapshot))
		for k := range snapshot {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rows = append(rows, []any{k, snapshotCell(snapshot[k])})
		}
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	out, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func snapshotCell(raw json.RawMessage) any {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	switch v.(type) {
	case string, float64, bool, nil:
		return v
	default:
		return string(raw)
	}
}
