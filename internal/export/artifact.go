// Package export turns a run's completed task results into tabular
// artifacts and delivers them to their destination.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/tablelift/tablelift/constants"
	"github.com/tablelift/tablelift/internal/common"
	"github.com/tablelift/tablelift/internal/entity"
)

const sheetName = "Results"

// BuildArtifact renders one row per completed task, with the configured
// fields as columns plus the source folder for traceability.
func BuildArtifact(kind constants.ExportFileKind, fields []entity.FieldSpec, tasks []*entity.ExtractionTask) ([]byte, error) {
	if len(fields) == 0 {
		return nil, common.ValidationErrorf("no fields configured")
	}
	header := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		header = append(header, f.Name)
	}
	header = append(header, "source_folder")

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		row, err := taskRow(fields, t)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	switch kind {
	case constants.ExportCSV:
		return renderCSV(header, rows)
	case constants.ExportXLSX:
		return renderXLSX(header, rows)
	default:
		return nil, common.ValidationErrorf("unknown artifact kind %q", kind)
	}
}

func taskRow(fields []entity.FieldSpec, t *entity.ExtractionTask) ([]string, error) {
	var values map[string]any
	if err := json.Unmarshal(t.Result, &values); err != nil {
		return nil, fmt.Errorf("task %s result: %w", t.ID, err)
	}
	row := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		row = append(row, cellString(values[f.Name]))
	}
	row = append(row, t.Folder)
	return row, nil
}

func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func renderCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderXLSX(header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName(f.GetSheetName(0), sheetName)

	writeRow := func(rowIdx int, cells []string) error {
		for col, value := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
		return nil
	}
	if err := writeRow(1, header); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeRow(i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func artifactExt(kind constants.ExportFileKind) string {
	if kind == constants.ExportCSV {
		return ".csv"
	}
	return ".xlsx"
}
