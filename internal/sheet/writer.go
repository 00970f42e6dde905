// Package sheet writes flat records to a single-sheet .xlsx workbook.
package sheet

import (
	"fmt"
	"reflect"

	"github.com/xuri/excelize/v2"

	"example.com/eventreport/internal/errs"
)

const defaultSheet = "Sheet1"

// WriteRows writes a header row made of T's exported field names followed by
// one row per record, then saves the workbook to path, replacing any file
// already there. T must be a struct type.
func WriteRows[T any](path, sheetName string, rows []T) error {
	header, err := headerOf[T]()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheetName != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := valuesOf(r)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: save %s: %v", errs.ErrWriteFailed, path, err)
	}
	return nil
}

func headerOf[T any]() ([]any, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("sheet rows must be structs, got %s", t.Kind())
	}
	header := make([]any, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if sf := t.Field(i); sf.IsExported() {
			header = append(header, sf.Name)
		}
	}
	return header, nil
}

func valuesOf[T any](r T) []any {
	v := reflect.ValueOf(r)
	t := v.Type()
	values := make([]any, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			values = append(values, v.Field(i).Interface())
		}
	}
	return values
}
