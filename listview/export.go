package listview

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"reflect"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// Rows flattens the currently loaded record slice into cell text, one row
// per record, following the visible column order. Export always reflects
// the in-memory page, not the full server-side collection.
func Rows(records interface{}, cols []Column) [][]string {
	v := reflect.ValueOf(records)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice {
		return nil
	}

	visible := Visible(cols)
	out := make([][]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		rec := v.Index(i)
		for rec.Kind() == reflect.Ptr {
			rec = rec.Elem()
		}
		row := make([]string, 0, len(visible))
		for _, col := range visible {
			val, ok := fieldByColumnID(rec, col.ID)
			cell := ""
			if ok {
				if col.Format != nil {
					cell = col.Format(val)
				} else {
					cell = formatCell(val)
				}
			}
			row = append(row, cell)
		}
		out = append(out, row)
	}
	return out
}

// fieldByColumnID finds the struct field whose json tag (or name) matches
// the column id, descending into embedded structs.
func fieldByColumnID(rec reflect.Value, id string) (interface{}, bool) {
	if rec.Kind() != reflect.Struct {
		return nil, false
	}
	t := rec.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			if val, ok := fieldByColumnID(rec.Field(i), id); ok {
				return val, true
			}
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			tagName := strings.Split(tag, ",")[0]
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		if name == id || field.Name == id {
			return rec.Field(i).Interface(), true
		}
	}
	return nil, false
}

func headers(cols []Column) []string {
	visible := Visible(cols)
	out := make([]string, 0, len(visible))
	for _, c := range visible {
		out = append(out, c.Label)
	}
	return out
}

// WriteCSV streams the current record set as a CSV attachment.
func WriteCSV(ctx *fiber.Ctx, filename string, cols []Column, records interface{}) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers(cols)); err != nil {
		return err
	}
	for _, row := range Rows(records, cols) {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return ctx.Send(buf.Bytes())
}

// WriteExcel streams the current record set as an .xlsx attachment.
func WriteExcel(ctx *fiber.Ctx, filename string, cols []Column, records interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := headers(cols)
	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}

	for i, row := range Rows(records, cols) {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return ctx.Send(buf.Bytes())
}
