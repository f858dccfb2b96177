// Package importer reads brand and category reference data from an .xlsx workbook.
package importer

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/tuanvumaihuynh/product-catalog/internal/model"
	"github.com/tuanvumaihuynh/product-catalog/internal/service"
)

const (
	SheetBrands     = "brands"
	SheetCategories = "categories"
)

var (
	brandColumns    = []string{"id", "name", "country_code"}
	categoryColumns = []string{"id", "name"}
)

var ErrNoReferenceSheets = errors.New("workbook has neither a brands nor a categories sheet")

// RowError reports an invalid row with its 1-based spreadsheet row number.
type RowError struct {
	Sheet string
	Row   int
	Err   error
}

func (e RowError) Error() string {
	return fmt.Sprintf("sheet %s row %d: %v", e.Sheet, e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// ReadFile reads the workbook at path.
func ReadFile(path string) (service.ReferenceData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return service.ReferenceData{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return readWorkbook(f)
}

// Read reads a workbook from r.
func Read(r io.Reader) (service.ReferenceData, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return service.ReferenceData{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) (service.ReferenceData, error) {
	sheets := f.GetSheetList()
	hasBrands := slices.Contains(sheets, SheetBrands)
	hasCategories := slices.Contains(sheets, SheetCategories)
	if !hasBrands && !hasCategories {
		return service.ReferenceData{}, ErrNoReferenceSheets
	}

	var data service.ReferenceData
	if hasBrands {
		rows, err := sheetRows(f, SheetBrands, brandColumns)
		if err != nil {
			return service.ReferenceData{}, err
		}
		for _, row := range rows {
			brand, err := parseBrand(row.values)
			if err != nil {
				return service.ReferenceData{}, RowError{Sheet: SheetBrands, Row: row.number, Err: err}
			}
			data.Brands = append(data.Brands, brand)
		}
	}

	if hasCategories {
		rows, err := sheetRows(f, SheetCategories, categoryColumns)
		if err != nil {
			return service.ReferenceData{}, err
		}
		for _, row := range rows {
			category, err := parseCategory(row.values)
			if err != nil {
				return service.ReferenceData{}, RowError{Sheet: SheetCategories, Row: row.number, Err: err}
			}
			data.Categories = append(data.Categories, category)
		}
	}

	return data, nil
}

type sheetRow struct {
	number int
	values map[string]string
}

// sheetRows maps every non-empty data row by header name. The header row must name every column.
func sheetRows(f *excelize.File, sheet string, columns []string) ([]sheetRow, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index := map[string]int{}
	for i, cell := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	for _, col := range columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("sheet %s: missing column %q", sheet, col)
		}
	}

	out := make([]sheetRow, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		values := make(map[string]string, len(columns))
		empty := true
		for _, col := range columns {
			var v string
			if idx := index[col]; idx < len(cells) {
				v = strings.TrimSpace(cells[idx])
			}
			if v != "" {
				empty = false
			}
			values[col] = v
		}
		if empty {
			continue
		}
		out = append(out, sheetRow{number: i + 2, values: values})
	}

	return out, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id %q is not a positive integer", raw)
	}
	return id, nil
}

func parseName(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("name is empty")
	}
	if utf8.RuneCountInString(raw) > 50 {
		return "", fmt.Errorf("name %q is longer than 50 characters", raw)
	}
	return raw, nil
}

func parseBrand(values map[string]string) (model.Brand, error) {
	id, err := parseID(values["id"])
	if err != nil {
		return model.Brand{}, err
	}
	name, err := parseName(values["name"])
	if err != nil {
		return model.Brand{}, err
	}

	code := strings.ToUpper(values["country_code"])
	if len(code) != 2 {
		return model.Brand{}, fmt.Errorf("country_code %q is not two letters", values["country_code"])
	}

	return model.Brand{ID: id, Name: name, CountryCode: code}, nil
}

func parseCategory(values map[string]string) (model.Category, error) {
	id, err := parseID(values["id"])
	if err != nil {
		return model.Category{}, err
	}
	name, err := parseName(values["name"])
	if err != nil {
		return model.Category{}, err
	}

	return model.Category{ID: id, Name: name}, nil
}
