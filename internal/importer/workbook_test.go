package importer_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tuanvumaihuynh/product-catalog/internal/importer"
	"github.com/tuanvumaihuynh/product-catalog/internal/model"
)

func newWorkbook(t *testing.T, sheets map[string][][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestRead(t *testing.T) {
	t.Run("Should read both sheets", func(t *testing.T) {
		buf := newWorkbook(t, map[string][][]any{
			importer.SheetBrands: {
				{"ID", "Name", "Country_Code"},
				{1, "Acme", "us"},
				{},
				{2, "Globex", "DE"},
			},
			importer.SheetCategories: {
				{"name", "id"},
				{"Phones", 1},
			},
		})

		data, err := importer.Read(buf)
		require.NoError(t, err)

		assert.Equal(t, []model.Brand{
			{ID: 1, Name: "Acme", CountryCode: "US"},
			{ID: 2, Name: "Globex", CountryCode: "DE"},
		}, data.Brands)
		assert.Equal(t, []model.Category{{ID: 1, Name: "Phones"}}, data.Categories)
	})

	t.Run("Should report invalid row number", func(t *testing.T) {
		buf := newWorkbook(t, map[string][][]any{
			importer.SheetBrands: {
				{"id", "name", "country_code"},
				{1, "Acme", "US"},
				{"x", "Broken", "US"},
			},
		})

		_, err := importer.Read(buf)

		var rowErr importer.RowError
		require.True(t, errors.As(err, &rowErr))
		assert.Equal(t, importer.SheetBrands, rowErr.Sheet)
		assert.Equal(t, 3, rowErr.Row)
	})

	t.Run("Should require header columns", func(t *testing.T) {
		buf := newWorkbook(t, map[string][][]any{
			importer.SheetCategories: {{"id"}, {1}},
		})

		_, err := importer.Read(buf)
		assert.ErrorContains(t, err, `missing column "name"`)
	})

	t.Run("Should require a reference sheet", func(t *testing.T) {
		buf := newWorkbook(t, nil)

		_, err := importer.Read(buf)
		assert.ErrorIs(t, err, importer.ErrNoReferenceSheets)
	})
}
