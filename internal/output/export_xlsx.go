// Package output renders comparison tables to spreadsheets.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/general-configurator/internal/comparison"
	"github.com/KirkDiggler/general-configurator/internal/engine"
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/errors"
)

// Sheet names
const (
	SheetComparison = "Comparison"
	SheetMaterials  = "Materials"
)

const labelColumn = "A"

// WriteComparisonXLSX writes the table as a workbook: one column per build with
// item, buff, debuff and total rows, and a second sheet with crafting materials.
func WriteComparisonXLSX(w io.Writer, table *comparison.Table) error {
	if table == nil {
		return errors.InvalidArgument("comparison table is required")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetComparison); err != nil {
		return errors.Wrap(err, "failed to rename sheet")
	}
	if _, err := f.NewSheet(SheetMaterials); err != nil {
		return errors.Wrap(err, "failed to add materials sheet")
	}

	if err := writeComparisonSheet(f, table); err != nil {
		return err
	}
	if err := writeMaterialsSheet(f, table); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}
	return nil
}

// SaveComparisonXLSX writes the workbook to path, creating parent directories
func SaveComparisonXLSX(path string, table *comparison.Table) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create %s", dir)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() { _ = file.Close() }()

	return WriteComparisonXLSX(file, table)
}

func writeComparisonSheet(f *excelize.File, table *comparison.Table) error {
	sheet := SheetComparison

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create header style")
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "failed to create section style")
	}

	_ = f.SetCellValue(sheet, "A1", fmt.Sprintf("Scenario: %s", table.Scenario))
	for i := range table.Columns {
		_ = f.SetCellValue(sheet, cell(i+1, 1), fmt.Sprintf("Build %d", i+1))
	}
	if len(table.Columns) > 0 {
		if err := f.SetCellStyle(sheet, "A1", cell(len(table.Columns), 1), headerStyle); err != nil {
			return errors.Wrap(err, "failed to style header")
		}
	}

	row := 2
	for si, slot := range equipment.AllSlots() {
		_ = f.SetCellValue(sheet, cell(0, row), slot.String())
		for ci, col := range table.Columns {
			_ = f.SetCellValue(sheet, cell(ci+1, row), col.Items[si])
		}
		row++
	}

	section := func(title string, values func(comparison.Column) entities.BuffVector, totals func(comparison.Column) engine.Totals) {
		row++
		_ = f.SetCellValue(sheet, cell(0, row), title)
		_ = f.SetCellStyle(sheet, cell(0, row), cell(0, row), sectionStyle)
		row++

		for _, key := range entities.AllBuffKeys() {
			_ = f.SetCellValue(sheet, cell(0, row), key.String())
			for ci, col := range table.Columns {
				_ = f.SetCellValue(sheet, cell(ci+1, row), values(col).Get(key))
			}
			row++
		}
		for _, kind := range equipment.CombatKinds() {
			_ = f.SetCellValue(sheet, cell(0, row), "total "+kind.String())
			for ci, col := range table.Columns {
				_ = f.SetCellValue(sheet, cell(ci+1, row), totalOf(totals(col), kind))
			}
			_ = f.SetCellStyle(sheet, cell(0, row), cell(len(table.Columns), row), sectionStyle)
			row++
		}
	}
	section("Buffs",
		func(c comparison.Column) entities.BuffVector { return c.Buffs },
		func(c comparison.Column) engine.Totals { return c.BuffTotals })
	section("Debuffs",
		func(c comparison.Column) entities.BuffVector { return c.Debuffs },
		func(c comparison.Column) engine.Totals { return c.DebuffTotals })

	if err := f.SetColWidth(sheet, labelColumn, labelColumn, 18); err != nil {
		return errors.Wrap(err, "failed to size label column")
	}
	if len(table.Columns) > 0 {
		first, _ := excelize.ColumnNumberToName(2)
		last, _ := excelize.ColumnNumberToName(len(table.Columns) + 1)
		if err := f.SetColWidth(sheet, first, last, 16); err != nil {
			return errors.Wrap(err, "failed to size build columns")
		}
	}
	return nil
}

func writeMaterialsSheet(f *excelize.File, table *comparison.Table) error {
	sheet := SheetMaterials

	_ = f.SetCellValue(sheet, "A1", "Material")
	for i := range table.Columns {
		_ = f.SetCellValue(sheet, cell(i+1, 1), fmt.Sprintf("Build %d", i+1))
	}

	row := 2
	for _, level := range []int{engine.MaterialLevel6, engine.MaterialLevel7} {
		for _, mat := range equipment.AllMaterials() {
			_ = f.SetCellValue(sheet, cell(0, row), fmt.Sprintf("%s lv%d", mat, level))
			for ci, col := range table.Columns {
				column := col.Materials.Lv6
				if level == engine.MaterialLevel7 {
					column = col.Materials.Lv7
				}
				_ = f.SetCellValue(sheet, cell(ci+1, row), column[mat])
			}
			row++
		}
	}

	if err := f.SetColWidth(sheet, labelColumn, labelColumn, 20); err != nil {
		return errors.Wrap(err, "failed to size material column")
	}
	return nil
}

func totalOf(t engine.Totals, kind equipment.AttrKind) float64 {
	switch kind {
	case equipment.KindAttack:
		return t.Attack
	case equipment.KindDefense:
		return t.Defense
	default:
		return t.Hp
	}
}

// cell converts zero based column and one based row indexes to an A1 reference
func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row)
	return name
}
