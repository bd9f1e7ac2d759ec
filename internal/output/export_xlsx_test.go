package output_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/general-configurator/internal/comparison"
	"github.com/KirkDiggler/general-configurator/internal/entities"
	"github.com/KirkDiggler/general-configurator/internal/errors"
	"github.com/KirkDiggler/general-configurator/internal/output"
	"github.com/KirkDiggler/general-configurator/internal/testutils"
)

type ExportTestSuite struct {
	suite.Suite
	table *comparison.Table
}

func TestExportSuite(t *testing.T) {
	suite.Run(t, new(ExportTestSuite))
}

func (s *ExportTestSuite) SetupTest() {
	c := testutils.CreateTestCatalog(s.T())
	generals := []*entities.General{
		testutils.CreateTestGeneral(s.T(), c, 0, testutils.AresBow, testutils.AresArmor),
		testutils.CreateTestGeneral(s.T(), c, 0, testutils.DragonRing),
	}
	s.table = comparison.BuildTable(generals, comparison.TableOptions{Scenario: entities.ScenarioDefending})
}

func (s *ExportTestSuite) open(buf *bytes.Buffer) *excelize.File {
	f, err := excelize.OpenReader(buf)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = f.Close() })
	return f
}

func (s *ExportTestSuite) value(f *excelize.File, sheet, axis string) string {
	v, err := f.GetCellValue(sheet, axis)
	s.Require().NoError(err)
	return v
}

func (s *ExportTestSuite) TestWriteComparison() {
	var buf bytes.Buffer
	s.Require().NoError(output.WriteComparisonXLSX(&buf, s.table))

	f := s.open(&buf)
	s.Equal([]string{output.SheetComparison, output.SheetMaterials}, f.GetSheetList())

	s.Equal("Scenario: defending", s.value(f, output.SheetComparison, "A1"))
	s.Equal("Build 1", s.value(f, output.SheetComparison, "B1"))
	s.Equal("Build 2", s.value(f, output.SheetComparison, "C1"))

	s.Equal("weapon", s.value(f, output.SheetComparison, "A2"))
	s.Equal("Ares B", s.value(f, output.SheetComparison, "B2"))
	s.Equal("", s.value(f, output.SheetComparison, "C2"))
	s.Equal("ring", s.value(f, output.SheetComparison, "A7"))
	s.Equal("Dragon", s.value(f, output.SheetComparison, "C7"))

	// slot rows end at 7, a blank row, the section title, then the first buff row
	s.Equal("Buffs", s.value(f, output.SheetComparison, "A9"))
	s.Equal(entities.GroundAttack.String(), s.value(f, output.SheetComparison, "A10"))
	s.Equal("20", s.value(f, output.SheetComparison, "B10"))
	s.Equal("0", s.value(f, output.SheetComparison, "C10"))
}

func (s *ExportTestSuite) TestWriteMaterials() {
	var buf bytes.Buffer
	s.Require().NoError(output.WriteComparisonXLSX(&buf, s.table))

	f := s.open(&buf)
	s.Equal("Material", s.value(f, output.SheetMaterials, "A1"))
	// iron is the sixth material of the lv6 block
	s.Equal("iron lv6", s.value(f, output.SheetMaterials, "A7"))
	s.Equal("10", s.value(f, output.SheetMaterials, "B7"))
	s.Equal("0", s.value(f, output.SheetMaterials, "C7"))
}

func (s *ExportTestSuite) TestEmptyTable() {
	var buf bytes.Buffer
	s.Require().NoError(output.WriteComparisonXLSX(&buf, comparison.BuildTable(nil, comparison.TableOptions{Scenario: entities.ScenarioAny})))

	f := s.open(&buf)
	s.Equal("Scenario: any", s.value(f, output.SheetComparison, "A1"))
	s.Equal("", s.value(f, output.SheetComparison, "B1"))
}

func (s *ExportTestSuite) TestNilTable() {
	var buf bytes.Buffer
	err := output.WriteComparisonXLSX(&buf, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ExportTestSuite) TestSaveComparison() {
	path := filepath.Join(s.T().TempDir(), "nested", "compare.xlsx")
	s.Require().NoError(output.SaveComparisonXLSX(path, s.table))

	f, err := excelize.OpenFile(path)
	s.Require().NoError(err)
	defer func() { _ = f.Close() }()

	v, err := f.GetCellValue(output.SheetComparison, "B1")
	s.Require().NoError(err)
	s.Equal("Build 1", v)
}
