// Package export writes the filtered quote list as a spreadsheet.
package export

import (
	"fmt"
	"time"

	"dl_orcamentos/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const SheetOrcamentos = "Orcamentos"

var orcamentoHeaders = []string{
	"Número", "Cliente", "Vendedor", "Status", "Prioridade",
	"Valor Total", "Frete", "Dias Restantes", "Data Criação",
}

var orcamentoColWidths = []float64{16, 32, 20, 12, 12, 14, 12, 14, 14}

// OrcamentosXLSX builds the workbook for quotes, in the given order.
func OrcamentosXLSX(quotes []entities.Orcamento) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetOrcamentos); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	sheet := SheetOrcamentos

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	moneyStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 4})

	for i, h := range orcamentoHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	total := decimal.Zero
	frete := decimal.Zero
	for idx, o := range quotes {
		row := idx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), o.Numero)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), o.ClienteNome)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), o.VendedorNome)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), o.DisplayStatus().Label())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(o.Prioridade))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), o.ValorTotal)
		total = total.Add(decimal.NewFromFloat(o.ValorTotal))
		if o.FreteValor != nil {
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), *o.FreteValor)
			frete = frete.Add(decimal.NewFromFloat(*o.FreteValor))
		}
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), o.DiasRestantes)
		if !o.DataCriacao.IsZero() {
			f.SetCellValue(sheet, fmt.Sprintf("I%d", row), o.DataCriacao.Format("02/01/2006"))
		}
	}

	summaryRow := len(quotes) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 4})
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow), fmt.Sprintf("%d orçamentos", len(quotes)))
	f.SetCellValue(sheet, fmt.Sprintf("F%d", summaryRow), total.Round(2).InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("G%d", summaryRow), frete.Round(2).InexactFloat64())
	if len(quotes) > 0 {
		f.SetCellStyle(sheet, "F2", fmt.Sprintf("G%d", summaryRow-1), moneyStyle)
	}
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("I%d", summaryRow), summaryStyle)

	for i, w := range orcamentoColWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}
	return f, nil
}

// OrcamentosXLSXBytes is OrcamentosXLSX serialized, with its download name.
func OrcamentosXLSXBytes(quotes []entities.Orcamento, geradoEm time.Time) ([]byte, string, error) {
	f, err := OrcamentosXLSX(quotes)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), fmt.Sprintf("orcamentos_%s.xlsx", geradoEm.Format("2006-01-02")), nil
}
