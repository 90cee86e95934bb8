package analytics

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"taskdesk/pkg/util/general"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

func buildCsv(rows [][]string) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	// BOM so excel opens the file with the right encoding
	buf.WriteString("\xEF\xBB\xBF")
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return &buf, nil
}

func buildExcel(rows [][]string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	sheet := "TaskDesk"
	index, err := f.NewSheet(general.TruncateSheetName(sheet))
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func buildPdf(rows [][]string, stamp string) (*bytes.Buffer, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("TaskDesk - Request Log (%s)", stamp))
	pdf.Ln(12)
	pdf.SetFont("Arial", "B", 10)

	colWidths := []float64{
		38, 48, 18, 24, 24, 24, 24, 24, 53,
	}
	xStart := pdf.GetX()
	yStart := pdf.GetY()
	headerHeight := 8.0

	for i, str := range rows[0] {
		pdf.Rect(xStart, yStart, colWidths[i], headerHeight, "D")
		pdf.MultiCell(colWidths[i], 5, str, "", "C", false)
		xStart += colWidths[i]
		pdf.SetXY(xStart, yStart)
	}
	pdf.Ln(headerHeight)
	pdf.SetFont("Arial", "", 9)

	for _, row := range rows[1:] {
		startX := pdf.GetX()
		startY := pdf.GetY()
		maxHeight := 0.0
		for j, txt := range row {
			lines := pdf.SplitLines([]byte(txt), colWidths[j])
			h := float64(len(lines)) * 5
			if h > maxHeight {
				maxHeight = h
			}
		}
		x := startX
		for j, txt := range row {
			y := pdf.GetY()
			pdf.Rect(x, y, colWidths[j], maxHeight, "D")
			pdf.MultiCell(colWidths[j], 5, txt, "", "", false)
			x += colWidths[j]
			pdf.SetXY(x, y)
		}
		pdf.SetXY(startX, startY+maxHeight)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
