package export

import (
	"bytes"
	"fmt"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/domain/pricing"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName   = "Estimation"
	moneyFormat = "$#,##0.00"
	headerRow   = 5
)

var columns = []string{"Section", "Item", "Description", "Unit", "Quantity", "Price", "Margin %", "Total"}

// EstimationWorkbook renders an estimation as a single-sheet xlsx file: a header
// block, one row per line item, a subtotal row after each section and the
// grand totals at the bottom.
type EstimationWorkbook struct{}

func NewEstimationWorkbook() *EstimationWorkbook {
	return &EstimationWorkbook{}
}

// FileName is the attachment name used for e.
func (EstimationWorkbook) FileName(e entities.Estimation) string {
	return fmt.Sprintf("estimation-%s.xlsx", e.ID)
}

func (w *EstimationWorkbook) Generate(e entities.Estimation) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, fmt.Errorf("create styles: %w", err)
	}

	header := [][2]any{{"Estimation", e.Name}, {"Customer", e.Customer}, {"Date", e.Date}}
	for i, kv := range header {
		if err := setRow(f, i+1, st.label, kv[0], kv[1]); err != nil {
			return nil, err
		}
	}

	headers := make([]any, len(columns))
	for i, c := range columns {
		headers[i] = c
	}
	if err := setRow(f, headerRow, st.header, headers...); err != nil {
		return nil, err
	}

	b := pricing.Breakdown(e.Sections)
	row := headerRow + 1
	for si, s := range e.Sections {
		sb := b.Sections[si]
		for ii, it := range s.Items {
			vals := []any{s.Title, it.Title, it.Description, it.Unit, it.Quantity, it.UnitPrice, it.MarginPercent, sb.Items[ii].Total}
			if err := setRow(f, row, 0, vals...); err != nil {
				return nil, err
			}
			if err := styleMoney(f, row, st.money, 6, 8); err != nil {
				return nil, err
			}
			row++
		}
		if err := setRow(f, row, st.subtotal, "Subtotal "+s.Title, "", "", "", "", "", sb.Margin, sb.Total); err != nil {
			return nil, err
		}
		if err := styleMoney(f, row, st.subtotalMoney, 7, 8); err != nil {
			return nil, err
		}
		row++
	}

	row++
	totals := [][2]any{
		{"Sub Total", b.Totals.SubTotal},
		{"Total Margin", b.Totals.TotalMargin},
		{"Total Amount", b.Totals.TotalAmount},
	}
	for _, kv := range totals {
		label, _ := excelize.CoordinatesToCellName(7, row)
		value, _ := excelize.CoordinatesToCellName(8, row)
		if err := f.SetCellValue(sheetName, label, kv[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, value, kv[1]); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, label, label, st.label); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, value, value, st.subtotalMoney); err != nil {
			return nil, err
		}
		row++
	}

	if err := f.SetColWidth(sheetName, "A", "C", 24); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "D", "H", 14); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

type styles struct {
	header, label, money, subtotal, subtotalMoney int
}

func newStyles(f *excelize.File) (styles, error) {
	var (
		s   styles
		err error
	)
	moneyFmt := moneyFormat
	border := []excelize.Border{
		{Type: "left", Color: "D9D9D9", Style: 1},
		{Type: "top", Color: "D9D9D9", Style: 1},
		{Type: "bottom", Color: "D9D9D9", Style: 1},
		{Type: "right", Color: "D9D9D9", Style: 1},
	}

	if s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	}); err != nil {
		return s, err
	}
	if s.label, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return s, err
	}
	if s.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt, Border: border}); err != nil {
		return s, err
	}
	subtotalFill := excelize.Fill{Type: "pattern", Color: []string{"F2F2F2"}, Pattern: 1}
	if s.subtotal, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, Fill: subtotalFill, Border: border}); err != nil {
		return s, err
	}
	if s.subtotalMoney, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Fill:         subtotalFill,
		Border:       border,
		CustomNumFmt: &moneyFmt,
	}); err != nil {
		return s, err
	}
	return s, nil
}

// setRow writes vals from column A. A zero style leaves the default.
func setRow(f *excelize.File, row, style int, vals ...any) error {
	start, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(sheetName, start, &vals); err != nil {
		return err
	}
	if style == 0 {
		return nil
	}
	end, _ := excelize.CoordinatesToCellName(len(vals), row)
	return f.SetCellStyle(sheetName, start, end, style)
}

func styleMoney(f *excelize.File, row, style, fromCol, toCol int) error {
	from, _ := excelize.CoordinatesToCellName(fromCol, row)
	to, _ := excelize.CoordinatesToCellName(toCol, row)
	return f.SetCellStyle(sheetName, from, to, style)
}
