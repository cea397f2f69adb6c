package export

import (
	"testing"

	"estimaflow/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestEstimationWorkbook_Generate(t *testing.T) {
	e := entities.Estimation{
		ID:       "e1",
		Name:     "Office fit-out",
		Customer: "Acme",
		Date:     "2024-05-01",
		Sections: []entities.Section{{Title: "Furniture", Items: []entities.LineItem{
			{Title: "Desk", Unit: "pcs", Quantity: 10, UnitPrice: 50, MarginPercent: 10},
			{Title: "Chair", Unit: "pcs", Quantity: 5, UnitPrice: 20, MarginPercent: 0},
		}}},
	}

	w := NewEstimationWorkbook()
	buf, err := w.Generate(e)
	require.NoError(t, err)
	assert.Equal(t, "estimation-e1.xlsx", w.FileName(e))

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	raw := excelize.Options{RawCellValue: true}
	cell := func(ref string) string {
		v, err := f.GetCellValue(sheetName, ref, raw)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Office fit-out", cell("B1"))
	assert.Equal(t, "Acme", cell("B2"))
	assert.Equal(t, "Section", cell("A5"))
	assert.Equal(t, "Desk", cell("B6"))
	assert.Equal(t, "550", cell("H6"))
	assert.Equal(t, "100", cell("H7"))
	assert.Equal(t, "Subtotal Furniture", cell("A8"))
	assert.Equal(t, "650", cell("H8"))
	assert.Equal(t, "Sub Total", cell("G10"))
	assert.Equal(t, "600", cell("H10"))
	assert.Equal(t, "50", cell("H11"))
	assert.Equal(t, "650", cell("H12"))
}

func TestEstimationWorkbook_EmptyEstimation(t *testing.T) {
	buf, err := NewEstimationWorkbook().Generate(entities.Estimation{ID: "x"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(sheetName, "H9", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "0", v)
}
