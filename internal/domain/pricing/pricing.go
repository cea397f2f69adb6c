// Package pricing derives line item, section and estimation totals.
//
// Every function is pure. Inputs that are not finite numbers count as zero so a
// half-filled form always prices. Accumulation happens in fixed-point decimal and
// is converted to float64 only at the edges, which keeps sums of many items free
// of binary rounding drift.
package pricing

import (
	"math"

	"estimaflow/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Totals holds the grand totals of an estimation.
type Totals struct {
	SubTotal    float64 `json:"subTotal"`
	TotalMargin float64 `json:"totalMargin"`
	TotalAmount float64 `json:"totalAmount"`
}

// DecimalTotals is Totals before conversion to float64.
// TotalAmount always equals SubTotal.Add(TotalMargin).
type DecimalTotals struct {
	SubTotal    decimal.Decimal
	TotalMargin decimal.Decimal
	TotalAmount decimal.Decimal
}

// Float converts the exact totals for JSON and display.
func (t DecimalTotals) Float() Totals {
	return Totals{
		SubTotal:    t.SubTotal.InexactFloat64(),
		TotalMargin: t.TotalMargin.InexactFloat64(),
		TotalAmount: t.TotalAmount.InexactFloat64(),
	}
}

// ItemAmounts splits a line item into its pre-margin base, margin and total.
type ItemAmounts struct {
	Base   decimal.Decimal
	Margin decimal.Decimal
	Total  decimal.Decimal
}

func num(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// Item computes the exact amounts of one line item.
func Item(quantity, unitPrice, marginPercent float64) ItemAmounts {
	base := num(quantity).Mul(num(unitPrice))
	margin := base.Mul(num(marginPercent)).Shift(-2)
	return ItemAmounts{Base: base, Margin: margin, Total: base.Add(margin)}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ItemBase returns quantity * unitPrice.
func ItemBase(quantity, unitPrice float64) float64 {
	return finite(quantity) * finite(unitPrice)
}

// ItemTotal returns ItemBase + ItemMarginAmount, summed in float64 so the
// float parts always add up to the total exactly.
func ItemTotal(quantity, unitPrice, marginPercent float64) float64 {
	return ItemBase(quantity, unitPrice) + ItemMarginAmount(quantity, unitPrice, marginPercent)
}

// ItemMarginAmount returns the margin-only part of ItemTotal.
func ItemMarginAmount(quantity, unitPrice, marginPercent float64) float64 {
	return Item(quantity, unitPrice, marginPercent).Margin.InexactFloat64()
}

func lineItem(it entities.LineItem) ItemAmounts {
	return Item(it.Quantity, it.UnitPrice, it.MarginPercent)
}

func sectionSums(items []entities.LineItem) ItemAmounts {
	sum := ItemAmounts{Base: decimal.Zero, Margin: decimal.Zero, Total: decimal.Zero}
	for _, it := range items {
		a := lineItem(it)
		sum.Base = sum.Base.Add(a.Base)
		sum.Margin = sum.Margin.Add(a.Margin)
		sum.Total = sum.Total.Add(a.Total)
	}
	return sum
}

// SectionTotal sums ItemTotal over items. An empty section totals 0.
func SectionTotal(items []entities.LineItem) float64 {
	return sectionSums(items).Total.InexactFloat64()
}

// SectionMarginAmount sums ItemMarginAmount over items.
func SectionMarginAmount(items []entities.LineItem) float64 {
	return sectionSums(items).Margin.InexactFloat64()
}

// EstimationTotalsDecimal computes the exact grand totals.
func EstimationTotalsDecimal(sections []entities.Section) DecimalTotals {
	t := DecimalTotals{SubTotal: decimal.Zero, TotalMargin: decimal.Zero, TotalAmount: decimal.Zero}
	for _, s := range sections {
		sum := sectionSums(s.Items)
		t.SubTotal = t.SubTotal.Add(sum.Base)
		t.TotalMargin = t.TotalMargin.Add(sum.Margin)
		t.TotalAmount = t.TotalAmount.Add(sum.Total)
	}
	return t
}

// EstimationTotals computes subtotal, total margin and total amount across all sections.
func EstimationTotals(sections []entities.Section) Totals {
	return EstimationTotalsDecimal(sections).Float()
}

// Percentage returns value as a percentage of total, 0 when total is 0.
func Percentage(value, total float64) float64 {
	t := num(total)
	if t.IsZero() {
		return 0
	}
	return num(value).Mul(decimal.NewFromInt(100)).Div(t).InexactFloat64()
}

// Round rounds half away from zero to the given number of decimal places.
func Round(value float64, places int32) float64 {
	return num(value).Round(places).InexactFloat64()
}
