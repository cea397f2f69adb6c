package pricing

import "estimaflow/internal/domain/entities"

// ItemBreakdown is the priced view of one line item.
type ItemBreakdown struct {
	ID     string  `json:"id,omitempty"`
	Title  string  `json:"title,omitempty"`
	Base   float64 `json:"base"`
	Margin float64 `json:"margin"`
	Total  float64 `json:"total"`
}

// SectionBreakdown is the priced view of a section, items kept in order.
type SectionBreakdown struct {
	ID       string          `json:"id,omitempty"`
	Title    string          `json:"title,omitempty"`
	Items    []ItemBreakdown `json:"items"`
	SubTotal float64         `json:"subTotal"`
	Margin   float64         `json:"margin"`
	Total    float64         `json:"total"`
}

// EstimationBreakdown is everything the estimation builder renders after an edit.
type EstimationBreakdown struct {
	Sections []SectionBreakdown `json:"sections"`
	Totals   Totals             `json:"totals"`
}

// Breakdown prices every item and section and the estimation as a whole.
func Breakdown(sections []entities.Section) EstimationBreakdown {
	out := EstimationBreakdown{Sections: make([]SectionBreakdown, 0, len(sections))}
	for _, s := range sections {
		sb := SectionBreakdown{ID: s.ID, Title: s.Title, Items: make([]ItemBreakdown, 0, len(s.Items))}
		for _, it := range s.Items {
			sb.Items = append(sb.Items, ItemBreakdown{
				ID:     it.ID,
				Title:  it.Title,
				Base:   ItemBase(it.Quantity, it.UnitPrice),
				Margin: ItemMarginAmount(it.Quantity, it.UnitPrice, it.MarginPercent),
				Total:  ItemTotal(it.Quantity, it.UnitPrice, it.MarginPercent),
			})
		}
		sum := sectionSums(s.Items)
		sb.SubTotal = sum.Base.InexactFloat64()
		sb.Margin = sum.Margin.InexactFloat64()
		sb.Total = sum.Total.InexactFloat64()
		out.Sections = append(out.Sections, sb)
	}
	out.Totals = EstimationTotals(sections)
	return out
}
