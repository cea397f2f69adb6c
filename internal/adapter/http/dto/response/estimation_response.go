package response

import (
	"time"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/domain/pricing"
	"estimaflow/pkg/money"
)

type FormattedTotals struct {
	SubTotal    string `json:"subTotal"`
	TotalMargin string `json:"totalMargin"`
	TotalAmount string `json:"totalAmount"`
}

type TotalsResponse struct {
	SubTotal    float64         `json:"subTotal"`
	TotalMargin float64         `json:"totalMargin"`
	TotalAmount float64         `json:"totalAmount"`
	Formatted   FormattedTotals `json:"formatted"`
}

func FromTotals(t pricing.Totals) TotalsResponse {
	return TotalsResponse{
		SubTotal:    t.SubTotal,
		TotalMargin: t.TotalMargin,
		TotalAmount: t.TotalAmount,
		Formatted: FormattedTotals{
			SubTotal:    money.Format(t.SubTotal),
			TotalMargin: money.Format(t.TotalMargin),
			TotalAmount: money.Format(t.TotalAmount),
		},
	}
}

type EstimationResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Customer  string             `json:"customer"`
	Date      string             `json:"date"`
	Sections  []entities.Section `json:"sections"`
	Totals    TotalsResponse     `json:"totals"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// FromEstimation attaches freshly derived totals; nothing priced is stored.
func FromEstimation(e entities.Estimation) EstimationResponse {
	sections := e.Sections
	if sections == nil {
		sections = []entities.Section{}
	}
	return EstimationResponse{
		ID:        e.ID,
		Name:      e.Name,
		Customer:  e.Customer,
		Date:      e.Date,
		Sections:  sections,
		Totals:    FromTotals(pricing.EstimationTotals(e.Sections)),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func FromEstimations(list []entities.Estimation) []EstimationResponse {
	out := make([]EstimationResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEstimation(e))
	}
	return out
}

type ItemBreakdownResponse struct {
	ID             string  `json:"id,omitempty"`
	Title          string  `json:"title,omitempty"`
	Base           float64 `json:"base"`
	Margin         float64 `json:"margin"`
	Total          float64 `json:"total"`
	FormattedTotal string  `json:"formattedTotal"`
}

type SectionBreakdownResponse struct {
	ID                string                  `json:"id,omitempty"`
	Title             string                  `json:"title,omitempty"`
	Items             []ItemBreakdownResponse `json:"items"`
	SubTotal          float64                 `json:"subTotal"`
	Margin            float64                 `json:"margin"`
	Total             float64                 `json:"total"`
	FormattedSubTotal string                  `json:"formattedSubTotal"`
	FormattedMargin   string                  `json:"formattedMargin"`
	FormattedTotal    string                  `json:"formattedTotal"`
}

type BreakdownResponse struct {
	Sections []SectionBreakdownResponse `json:"sections"`
	Totals   TotalsResponse             `json:"totals"`
}

func FromBreakdown(b pricing.EstimationBreakdown) BreakdownResponse {
	out := BreakdownResponse{
		Sections: make([]SectionBreakdownResponse, 0, len(b.Sections)),
		Totals:   FromTotals(b.Totals),
	}
	for _, s := range b.Sections {
		sr := SectionBreakdownResponse{
			ID:                s.ID,
			Title:             s.Title,
			Items:             make([]ItemBreakdownResponse, 0, len(s.Items)),
			SubTotal:          s.SubTotal,
			Margin:            s.Margin,
			Total:             s.Total,
			FormattedSubTotal: money.Format(s.SubTotal),
			FormattedMargin:   money.Format(s.Margin),
			FormattedTotal:    money.Format(s.Total),
		}
		for _, it := range s.Items {
			sr.Items = append(sr.Items, ItemBreakdownResponse{
				ID:             it.ID,
				Title:          it.Title,
				Base:           it.Base,
				Margin:         it.Margin,
				Total:          it.Total,
				FormattedTotal: money.Format(it.Total),
			})
		}
		out.Sections = append(out.Sections, sr)
	}
	return out
}
