package request

import (
	"estimaflow/internal/domain/entities"
)

type LineItemRequest struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Margin      float64 `json:"margin"`
}

type SectionRequest struct {
	ID    string            `json:"id"`
	Title string            `json:"title"`
	Items []LineItemRequest `json:"items"`
}

// EstimationRequest is the body of create and full-replace calls. Field rules
// are enforced by the use case so every problem is reported at once.
type EstimationRequest struct {
	Name     string           `json:"name"`
	Customer string           `json:"customer"`
	Date     string           `json:"date"`
	Sections []SectionRequest `json:"sections"`
}

func (r EstimationRequest) ToEntity() entities.Estimation {
	e := entities.Estimation{
		Name:     r.Name,
		Customer: r.Customer,
		Date:     r.Date,
		Sections: make([]entities.Section, 0, len(r.Sections)),
	}
	for _, s := range r.Sections {
		sec := entities.Section{ID: s.ID, Title: s.Title, Items: make([]entities.LineItem, 0, len(s.Items))}
		for _, it := range s.Items {
			sec.Items = append(sec.Items, entities.LineItem{
				ID:            it.ID,
				Title:         it.Title,
				Description:   it.Description,
				Unit:          it.Unit,
				Quantity:      it.Quantity,
				UnitPrice:     it.Price,
				MarginPercent: it.Margin,
			})
		}
		e.Sections = append(e.Sections, sec)
	}
	return e
}

type PreviewItemRequest struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Quantity LenientNumber `json:"quantity"`
	Price    LenientNumber `json:"price"`
	Margin   LenientNumber `json:"margin"`
}

type PreviewSectionRequest struct {
	ID    string               `json:"id"`
	Title string               `json:"title"`
	Items []PreviewItemRequest `json:"items"`
}

// PricingPreviewRequest carries the estimation builder's in-progress sections.
type PricingPreviewRequest struct {
	Sections []PreviewSectionRequest `json:"sections"`
}

func (r PricingPreviewRequest) ToSections() []entities.Section {
	out := make([]entities.Section, 0, len(r.Sections))
	for _, s := range r.Sections {
		sec := entities.Section{ID: s.ID, Title: s.Title, Items: make([]entities.LineItem, 0, len(s.Items))}
		for _, it := range s.Items {
			sec.Items = append(sec.Items, entities.LineItem{
				ID:            it.ID,
				Title:         it.Title,
				Quantity:      it.Quantity.Float64(),
				UnitPrice:     it.Price.Float64(),
				MarginPercent: it.Margin.Float64(),
			})
		}
		out = append(out, sec)
	}
	return out
}
