package entities

import "time"

// Estimation is a quote document composed of ordered sections of priced line items.
//
// Storage model:
//   - PK: id (assigned on create, immutable afterwards)
//   - sections are persisted inside the aggregate; there is no per-item table
//
// Updates replace the whole aggregate. Totals are never stored, they are derived
// by the pricing package on every read.
type Estimation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Customer  string    `json:"customer"`
	Date      string    `json:"date"`
	Sections  []Section `json:"sections"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Section groups related line items. Item order matters for display only.
type Section struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Items []LineItem `json:"items"`
}

// LineItem is one priced unit of work.
//
// UnitPrice and MarginPercent travel as "price" and "margin" on the wire.
type LineItem struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Unit          string  `json:"unit"`
	Quantity      float64 `json:"quantity"`
	UnitPrice     float64 `json:"price"`
	MarginPercent float64 `json:"margin"`
}

// Clone returns a deep copy so stores never share section slices with callers.
func (e Estimation) Clone() Estimation {
	out := e
	if e.Sections == nil {
		return out
	}
	out.Sections = make([]Section, len(e.Sections))
	for i, s := range e.Sections {
		out.Sections[i] = s
		if s.Items != nil {
			out.Sections[i].Items = append([]LineItem(nil), s.Items...)
		}
	}
	return out
}

// ItemCount returns the number of line items across all sections.
func (e Estimation) ItemCount() int {
	n := 0
	for _, s := range e.Sections {
		n += len(s.Items)
	}
	return n
}
