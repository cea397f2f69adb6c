package request

import (
	"encoding/json"
	"errors"
	"net/url"
	"testing"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/domain/query"
)

func TestLenientNumber_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`12.5`, 12.5},
		{`-3`, -3},
		{`"7.25"`, 7.25},
		{`" 4 "`, 4},
		{`""`, 0},
		{`null`, 0},
		{`"abc"`, 0},
		{`true`, 0},
		{`{}`, 0},
		{`[1]`, 0},
		{`"NaN"`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var body struct {
				V LenientNumber `json:"v"`
			}
			if err := json.Unmarshal([]byte(`{"v":`+tc.in+`}`), &body); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if body.V.Float64() != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, body.V)
			}
		})
	}

	t.Run("absent", func(t *testing.T) {
		var it PreviewItemRequest
		if err := json.Unmarshal([]byte(`{"title":"x"}`), &it); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.Quantity != 0 || it.Price != 0 || it.Margin != 0 {
			t.Fatalf("expected zeros, got %+v", it)
		}
	})
}

func TestPricingPreviewRequest_ToSections(t *testing.T) {
	var r PricingPreviewRequest
	body := `{"sections":[{"title":"A","items":[{"quantity":"10","price":50,"margin":null}]}]}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := r.ToSections()
	if len(s) != 1 || len(s[0].Items) != 1 {
		t.Fatalf("unexpected sections: %+v", s)
	}
	it := s[0].Items[0]
	if it.Quantity != 10 || it.UnitPrice != 50 || it.MarginPercent != 0 {
		t.Fatalf("unexpected item: %+v", it)
	}
}

func TestEstimationRequest_ToEntity(t *testing.T) {
	r := EstimationRequest{
		Name: "Q", Customer: "Acme", Date: "2024-01-01",
		Sections: []SectionRequest{{Title: "S", Items: []LineItemRequest{{Title: "Desk", Unit: "pcs", Quantity: 2, Price: 3, Margin: 4}}}},
	}
	e := r.ToEntity()
	it := e.Sections[0].Items[0]
	if it.UnitPrice != 3 || it.MarginPercent != 4 || it.Quantity != 2 {
		t.Fatalf("unexpected item: %+v", it)
	}
}

func TestParseEstimationQuery(t *testing.T) {
	v := url.Values{"q": {"office"}, "customer": {"Acme"}, "date_gte": {"2024-01-01"}, "date_lte": {"2024-12-31"}, "_page": {"2"}, "_limit": {"500"}}
	f, p, err := ParseEstimationQuery(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Search != "office" || f.Customer != "Acme" || f.Date.From != "2024-01-01" || f.Date.To != "2024-12-31" {
		t.Fatalf("unexpected filter: %+v", f)
	}
	if p.Number != 2 || p.Size != query.MaxPageSize {
		t.Fatalf("unexpected page: %+v", p)
	}

	if _, _, err := ParseEstimationQuery(url.Values{"_page": {"zero"}}); !errors.Is(err, ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestParseProjectQuery(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		v := url.Values{
			"status":       {"Completed", "On Hold,In Transit"},
			"dueDate_gte":  {"2024-01-01"},
			"due_date_lte": {"2024-02-01"},
			"_sort":        {"dueDate"},
			"_order":       {"DESC"},
		}
		opts, err := ParseProjectQuery(v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []entities.ProjectStatus{entities.ProjectStatusCompleted, entities.ProjectStatusOnHold, entities.ProjectStatusInTransit}
		if len(opts.Filter.Statuses) != 3 {
			t.Fatalf("unexpected statuses: %v", opts.Filter.Statuses)
		}
		for i := range want {
			if opts.Filter.Statuses[i] != want[i] {
				t.Fatalf("unexpected statuses: %v", opts.Filter.Statuses)
			}
		}
		if opts.Filter.DueDate.From != "2024-01-01" || opts.Filter.DueDate.To != "2024-02-01" {
			t.Fatalf("unexpected range: %+v", opts.Filter.DueDate)
		}
		if opts.SortField != "dueDate" || opts.SortDir != query.Desc {
			t.Fatalf("unexpected sort: %q %q", opts.SortField, opts.SortDir)
		}
		if opts.Page.Number != 1 || opts.Page.Size != 10 {
			t.Fatalf("unexpected page: %+v", opts.Page)
		}
	})

	for name, v := range map[string]url.Values{
		"unknown status": {"status": {"Lost"}},
		"unknown sort":   {"_sort": {"budget"}},
		"bad order":      {"_order": {"up"}},
		"bad limit":      {"_limit": {"-1"}},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseProjectQuery(v); !errors.Is(err, ErrInvalidQuery) {
				t.Fatalf("expected ErrInvalidQuery, got %v", err)
			}
		})
	}
}
