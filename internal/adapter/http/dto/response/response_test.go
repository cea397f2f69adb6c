package response

import (
	"testing"
	"time"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/domain/pricing"
	"estimaflow/internal/usecase"
)

func TestFromEstimation(t *testing.T) {
	e := entities.Estimation{
		ID: "e1",
		Sections: []entities.Section{{Title: "A", Items: []entities.LineItem{
			{Quantity: 10, UnitPrice: 50, MarginPercent: 10},
		}}},
	}
	res := FromEstimation(e)
	if res.Totals.TotalAmount != 550 || res.Totals.Formatted.TotalAmount != "$550.00" {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
	if res.Totals.Formatted.TotalMargin != "$50.00" {
		t.Fatalf("unexpected margin: %q", res.Totals.Formatted.TotalMargin)
	}

	empty := FromEstimation(entities.Estimation{ID: "e2"})
	if empty.Sections == nil || empty.Totals.Formatted.SubTotal != "$0.00" {
		t.Fatalf("unexpected empty response: %+v", empty)
	}
}

func TestFromBreakdown(t *testing.T) {
	b := pricing.Breakdown([]entities.Section{{Title: "A", Items: []entities.LineItem{
		{Quantity: 10, UnitPrice: 50, MarginPercent: 10},
		{Quantity: 5, UnitPrice: 20},
	}}})
	res := FromBreakdown(b)
	if len(res.Sections) != 1 || len(res.Sections[0].Items) != 2 {
		t.Fatalf("unexpected shape: %+v", res)
	}
	s := res.Sections[0]
	if s.FormattedTotal != "$650.00" || s.Items[0].FormattedTotal != "$550.00" || s.Items[1].FormattedTotal != "$100.00" {
		t.Fatalf("unexpected formatting: %+v", s)
	}
	if res.Totals.Formatted.SubTotal != "$600.00" {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
}

func TestFromProjectAndStatuses(t *testing.T) {
	p := FromProject(entities.Project{ID: "p1", Status: entities.ProjectStatusOnHold})
	if p.StatusColor != "#ff9800" || p.Status != "On Hold" {
		t.Fatalf("unexpected project: %+v", p)
	}
	st := ProjectStatuses()
	if len(st) != 5 || st[0].Status != "Completed" || st[0].Color != "#4caf50" {
		t.Fatalf("unexpected statuses: %+v", st)
	}
}

func TestFromDashboard(t *testing.T) {
	now := time.Now().UTC()
	res := FromDashboard(usecase.DashboardSummary{
		Stats:            usecase.DashboardStats{TotalProjects: 2},
		EstimationsValue: 1234.5,
		RecentActivity:   []usecase.Activity{{ID: "a", Timestamp: now}},
	})
	if res.EstimationsValueFormatted != "$1,234.50" || res.Stats.TotalProjects != 2 {
		t.Fatalf("unexpected dashboard: %+v", res)
	}
	if len(res.RecentActivity) != 1 || !res.RecentActivity[0].Timestamp.Equal(now) {
		t.Fatalf("unexpected activity: %+v", res.RecentActivity)
	}
	if res.MonthlyEstimations == nil || res.ProjectStatus == nil {
		t.Fatalf("expected empty slices, not nil")
	}
}
