package repository

import (
	"context"
	"fmt"
	"time"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/usecase/interfaces"
)

// SeedDemoData fills empty stores with a handful of projects and estimations
// dated around now, so a fresh dashboard has something to show.
func SeedDemoData(ctx context.Context, estimations interfaces.IEstimationRepository, projects interfaces.IProjectRepository, now time.Time) error {
	now = now.UTC()

	existing, err := projects.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		for i, p := range demoProjects(now) {
			p.ID = fmt.Sprintf("demo-project-%d", i+1)
			p.CreatedAt = now.Add(time.Duration(i) * time.Minute)
			p.UpdatedAt = p.CreatedAt
			if _, err := projects.Create(ctx, p); err != nil {
				return fmt.Errorf("seed project %s: %w", p.ID, err)
			}
		}
	}

	current, err := estimations.List(ctx)
	if err != nil {
		return err
	}
	if len(current) == 0 {
		for i, e := range demoEstimations(now) {
			e.ID = fmt.Sprintf("demo-estimation-%d", i+1)
			e.CreatedAt = now.Add(time.Duration(i) * time.Minute)
			e.UpdatedAt = e.CreatedAt
			if _, err := estimations.Create(ctx, e); err != nil {
				return fmt.Errorf("seed estimation %s: %w", e.ID, err)
			}
		}
	}
	return nil
}

func demoProjects(now time.Time) []entities.Project {
	due := func(days int) string { return now.AddDate(0, 0, days).Format("2006-01-02") }
	return []entities.Project{
		{Customer: "Northwind Traders", RefNumber: "NW-1001", ProjectName: "Warehouse Retrofit", ProjectNumber: "P-001", Manager: "Alex Morgan", AreaLocation: "North", Address: "12 Harbor Rd", DueDate: due(30), Contact: "+1 555 0100", Staff: "6", Status: entities.ProjectStatusProcessing, Email: "ops@northwind.test"},
		{Customer: "Contoso Ltd", RefNumber: "CT-2002", ProjectName: "Office Fit-out", ProjectNumber: "P-002", Manager: "Sam Rivera", AreaLocation: "Downtown", Address: "400 Main St", DueDate: due(-10), Contact: "+1 555 0101", Staff: "4", Status: entities.ProjectStatusCompleted, Email: "facilities@contoso.test"},
		{Customer: "Fabrikam", RefNumber: "FB-3003", ProjectName: "Solar Canopy", ProjectNumber: "P-003", Manager: "Jordan Lee", AreaLocation: "East", Address: "9 Sun Ave", DueDate: due(60), Contact: "+1 555 0102", Staff: "3", Status: entities.ProjectStatusOnHold, Email: "energy@fabrikam.test"},
		{Customer: "Tailspin Toys", RefNumber: "TT-4004", ProjectName: "Showroom Lighting", ProjectNumber: "P-004", Manager: "Casey Kim", AreaLocation: "West", Address: "77 Market Sq", DueDate: due(14), Contact: "+1 555 0103", Staff: "2", Status: entities.ProjectStatusInTransit, Email: "store@tailspin.test"},
		{Customer: "Litware", RefNumber: "LW-5005", ProjectName: "Data Room Cooling", ProjectNumber: "P-005", Manager: "Robin Diaz", AreaLocation: "South", Address: "5 Server Ln", DueDate: due(-40), Contact: "+1 555 0104", Staff: "5", Status: entities.ProjectStatusRejected, Email: "it@litware.test"},
	}
}

func demoEstimations(now time.Time) []entities.Estimation {
	date := func(days int) string { return now.AddDate(0, 0, days).Format("2006-01-02") }
	return []entities.Estimation{
		{
			Name: "Warehouse retrofit phase 1", Customer: "Northwind Traders", Date: date(-20),
			Sections: []entities.Section{
				{ID: "demo-section-1", Title: "Electrical", Items: []entities.LineItem{
					{ID: "demo-item-1", Title: "LED high bay", Unit: "pcs", Quantity: 40, UnitPrice: 120, MarginPercent: 15},
					{ID: "demo-item-2", Title: "Cabling", Unit: "m", Quantity: 350, UnitPrice: 2.5, MarginPercent: 10},
				}},
				{ID: "demo-section-2", Title: "Labour", Items: []entities.LineItem{
					{ID: "demo-item-3", Title: "Electrician", Unit: "h", Quantity: 80, UnitPrice: 45, MarginPercent: 20},
				}},
			},
		},
		{
			Name: "Office fit-out", Customer: "Contoso Ltd", Date: date(-5),
			Sections: []entities.Section{
				{ID: "demo-section-3", Title: "Furniture", Items: []entities.LineItem{
					{ID: "demo-item-4", Title: "Desk", Unit: "pcs", Quantity: 10, UnitPrice: 50, MarginPercent: 10},
					{ID: "demo-item-5", Title: "Chair", Unit: "pcs", Quantity: 5, UnitPrice: 20, MarginPercent: 0},
				}},
			},
		},
	}
}
