package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"estimaflow/internal/domain/entities"
	mock_interfaces "estimaflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Summary(t *testing.T) {
	base := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	t.Run("aggregates stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		estimations := mock_interfaces.NewMockIEstimationRepository(ctrl)
		uc := NewDashboardUseCase(projects, estimations)
		uc.now = func() time.Time { return base }

		projects.EXPECT().List(gomock.Any()).Return([]entities.Project{
			{ID: "p1", ProjectName: "Tower", Status: entities.ProjectStatusCompleted, CreatedAt: base, UpdatedAt: base.Add(time.Hour)},
			{ID: "p2", ProjectName: "Bridge", Status: entities.ProjectStatusProcessing, CreatedAt: base, UpdatedAt: base},
			{ID: "p3", ProjectName: "Depot", Status: entities.ProjectStatusInTransit, CreatedAt: base, UpdatedAt: base},
		}, nil)
		estimations.EXPECT().List(gomock.Any()).Return([]entities.Estimation{
			{ID: "e1", Name: "Quote A", Date: "2024-03-05", CreatedAt: base, UpdatedAt: base.Add(2 * time.Hour), Sections: []entities.Section{{Items: []entities.LineItem{{Quantity: 10, UnitPrice: 50, MarginPercent: 10}}}}},
			{ID: "e2", Name: "Quote B", Date: "2024-03-20", CreatedAt: base, UpdatedAt: base},
			{ID: "e3", Name: "Quote C", Date: "2023-03-20", CreatedAt: base, UpdatedAt: base},
		}, nil)

		s, err := uc.Summary(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Stats != (DashboardStats{TotalProjects: 3, TotalEstimations: 3, ActiveProjects: 2, CompletedProjects: 1}) {
			t.Fatalf("unexpected stats: %+v", s.Stats)
		}
		if len(s.MonthlyEstimations) != 12 || s.MonthlyEstimations[2].Name != "Mar" || s.MonthlyEstimations[2].Value != 2 {
			t.Fatalf("unexpected monthly data: %+v", s.MonthlyEstimations)
		}
		if len(s.ProjectStatus) != 5 || s.ProjectStatus[0].Count != 1 || s.ProjectStatus[0].Color != "#4caf50" {
			t.Fatalf("unexpected status breakdown: %+v", s.ProjectStatus)
		}
		if s.EstimationsValue != 550 {
			t.Fatalf("expected value 550, got %v", s.EstimationsValue)
		}
		if len(s.RecentActivity) != 5 {
			t.Fatalf("expected 5 activities, got %d", len(s.RecentActivity))
		}
		first, second := s.RecentActivity[0], s.RecentActivity[1]
		if first.ID != "e1" || first.Description != "Estimation updated" || first.Type != ActivityEstimation {
			t.Fatalf("unexpected first activity: %+v", first)
		}
		if second.ID != "p1" || second.Status != ActivityCompleted {
			t.Fatalf("unexpected second activity: %+v", second)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewDashboardUseCase(projects, nil)
		projects.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Summary(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
