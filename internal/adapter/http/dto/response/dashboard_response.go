package response

import (
	"time"

	"estimaflow/internal/usecase"
	"estimaflow/pkg/money"
)

type DashboardStatsResponse struct {
	TotalProjects     int `json:"total_projects"`
	TotalEstimations  int `json:"total_estimations"`
	ActiveProjects    int `json:"active_projects"`
	CompletedProjects int `json:"completed_projects"`
}

type MonthCountResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Color  string `json:"color"`
}

type ActivityResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
}

type DashboardResponse struct {
	Stats                     DashboardStatsResponse `json:"stats"`
	MonthlyEstimations        []MonthCountResponse   `json:"monthly_estimations"`
	ProjectStatus             []StatusCountResponse  `json:"project_status"`
	EstimationsValue          float64                `json:"estimations_value"`
	EstimationsValueFormatted string                 `json:"estimations_value_formatted"`
	RecentActivity            []ActivityResponse     `json:"recent_activity"`
}

func FromDashboard(s usecase.DashboardSummary) DashboardResponse {
	out := DashboardResponse{
		Stats: DashboardStatsResponse{
			TotalProjects:     s.Stats.TotalProjects,
			TotalEstimations:  s.Stats.TotalEstimations,
			ActiveProjects:    s.Stats.ActiveProjects,
			CompletedProjects: s.Stats.CompletedProjects,
		},
		MonthlyEstimations:        make([]MonthCountResponse, 0, len(s.MonthlyEstimations)),
		ProjectStatus:             make([]StatusCountResponse, 0, len(s.ProjectStatus)),
		EstimationsValue:          s.EstimationsValue,
		EstimationsValueFormatted: money.Format(s.EstimationsValue),
		RecentActivity:            make([]ActivityResponse, 0, len(s.RecentActivity)),
	}
	for _, m := range s.MonthlyEstimations {
		out.MonthlyEstimations = append(out.MonthlyEstimations, MonthCountResponse{Name: m.Name, Value: m.Value})
	}
	for _, st := range s.ProjectStatus {
		out.ProjectStatus = append(out.ProjectStatus, StatusCountResponse{Status: string(st.Status), Count: st.Count, Color: st.Color})
	}
	for _, a := range s.RecentActivity {
		out.RecentActivity = append(out.RecentActivity, ActivityResponse(a))
	}
	return out
}
