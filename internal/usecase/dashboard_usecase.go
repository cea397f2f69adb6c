package usecase

import (
	"context"
	"estimaflow/internal/domain/entities"
	"estimaflow/internal/domain/pricing"
	"estimaflow/internal/usecase/interfaces"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const recentActivityLimit = 5

// Activity kinds and states shown in the dashboard feed.
const (
	ActivityProject    = "project"
	ActivityEstimation = "estimation"

	ActivityCompleted  = "completed"
	ActivityInProgress = "in-progress"
	ActivityPending    = "pending"
)

type DashboardStats struct {
	TotalProjects     int
	TotalEstimations  int
	ActiveProjects    int
	CompletedProjects int
}

type MonthCount struct {
	Name  string
	Value int
}

type StatusCount struct {
	Status entities.ProjectStatus
	Count  int
	Color  string
}

type Activity struct {
	ID          string
	Type        string
	Title       string
	Description string
	Timestamp   time.Time
	Status      string
}

// DashboardSummary is derived from the stores on every request.
type DashboardSummary struct {
	Stats              DashboardStats
	MonthlyEstimations []MonthCount
	ProjectStatus      []StatusCount
	EstimationsValue   float64
	RecentActivity     []Activity
}

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	projects    interfaces.IProjectRepository
	estimations interfaces.IEstimationRepository
	now         func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(projects interfaces.IProjectRepository, estimations interfaces.IEstimationRepository) *DashboardUseCase {
	return &DashboardUseCase{projects: projects, estimations: estimations, now: time.Now}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	projects, err := u.projects.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	estimations, err := u.estimations.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	out := DashboardSummary{
		Stats: DashboardStats{
			TotalProjects:    len(projects),
			TotalEstimations: len(estimations),
		},
	}

	byStatus := make(map[entities.ProjectStatus]int)
	for _, p := range projects {
		byStatus[p.Status]++
		if p.Status.Active() {
			out.Stats.ActiveProjects++
		}
		if p.Status == entities.ProjectStatusCompleted {
			out.Stats.CompletedProjects++
		}
	}
	for _, s := range entities.ProjectStatuses() {
		out.ProjectStatus = append(out.ProjectStatus, StatusCount{Status: s, Count: byStatus[s], Color: s.Color()})
	}

	year := u.now().Year()
	months := make([]int, 12)
	value := decimal.Zero
	for _, e := range estimations {
		value = value.Add(pricing.EstimationTotalsDecimal(e.Sections).TotalAmount)
		d, err := time.Parse(dateLayout, e.Date)
		if err != nil || d.Year() != year {
			continue
		}
		months[d.Month()-1]++
	}
	for i, n := range months {
		out.MonthlyEstimations = append(out.MonthlyEstimations, MonthCount{Name: time.Month(i + 1).String()[:3], Value: n})
	}
	out.EstimationsValue = value.InexactFloat64()
	out.RecentActivity = recentActivity(projects, estimations)

	return out, nil
}

func recentActivity(projects []entities.Project, estimations []entities.Estimation) []Activity {
	feed := make([]Activity, 0, len(projects)+len(estimations))
	for _, p := range projects {
		a := Activity{
			ID:          p.ID,
			Type:        ActivityProject,
			Title:       p.ProjectName,
			Description: describe("Project", p.CreatedAt, p.UpdatedAt),
			Timestamp:   p.UpdatedAt,
			Status:      ActivityPending,
		}
		switch {
		case p.Status == entities.ProjectStatusCompleted:
			a.Status = ActivityCompleted
		case p.Status.Active():
			a.Status = ActivityInProgress
		}
		feed = append(feed, a)
	}
	for _, e := range estimations {
		feed = append(feed, Activity{
			ID:          e.ID,
			Type:        ActivityEstimation,
			Title:       e.Name,
			Description: describe("Estimation", e.CreatedAt, e.UpdatedAt),
			Timestamp:   e.UpdatedAt,
			Status:      ActivityPending,
		})
	}
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Timestamp.After(feed[j].Timestamp)
	})
	if len(feed) > recentActivityLimit {
		feed = feed[:recentActivityLimit]
	}
	return feed
}

func describe(kind string, created, updated time.Time) string {
	if updated.After(created) {
		return kind + " updated"
	}
	return kind + " created"
}
