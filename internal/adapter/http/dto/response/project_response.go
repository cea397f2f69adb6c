package response

import (
	"time"

	"estimaflow/internal/domain/entities"
)

type ProjectResponse struct {
	ID            string    `json:"id"`
	Customer      string    `json:"customer"`
	RefNumber     string    `json:"refNumber"`
	ProjectName   string    `json:"projectName"`
	ProjectNumber string    `json:"projectNumber"`
	Manager       string    `json:"manager"`
	AreaLocation  string    `json:"areaLocation"`
	Address       string    `json:"address"`
	DueDate       string    `json:"dueDate"`
	Contact       string    `json:"contact"`
	Staff         string    `json:"staff"`
	Status        string    `json:"status"`
	StatusColor   string    `json:"statusColor"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Customer:      p.Customer,
		RefNumber:     p.RefNumber,
		ProjectName:   p.ProjectName,
		ProjectNumber: p.ProjectNumber,
		Manager:       p.Manager,
		AreaLocation:  p.AreaLocation,
		Address:       p.Address,
		DueDate:       p.DueDate,
		Contact:       p.Contact,
		Staff:         p.Staff,
		Status:        string(p.Status),
		StatusColor:   p.Status.Color(),
		Email:         p.Email,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromProjects(list []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProject(p))
	}
	return out
}

type StatusResponse struct {
	Status string `json:"status"`
	Color  string `json:"color"`
}

func ProjectStatuses() []StatusResponse {
	out := make([]StatusResponse, 0, len(entities.ProjectStatuses()))
	for _, s := range entities.ProjectStatuses() {
		out = append(out, StatusResponse{Status: string(s), Color: s.Color()})
	}
	return out
}
