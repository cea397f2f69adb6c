package request

import "estimaflow/internal/domain/entities"

type ProjectRequest struct {
	Customer      string `json:"customer"`
	RefNumber     string `json:"refNumber"`
	ProjectName   string `json:"projectName"`
	ProjectNumber string `json:"projectNumber"`
	Manager       string `json:"manager"`
	AreaLocation  string `json:"areaLocation"`
	Address       string `json:"address"`
	DueDate       string `json:"dueDate"`
	Contact       string `json:"contact"`
	Staff         string `json:"staff"`
	Status        string `json:"status"`
	Email         string `json:"email"`
}

func (r ProjectRequest) ToEntity() entities.Project {
	return entities.Project{
		Customer:      r.Customer,
		RefNumber:     r.RefNumber,
		ProjectName:   r.ProjectName,
		ProjectNumber: r.ProjectNumber,
		Manager:       r.Manager,
		AreaLocation:  r.AreaLocation,
		Address:       r.Address,
		DueDate:       r.DueDate,
		Contact:       r.Contact,
		Staff:         r.Staff,
		Status:        entities.ProjectStatus(r.Status),
		Email:         r.Email,
	}
}
