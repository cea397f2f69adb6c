package entities

import "time"

// ProjectStatus is the workflow state shown in the project list.
type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusProcessing ProjectStatus = "Processing"
	ProjectStatusRejected   ProjectStatus = "Rejected"
	ProjectStatusOnHold     ProjectStatus = "On Hold"
	ProjectStatusInTransit  ProjectStatus = "In Transit"
)

const defaultStatusColor = "#757575"

var statusColors = map[ProjectStatus]string{
	ProjectStatusCompleted:  "#4caf50",
	ProjectStatusProcessing: "#2196f3",
	ProjectStatusRejected:   "#f44336",
	ProjectStatusOnHold:     "#ff9800",
	ProjectStatusInTransit:  "#9c27b0",
}

// ProjectStatuses lists every known status in display order.
func ProjectStatuses() []ProjectStatus {
	return []ProjectStatus{
		ProjectStatusCompleted,
		ProjectStatusProcessing,
		ProjectStatusRejected,
		ProjectStatusOnHold,
		ProjectStatusInTransit,
	}
}

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	_, ok := statusColors[s]
	return ok
}

// Active reports whether the project is still being worked on.
func (s ProjectStatus) Active() bool {
	return s == ProjectStatusProcessing || s == ProjectStatusInTransit
}

// Color returns the badge color for the status, grey for unknown values.
func (s ProjectStatus) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return defaultStatusColor
}

// Project is a customer engagement tracked by the dashboard.
//
// DueDate uses the YYYY-MM-DD layout so lexical and chronological order agree.
type Project struct {
	ID            string        `json:"id"`
	Customer      string        `json:"customer"`
	RefNumber     string        `json:"refNumber"`
	ProjectName   string        `json:"projectName"`
	ProjectNumber string        `json:"projectNumber"`
	Manager       string        `json:"manager"`
	AreaLocation  string        `json:"areaLocation"`
	Address       string        `json:"address"`
	DueDate       string        `json:"dueDate"`
	Contact       string        `json:"contact"`
	Staff         string        `json:"staff"`
	Status        ProjectStatus `json:"status"`
	Email         string        `json:"email"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
