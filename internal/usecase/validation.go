package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"estimaflow/internal/domain/entities"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidEstimation = errors.New("invalid estimation")
	ErrInvalidProject    = errors.New("invalid project")
)

// ValidationError lists every field problem found in one pass.
// errors.Is matches the kind it wraps (ErrInvalidEstimation, ErrInvalidProject).
type ValidationError struct {
	Kind     error
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

type problems []string

func (p *problems) add(field, msg string) {
	*p = append(*p, field+": "+msg)
}

func (p *problems) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		p.add(field, "is required")
	}
}

func (p *problems) nonNegative(field string, v float64) {
	if v < 0 {
		p.add(field, "must be >= 0")
	}
}

func (p *problems) date(field, value string) {
	if value == "" {
		return
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		p.add(field, "must be a YYYY-MM-DD date")
	}
}

func (p problems) err(kind error) error {
	if len(p) == 0 {
		return nil
	}
	return &ValidationError{Kind: kind, Problems: p}
}

// ValidateEstimation enforces what must hold before an estimation is persisted:
// header fields present, at least one section, each with at least one item, and
// non-negative quantities, prices and margins. Pricing itself never rejects input.
func ValidateEstimation(e entities.Estimation) error {
	var p problems
	p.required("name", e.Name)
	p.required("customer", e.Customer)
	p.required("date", e.Date)
	p.date("date", e.Date)

	if len(e.Sections) == 0 {
		p.add("sections", "at least one section is required")
	}
	for i, s := range e.Sections {
		prefix := fmt.Sprintf("sections[%d]", i)
		p.required(prefix+".title", s.Title)
		if len(s.Items) == 0 {
			p.add(prefix+".items", "at least one item is required")
		}
		for j, it := range s.Items {
			ip := fmt.Sprintf("%s.items[%d]", prefix, j)
			p.required(ip+".title", it.Title)
			p.required(ip+".unit", it.Unit)
			p.nonNegative(ip+".quantity", it.Quantity)
			p.nonNegative(ip+".price", it.UnitPrice)
			p.nonNegative(ip+".margin", it.MarginPercent)
		}
	}
	return p.err(ErrInvalidEstimation)
}

// ValidateProject checks the project form rules.
func ValidateProject(pr entities.Project) error {
	var p problems
	p.required("customer", pr.Customer)
	p.required("projectName", pr.ProjectName)
	p.required("refNumber", pr.RefNumber)
	if !pr.Status.Valid() {
		p.add("status", "must be one of the known statuses")
	}
	if pr.Email != "" && !strings.Contains(pr.Email, "@") {
		p.add("email", "must be a valid e-mail address")
	}
	p.date("dueDate", pr.DueDate)
	return p.err(ErrInvalidProject)
}
