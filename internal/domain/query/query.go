// Package query holds the list filtering, sorting and paging rules shared by
// every store. Stores return full record sets; the rules live here once.
package query

import (
	"sort"
	"strings"

	"estimaflow/internal/domain/entities"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page selects a 1-based page of Size records.
type Page struct {
	Number int
	Size   int
}

// Normalize applies defaults and bounds.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = DefaultPage
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Result is one page of records plus the unpaged total.
type Result[T any] struct {
	Data     []T
	Total    int
	Page     int
	PageSize int
}

// Paginate cuts one page out of records. Pages past the end are empty.
func Paginate[T any](records []T, p Page) Result[T] {
	p = p.Normalize()
	res := Result[T]{Data: []T{}, Total: len(records), Page: p.Number, PageSize: p.Size}
	// compare page indexes first; (Number-1)*Size overflows for huge pages
	if p.Number-1 >= (len(records)+p.Size-1)/p.Size {
		return res
	}
	start := (p.Number - 1) * p.Size
	end := start + p.Size
	if end > len(records) {
		end = len(records)
	}
	res.Data = append(res.Data, records[start:end]...)
	return res
}

// DateRange is an inclusive YYYY-MM-DD range. It only applies when both ends are set.
type DateRange struct {
	From string
	To   string
}

func (r DateRange) active() bool {
	return r.From != "" && r.To != ""
}

// Contains reports whether date falls in the range; an inactive range contains everything.
func (r DateRange) Contains(date string) bool {
	if !r.active() {
		return true
	}
	return date >= r.From && date <= r.To
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// EstimationFilter narrows an estimation list.
type EstimationFilter struct {
	Search   string
	Customer string
	Date     DateRange
}

// Match reports whether e passes every set criterion.
func (f EstimationFilter) Match(e entities.Estimation) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !containsFold(e.Name, q) && !containsFold(e.Customer, q) {
			return false
		}
	}
	if c := strings.TrimSpace(f.Customer); c != "" && !strings.EqualFold(e.Customer, c) {
		return false
	}
	return f.Date.Contains(e.Date)
}

// FilterEstimations keeps matching estimations, newest date first, ties by name.
func FilterEstimations(all []entities.Estimation, f EstimationFilter) []entities.Estimation {
	out := make([]entities.Estimation, 0, len(all))
	for _, e := range all {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ProjectFilter narrows a project list.
type ProjectFilter struct {
	Search   string
	Statuses []entities.ProjectStatus
	DueDate  DateRange
}

// Match reports whether p passes every set criterion.
func (f ProjectFilter) Match(p entities.Project) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !containsFold(p.Customer, q) && !containsFold(p.ProjectName, q) && !containsFold(p.RefNumber, q) {
			return false
		}
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if p.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return f.DueDate.Contains(p.DueDate)
}

// FilterProjects keeps matching projects in input order.
func FilterProjects(all []entities.Project, f ProjectFilter) []entities.Project {
	out := make([]entities.Project, 0, len(all))
	for _, p := range all {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// SortDirection is asc or desc.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

var projectSortKeys = map[string]func(entities.Project) string{
	"customer":    func(p entities.Project) string { return p.Customer },
	"projectName": func(p entities.Project) string { return p.ProjectName },
	"refNumber":   func(p entities.Project) string { return p.RefNumber },
	"dueDate":     func(p entities.Project) string { return p.DueDate },
	"status":      func(p entities.Project) string { return string(p.Status) },
	"manager":     func(p entities.Project) string { return p.Manager },
}

// ValidProjectSortField reports whether field can be passed to SortProjects.
func ValidProjectSortField(field string) bool {
	_, ok := projectSortKeys[field]
	return ok
}

// SortProjects returns a sorted copy. Unknown fields leave the order unchanged.
func SortProjects(projects []entities.Project, field string, dir SortDirection) []entities.Project {
	out := append([]entities.Project(nil), projects...)
	key, ok := projectSortKeys[field]
	if !ok {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := key(out[i]), key(out[j])
		if dir == Desc {
			return a > b
		}
		return a < b
	})
	return out
}
