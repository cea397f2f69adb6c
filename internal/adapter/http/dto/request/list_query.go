package request

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/domain/query"
	"estimaflow/internal/usecase"
)

// ErrInvalidQuery is returned for malformed list query parameters.
var ErrInvalidQuery = errors.New("invalid query parameters")

// ParsePage reads json-server style _page and _limit.
func ParsePage(v url.Values) (query.Page, error) {
	var (
		p   query.Page
		err error
	)
	if p.Number, err = optionalInt(v, "_page"); err != nil {
		return query.Page{}, err
	}
	if p.Size, err = optionalInt(v, "_limit"); err != nil {
		return query.Page{}, err
	}
	return p.Normalize(), nil
}

// ParseEstimationQuery reads q, customer, date_gte and date_lte plus paging.
func ParseEstimationQuery(v url.Values) (query.EstimationFilter, query.Page, error) {
	page, err := ParsePage(v)
	if err != nil {
		return query.EstimationFilter{}, query.Page{}, err
	}
	f := query.EstimationFilter{
		Search:   v.Get("q"),
		Customer: v.Get("customer"),
		Date:     query.DateRange{From: v.Get("date_gte"), To: v.Get("date_lte")},
	}
	return f, page, nil
}

// ParseProjectQuery reads q, repeatable status, the due date range (dueDate_gte
// or due_date_gte), _sort and _order plus paging.
func ParseProjectQuery(v url.Values) (usecase.ProjectListOptions, error) {
	page, err := ParsePage(v)
	if err != nil {
		return usecase.ProjectListOptions{}, err
	}

	opts := usecase.ProjectListOptions{
		Filter: query.ProjectFilter{
			Search:  v.Get("q"),
			DueDate: query.DateRange{From: first(v, "dueDate_gte", "due_date_gte"), To: first(v, "dueDate_lte", "due_date_lte")},
		},
		SortDir: query.Asc,
		Page:    page,
	}
	for _, raw := range v["status"] {
		for _, s := range strings.Split(raw, ",") {
			status := entities.ProjectStatus(strings.TrimSpace(s))
			if status == "" {
				continue
			}
			if !status.Valid() {
				return usecase.ProjectListOptions{}, fmt.Errorf("%w: unknown status %q", ErrInvalidQuery, status)
			}
			opts.Filter.Statuses = append(opts.Filter.Statuses, status)
		}
	}

	if field := v.Get("_sort"); field != "" {
		if !query.ValidProjectSortField(field) {
			return usecase.ProjectListOptions{}, fmt.Errorf("%w: cannot sort by %q", ErrInvalidQuery, field)
		}
		opts.SortField = field
	}
	switch strings.ToLower(v.Get("_order")) {
	case "", string(query.Asc):
	case string(query.Desc):
		opts.SortDir = query.Desc
	default:
		return usecase.ProjectListOptions{}, fmt.Errorf("%w: _order must be asc or desc", ErrInvalidQuery)
	}
	return opts, nil
}

func optionalInt(v url.Values, key string) (int, error) {
	raw := v.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidQuery, key)
	}
	return n, nil
}

func first(v url.Values, keys ...string) string {
	for _, k := range keys {
		if s := v.Get(k); s != "" {
			return s
		}
	}
	return ""
}
