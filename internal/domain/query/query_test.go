package query

import (
	"math"
	"testing"

	"estimaflow/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	records := []int{1, 2, 3, 4, 5, 6, 7}

	res := Paginate(records, Page{Number: 2, Size: 3})
	assert.Equal(t, []int{4, 5, 6}, res.Data)
	assert.Equal(t, 7, res.Total)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 3, res.PageSize)

	last := Paginate(records, Page{Number: 3, Size: 3})
	assert.Equal(t, []int{7}, last.Data)

	past := Paginate(records, Page{Number: 9, Size: 3})
	assert.Empty(t, past.Data)
	assert.NotNil(t, past.Data)

	def := Paginate(records, Page{})
	assert.Equal(t, DefaultPage, def.Page)
	assert.Equal(t, DefaultPageSize, def.PageSize)
	assert.Len(t, def.Data, 7)

	capped := Page{Number: 1, Size: 1000}.Normalize()
	assert.Equal(t, MaxPageSize, capped.Size)
}

func TestPaginate_HugePageNumber(t *testing.T) {
	records := []int{1, 2, 3}

	var res Result[int]
	require.NotPanics(t, func() {
		res = Paginate(records, Page{Number: math.MaxInt, Size: 10})
	})
	assert.Empty(t, res.Data)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, math.MaxInt, res.Page)

	require.NotPanics(t, func() {
		res = Paginate(records, Page{Number: math.MaxInt / 2, Size: MaxPageSize})
	})
	assert.Empty(t, res.Data)

	empty := Paginate([]int{}, Page{Number: 1, Size: 10})
	assert.Empty(t, empty.Data)
	assert.NotNil(t, empty.Data)
}

func TestFilterEstimations(t *testing.T) {
	all := []entities.Estimation{
		{ID: "1", Name: "Office fit-out", Customer: "Acme", Date: "2024-03-01"},
		{ID: "2", Name: "Warehouse roof", Customer: "Globex", Date: "2024-05-10"},
		{ID: "3", Name: "Acme lobby", Customer: "Initech", Date: "2024-04-02"},
	}

	t.Run("search matches name or customer", func(t *testing.T) {
		got := FilterEstimations(all, EstimationFilter{Search: " ACME "})
		require.Len(t, got, 2)
		assert.Equal(t, "3", got[0].ID)
		assert.Equal(t, "1", got[1].ID)
	})

	t.Run("customer is exact", func(t *testing.T) {
		got := FilterEstimations(all, EstimationFilter{Customer: "globex"})
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].ID)
	})

	t.Run("date range needs both ends", func(t *testing.T) {
		got := FilterEstimations(all, EstimationFilter{Date: DateRange{From: "2024-04-01", To: "2024-05-10"}})
		require.Len(t, got, 2)
		assert.Equal(t, "2", got[0].ID)

		open := FilterEstimations(all, EstimationFilter{Date: DateRange{From: "2024-04-01"}})
		assert.Len(t, open, 3)
	})
}

func TestFilterAndSortProjects(t *testing.T) {
	all := []entities.Project{
		{ID: "1", Customer: "Acme", ProjectName: "Tower", RefNumber: "R-9", Status: entities.ProjectStatusCompleted, DueDate: "2024-01-10"},
		{ID: "2", Customer: "Globex", ProjectName: "Bridge", RefNumber: "R-2", Status: entities.ProjectStatusProcessing, DueDate: "2024-06-01"},
		{ID: "3", Customer: "Initech", ProjectName: "Acme plant", RefNumber: "X-1", Status: entities.ProjectStatusOnHold, DueDate: "2024-03-15"},
	}

	got := FilterProjects(all, ProjectFilter{Search: "acme"})
	assert.Len(t, got, 2)

	got = FilterProjects(all, ProjectFilter{Search: "r-2"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = FilterProjects(all, ProjectFilter{Statuses: []entities.ProjectStatus{entities.ProjectStatusCompleted, entities.ProjectStatusOnHold}})
	assert.Len(t, got, 2)

	got = FilterProjects(all, ProjectFilter{DueDate: DateRange{From: "2024-02-01", To: "2024-12-31"}})
	assert.Len(t, got, 2)

	sorted := SortProjects(all, "dueDate", Desc)
	assert.Equal(t, []string{"2", "3", "1"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	assert.Equal(t, "1", all[0].ID, "input must not be reordered")

	sorted = SortProjects(all, "customer", Asc)
	assert.Equal(t, "Acme", sorted[0].Customer)

	unchanged := SortProjects(all, "nope", Asc)
	assert.Equal(t, all, unchanged)
	assert.False(t, ValidProjectSortField("nope"))
	assert.True(t, ValidProjectSortField("refNumber"))
}
