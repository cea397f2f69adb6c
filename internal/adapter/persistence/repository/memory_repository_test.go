package repository

import (
	"context"
	"testing"
	"time"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEstimation(id string) entities.Estimation {
	return entities.Estimation{
		ID:       id,
		Name:     "Quote",
		Customer: "Acme",
		Date:     "2024-05-01",
		Sections: []entities.Section{{ID: "s1", Title: "Main", Items: []entities.LineItem{
			{ID: "i1", Title: "Desk", Unit: "pcs", Quantity: 10, UnitPrice: 50, MarginPercent: 10},
		}}},
	}
}

func TestEstimationMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEstimationMemoryRepository(0)

	t.Run("create and get return copies", func(t *testing.T) {
		in := sampleEstimation("e1")
		_, err := repo.Create(ctx, in)
		require.NoError(t, err)

		in.Sections[0].Items[0].Quantity = 999
		got, err := repo.GetByID(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, 10.0, got.Sections[0].Items[0].Quantity)

		got.Sections[0].Title = "mutated"
		again, _ := repo.GetByID(ctx, "e1")
		assert.Equal(t, "Main", again.Sections[0].Title)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := repo.Create(ctx, sampleEstimation("e1"))
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("missing id returns zero value", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("replace", func(t *testing.T) {
		e := sampleEstimation("e1")
		e.Name = "Renamed"
		out, err := repo.Replace(ctx, e)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", out.Name)

		missing, err := repo.Replace(ctx, sampleEstimation("ghost"))
		require.NoError(t, err)
		assert.Empty(t, missing.ID)
	})

	t.Run("list and delete", func(t *testing.T) {
		_, err := repo.Create(ctx, sampleEstimation("e2"))
		require.NoError(t, err)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		found, err := repo.Delete(ctx, "e1")
		require.NoError(t, err)
		assert.True(t, found)

		found, err = repo.Delete(ctx, "e1")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestEstimationMemoryRepository_LatencyHonoursContext(t *testing.T) {
	repo := NewEstimationMemoryRepository(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProjectMemoryRepository_ListInCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectMemoryRepository(0)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"c", "a", "b"} {
		_, err := repo.Create(ctx, entities.Project{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Second)})
		require.NoError(t, err)
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{all[0].ID, all[1].ID, all[2].ID})

	found, err := repo.Delete(ctx, "a")
	require.NoError(t, err)
	assert.True(t, found)
	got, _ := repo.GetByID(ctx, "a")
	assert.Empty(t, got.ID)
}

func TestUserMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserMemoryRepository()

	_, err := repo.Create(ctx, entities.User{ID: "u1", Email: "ann@b.test"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, entities.User{ID: "u2", Email: "ann@b.test"})
	assert.ErrorIs(t, err, interfaces.ErrDuplicateEmail)

	u, err := repo.GetByEmail(ctx, "ann@b.test")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	missing, err := repo.GetByEmail(ctx, "bob@b.test")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	estimations := NewEstimationMemoryRepository(0)
	projects := NewProjectMemoryRepository(0)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, SeedDemoData(ctx, estimations, projects, now))
	require.NoError(t, SeedDemoData(ctx, estimations, projects, now))

	ps, _ := projects.List(ctx)
	es, _ := estimations.List(ctx)
	assert.Len(t, ps, 5)
	assert.Len(t, es, 2)
	for _, p := range ps {
		assert.True(t, p.Status.Valid(), p.ID)
	}
}

func TestDynamoItemMapping(t *testing.T) {
	e := sampleEstimation("e1")
	e.CreatedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	e.UpdatedAt = e.CreatedAt
	e.Sections[0].Items[0].UnitPrice = 0.1

	it := toEstimationItem(e)
	assert.Equal(t, "0.1", it.Sections[0].Items[0].Price)
	assert.Equal(t, e, fromEstimationItem(it))

	p := entities.Project{ID: "p1", Customer: "Acme", Status: entities.ProjectStatusOnHold, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt}
	assert.Equal(t, p, fromProjectItem(toProjectItem(p)))
}
