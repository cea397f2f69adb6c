package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"estimaflow/internal/adapter/http/handlers/mocks"
	"estimaflow/internal/domain/entities"
	"estimaflow/internal/domain/query"
	"estimaflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProjectRouter(uc usecase.IProjectUseCase) *gin.Engine {
	h := NewProjectHandler(uc)
	r := gin.New()
	r.GET("/v1/projects", h.List)
	r.GET("/v1/projects/statuses", h.Statuses)
	r.POST("/v1/projects", h.Create)
	r.GET("/v1/projects/:id", h.Get)
	r.PUT("/v1/projects/:id", h.Replace)
	r.DELETE("/v1/projects/:id", h.Delete)
	return r
}

func TestProjectHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filters and sort forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(uc)

		uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, opts usecase.ProjectListOptions) (query.Result[entities.Project], error) {
				if len(opts.Filter.Statuses) != 2 || opts.SortField != "customer" || opts.SortDir != query.Desc {
					t.Fatalf("unexpected options: %+v", opts)
				}
				return query.Result[entities.Project]{
					Data:  []entities.Project{{ID: "p-1", Status: entities.ProjectStatusProcessing}},
					Total: 1,
				}, nil
			},
		)

		w := serve(r, http.MethodGet, "/v1/projects?status=Processing&status=Completed&_sort=customer&_order=desc", "")
		if w.Code != http.StatusOK || w.Header().Get("X-Total-Count") != "1" {
			t.Fatalf("unexpected response: %d %v", w.Code, w.Header())
		}
		var list []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || list[0]["statusColor"] != "#2196f3" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown sort field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newProjectRouter(mocks.NewMockIProjectUseCase(ctrl))

		w := serve(r, http.MethodGet, "/v1/projects?_sort=budget", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProjectHandler_Statuses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := newProjectRouter(mocks.NewMockIProjectUseCase(ctrl))

	w := serve(r, http.MethodGet, "/v1/projects/statuses", "")
	var list []map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil || len(list) != 5 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestProjectHandler_CRUD(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(uc)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Project{}, &usecase.ValidationError{
			Kind: usecase.ErrInvalidProject, Problems: []string{"status: must be one of the known statuses"},
		})

		w := serve(r, http.MethodPost, "/v1/projects", `{"status":"Lost"}`)
		if w.Code != http.StatusUnprocessableEntity || decodeError(t, w).Code != "INVALID_PROJECT" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(uc)
		uc.EXPECT().Create(gomock.Any(), entities.Project{Customer: "Acme", ProjectName: "T", RefNumber: "R", Status: entities.ProjectStatusCompleted}).
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusCompleted}, nil)

		w := serve(r, http.MethodPost, "/v1/projects", `{"customer":"Acme","projectName":"T","refNumber":"R","status":"Completed"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(uc)
		uc.EXPECT().GetByID(gomock.Any(), "p-9").Return(entities.Project{}, usecase.ErrProjectNotFound)

		w := serve(r, http.MethodGet, "/v1/projects/p-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("replace", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(uc)
		uc.EXPECT().Replace(gomock.Any(), "p-1", gomock.Any()).Return(entities.Project{ID: "p-1"}, nil)

		w := serve(r, http.MethodPut, "/v1/projects/p-1", `{"customer":"Acme"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newProjectRouter(uc)
		uc.EXPECT().Delete(gomock.Any(), "p-1").Return(usecase.ErrProjectNotFound)

		w := serve(r, http.MethodDelete, "/v1/projects/p-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
