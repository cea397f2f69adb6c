package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"estimaflow/internal/adapter/http/handlers/mocks"
	"estimaflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IDashboardUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/v1/dashboard", NewDashboardHandler(uc).Summary)
		return r
	}

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		uc.EXPECT().Summary(gomock.Any()).Return(usecase.DashboardSummary{
			Stats:            usecase.DashboardStats{TotalProjects: 3, ActiveProjects: 2},
			EstimationsValue: 1000,
		}, nil)

		w := serve(newRouter(uc), http.MethodGet, "/v1/dashboard", "")
		var body struct {
			Stats struct {
				TotalProjects  int `json:"total_projects"`
				ActiveProjects int `json:"active_projects"`
			} `json:"stats"`
			ValueFormatted string `json:"estimations_value_formatted"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || w.Code != http.StatusOK {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
		if body.Stats.TotalProjects != 3 || body.Stats.ActiveProjects != 2 || body.ValueFormatted != "$1,000.00" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		uc.EXPECT().Summary(gomock.Any()).Return(usecase.DashboardSummary{}, errors.New("db"))

		w := serve(newRouter(uc), http.MethodGet, "/v1/dashboard", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
