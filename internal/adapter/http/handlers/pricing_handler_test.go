package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"estimaflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func newPricingRouter(allowedOrigins ...string) *gin.Engine {
	h := NewPricingHandler(usecase.NewPricingUseCase(), allowedOrigins)
	r := gin.New()
	r.POST("/v1/pricing/preview", h.Preview)
	r.GET("/v1/pricing/live", h.Live)
	return r
}

type previewBody struct {
	Sections []struct {
		Total          float64 `json:"total"`
		FormattedTotal string  `json:"formattedTotal"`
		Items          []struct {
			Total float64 `json:"total"`
		} `json:"items"`
	} `json:"sections"`
	Totals struct {
		SubTotal    float64 `json:"subTotal"`
		TotalMargin float64 `json:"totalMargin"`
		TotalAmount float64 `json:"totalAmount"`
	} `json:"totals"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func TestPricingHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newPricingRouter()

	t.Run("lenient numbers", func(t *testing.T) {
		body := `{"sections":[
			{"title":"A","items":[{"quantity":10,"price":50,"margin":10},{"quantity":"5","price":"20","margin":""}]},
			{"title":"B","items":[{"quantity":null,"price":"abc"},{"title":"half filled"}]}
		]}`
		w := serve(r, http.MethodPost, "/v1/pricing/preview", body)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var res previewBody
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if res.Totals.SubTotal != 600 || res.Totals.TotalMargin != 50 || res.Totals.TotalAmount != 650 {
			t.Fatalf("unexpected totals: %+v", res.Totals)
		}
		if len(res.Sections) != 2 || res.Sections[0].FormattedTotal != "$650.00" || res.Sections[1].Total != 0 {
			t.Fatalf("unexpected sections: %+v", res.Sections)
		}
	})

	t.Run("empty form", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/pricing/preview", `{}`)
		var res previewBody
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || w.Code != http.StatusOK {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
		if res.Totals.TotalAmount != 0 || res.Sections == nil {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not json", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/v1/pricing/preview", `[`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPricingHandler_Live(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(newPricingRouter())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/pricing/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	exchange := func(frame string) previewBody {
		t.Helper()
		if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
			t.Fatalf("write: %v", err)
		}
		var res previewBody
		if err := conn.ReadJSON(&res); err != nil {
			t.Fatalf("read: %v", err)
		}
		return res
	}

	first := exchange(`{"sections":[{"items":[{"quantity":10,"price":50,"margin":10}]}]}`)
	if first.Totals.TotalAmount != 550 {
		t.Fatalf("unexpected first totals: %+v", first.Totals)
	}

	bad := exchange(`not json`)
	if bad.Error == nil || bad.Error.Code != "INVALID_PAYLOAD" {
		t.Fatalf("expected error frame, got %+v", bad)
	}

	second := exchange(`{"sections":[{"items":[{"quantity":10,"price":50,"margin":10},{"quantity":5,"price":20,"margin":0}]}]}`)
	if second.Totals.TotalAmount != 650 {
		t.Fatalf("connection should stay usable after a bad frame: %+v", second.Totals)
	}
}

func TestPricingHandler_LiveOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(newPricingRouter("https://app.example.com"))
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/pricing/live"

	tests := []struct {
		name   string
		origin string
		ok     bool
	}{
		{"no origin header", "", true},
		{"same host", srv.URL, true},
		{"configured origin", "https://app.example.com", true},
		{"foreign origin", "https://evil.example.net", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.origin != "" {
				header.Set("Origin", tt.origin)
			}
			conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
			if tt.ok {
				if err != nil {
					t.Fatalf("expected upgrade, got %v", err)
				}
				conn.Close()
				return
			}
			if err == nil {
				conn.Close()
				t.Fatalf("expected the handshake to be refused")
			}
			if resp == nil || resp.StatusCode != http.StatusForbidden {
				t.Fatalf("expected 403, got %v", resp)
			}
		})
	}
}
