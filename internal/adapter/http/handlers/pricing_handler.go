package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"estimaflow/internal/adapter/http/dto/request"
	"estimaflow/internal/adapter/http/dto/response"
	"estimaflow/internal/logger"
	"estimaflow/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Largest form state accepted in one frame.
	maxMessageSize = 64 << 10

	sendBuffer = 8
)

type PricingHandler struct {
	usecase        usecase.IPricingUseCase
	allowedOrigins map[string]bool
	upgrader       websocket.Upgrader
}

// NewPricingHandler accepts websocket upgrades from the server's own host and
// from allowedOrigins ("*" allows any origin).
func NewPricingHandler(uc usecase.IPricingUseCase, allowedOrigins []string) *PricingHandler {
	h := &PricingHandler{usecase: uc, allowedOrigins: make(map[string]bool, len(allowedOrigins))}
	for _, o := range allowedOrigins {
		h.allowedOrigins[strings.TrimRight(strings.ToLower(o), "/")] = true
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *PricingHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// not a browser
		return true
	}
	if h.allowedOrigins["*"] || h.allowedOrigins[strings.TrimRight(strings.ToLower(origin), "/")] {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

// Preview prices the posted form state. Blank or malformed numbers count as
// zero, so any structurally valid body gets a breakdown.
func (h *PricingHandler) Preview(c *gin.Context) {
	var payload request.PricingPreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload.WithDetails(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(h.usecase.Preview(payload.ToSections())))
}

// Live upgrades to a websocket. Every text frame carries the whole form state
// and is answered with its breakdown, in order. A frame that is not JSON is
// answered with an error body and the connection stays open.
func (h *PricingHandler) Live(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.FromGin(c).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	log := logger.FromGin(c)
	log.Info().Msg("live pricing connected")

	send := make(chan any, sendBuffer)
	done := make(chan struct{})
	go func() {
		defer close(done)
		writePump(conn, send)
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("live pricing closed unexpectedly")
			}
			break
		}
		select {
		case send <- h.price(message):
		case <-done:
		}
	}
	close(send)
	<-done
	log.Info().Msg("live pricing disconnected")
}

func (h *PricingHandler) price(message []byte) any {
	var payload request.PricingPreviewRequest
	if err := json.Unmarshal(message, &payload); err != nil {
		return errInvalidPayload.WithDetails(err.Error()).ToHTTPError()
	}
	return response.FromBreakdown(h.usecase.Preview(payload.ToSections()))
}

// writePump is the only writer on conn.
func writePump(conn *websocket.Conn, send <-chan any) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case msg, ok := <-send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
