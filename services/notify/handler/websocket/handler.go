package websocket

import (
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/rickshawlabs/dispatch/internal/pkg/constants"
	"github.com/rickshawlabs/dispatch/internal/pkg/logger"
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	wsmanager "github.com/rickshawlabs/dispatch/internal/pkg/websocket"
	"github.com/rickshawlabs/dispatch/services/notify"
)

// WebSocketHandler attaches each authenticated connection to the relay
// as a subscriber and pushes its snapshots down the wire
type WebSocketHandler struct {
	manager *wsmanager.Manager
	relay   notify.Relay
}

// NewWebSocketHandler creates a new notify WebSocket handler
func NewWebSocketHandler(manager *wsmanager.Manager, relay notify.Relay) *WebSocketHandler {
	return &WebSocketHandler{
		manager: manager,
		relay:   relay,
	}
}

// HandleWebSocket upgrades the connection and streams relay snapshots to
// the client until it disconnects
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

func (h *WebSocketHandler) handleClient(client *models.WebSocketClient, ws *websocket.Conn) error {
	client.Conn = ws
	h.manager.AddClient(client)
	defer h.manager.RemoveClient(client.UserID)

	sub := h.relay.Subscribe(client.UserID, nil)
	defer sub.Cancel()

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", client.Role))

	readerDone := make(chan struct{})
	go h.readLoop(client, ws, readerDone)

	for {
		select {
		case <-readerDone:
			logger.Info("WebSocket client disconnected",
				logger.String("user_id", client.UserID))
			return nil
		case snap, ok := <-sub.Snapshots():
			if !ok {
				return nil
			}
			if err := h.manager.SendMessage(ws, snap.Kind, snap.Payload); err != nil {
				logger.Warn("Failed to push snapshot",
					logger.String("user_id", client.UserID),
					logger.String("event", snap.Kind),
					logger.Err(err))
				return nil
			}
		}
	}
}

// readLoop drains inbound frames so pings are answered and disconnects
// are noticed
func (h *WebSocketHandler) readLoop(client *models.WebSocketClient, ws *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	for {
		var msg models.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("WebSocket read failed",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return
		}

		switch msg.Event {
		case constants.EventPing:
			if err := h.manager.SendMessage(ws, constants.EventPong, nil); err != nil {
				return
			}
		default:
			if err := h.manager.SendErrorMessage(ws, constants.ErrorInvalidFormat, "unknown event: "+msg.Event); err != nil {
				return
			}
		}
	}
}
