package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/centralcontact/forms-api/internal/api/dto"
	"github.com/centralcontact/forms-api/internal/service/pubsub"
	"github.com/centralcontact/forms-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Client struct {
	conn        *websocket.Conn
	websiteUUID string
	send        chan []byte
}

// WebSocketHandler streams incoming form messages to dashboard clients
// watching a website, fanned out across instances via Redis pub/sub.
type WebSocketHandler struct {
	clients        map[*Client]bool
	register       chan *Client
	unregister     chan *Client
	mutex          sync.RWMutex
	logger         *logger.Logger
	pubsub         *pubsub.RedisPubSub
	ctx            context.Context
	cancel         context.CancelFunc
	websiteClients map[string]int // Count of clients per website
}

func NewWebSocketHandler(logger *logger.Logger, pubsub *pubsub.RedisPubSub) *WebSocketHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &WebSocketHandler{
		clients:        make(map[*Client]bool),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		logger:         logger,
		pubsub:         pubsub,
		ctx:            ctx,
		cancel:         cancel,
		websiteClients: make(map[string]int),
	}
}

// HandleWebSocket godoc
// @Summary Stream live form messages
// @Description Upgrade to a WebSocket that pushes new messages for the given website as they arrive
// @Tags messages
// @Param uuid query string true "Website UUID"
// @Success 101
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router /messages/stream [get]
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	websiteUUID := c.Query("uuid")
	if websiteUUID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.Error{Message: "uuid query parameter is required"})
		return
	}

	// Upgrade HTTP connection to WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Message: "Failed to upgrade connection"})
		return
	}

	// Create and register new client
	client := &Client{
		conn:        conn,
		websiteUUID: websiteUUID,
		send:        make(chan []byte, websocketSendChannelBufferSize),
	}
	h.register <- client

	go h.writePump(client)
	go h.readPump(client)
}

func (h *WebSocketHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.websiteClients[client.websiteUUID]++

			// Subscribe to the website's channel if this is the first client
			if h.websiteClients[client.websiteUUID] == 1 {
				if err := h.pubsub.Subscribe(h.ctx, client.websiteUUID, h.handlePubSubMessage); err != nil {
					h.logger.Errorf("Failed to subscribe to website %s: %v", client.websiteUUID, err)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)

				// Decrement website client count
				h.websiteClients[client.websiteUUID]--

				// Unsubscribe if no more clients for this website
				if h.websiteClients[client.websiteUUID] == 0 {
					h.pubsub.Unsubscribe(client.websiteUUID)
					delete(h.websiteClients, client.websiteUUID)
				}
			}
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *WebSocketHandler) Stop() {
	h.cancel()
	h.pubsub.Close()
}

// handlePubSubMessage handles events received from Redis pub/sub
func (h *WebSocketHandler) handlePubSubMessage(event *dto.MessageEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorf("Error marshaling message event: %v", err)
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients {
		if client.websiteUUID == event.WebsiteUUID {
			select {
			case client.send <- payload:
			default: // If the channel is full, close the channel and remove the client
				close(client.send)
				delete(h.clients, client)
				h.websiteClients[client.websiteUUID]--

				// Unsubscribe if no more clients for this website
				if h.websiteClients[client.websiteUUID] == 0 {
					h.pubsub.Unsubscribe(client.websiteUUID)
					delete(h.websiteClients, client.websiteUUID)
				}
			}
		}
	}
}

func (h *WebSocketHandler) writePump(client *Client) {
	defer func() {
		client.conn.Close()
	}()

	for message := range client.send {
		w, err := client.conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)

		if err := w.Close(); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *WebSocketHandler) readPump(client *Client) {
	defer func() {
		h.unregister <- client
		client.conn.Close()
	}()

	for {
		messageType, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for client %s: %v", client.websiteUUID, err)
			} else {
				h.logger.Warnf("Read error for client %s: %v", client.websiteUUID, err)
			}
			break
		}

		// Handle any actual messages from client (though we don't expect any)
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			h.logger.Infof("Received message from client %s: %s", client.websiteUUID, string(message))
		}
	}
}

// BroadcastMessage publishes a new message event to every instance's
// connected clients for the event's website.
func (h *WebSocketHandler) BroadcastMessage(event *dto.MessageEvent) {
	if err := h.pubsub.Publish(h.ctx, event); err != nil {
		h.logger.Errorf("Failed to publish message event: %v", err)
	}
}
