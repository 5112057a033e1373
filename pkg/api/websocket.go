package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Local hot-seat play; any page on the host may connect
	},
}

// WSMessage is a command sent by a WebSocket client.
type WSMessage struct {
	Type    string          `json:"type"`              // roll, move, pass, new, state, history, ping
	ID      string          `json:"id"`                // Request ID echoed in the response
	Payload json.RawMessage `json:"payload,omitempty"` // MoveRequest for "move"
}

// WSResponse answers one WSMessage.
type WSResponse struct {
	Type    string      `json:"type"` // result, error or pong
	ID      string      `json:"id,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    string      `json:"code,omitempty"`
}

// WSClient represents a connected WebSocket client.
type WSClient struct {
	conn     *websocket.Conn
	handlers *Handlers
	sendChan chan WSResponse
}

// WebSocket handles WebSocket connections that issue game commands.
func (h *Handlers) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	client := &WSClient{conn: conn, handlers: h, sendChan: make(chan WSResponse, 256)}
	go client.writePump()
	client.readPump()
}

func (c *WSClient) writePump() {
	defer c.conn.Close()
	for msg := range c.sendChan {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (c *WSClient) readPump() {
	defer func() { close(c.sendChan); c.conn.Close() }()
	for {
		var msg WSMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		c.sendChan <- c.handleMessage(msg)
	}
}

func (c *WSClient) handleMessage(msg WSMessage) WSResponse {
	h := c.handlers
	switch msg.Type {
	case "ping":
		return WSResponse{Type: "pong", ID: msg.ID}
	case "state":
		return result(msg, h.State(), nil)
	case "new":
		return result(msg, h.NewGame(), nil)
	case "roll":
		resp, err := h.Roll()
		return result(msg, resp, err)
	case "pass":
		st, err := h.Pass()
		return result(msg, st, err)
	case "history":
		resp, err := h.History()
		return result(msg, resp, err)
	case "move":
		var req MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return WSResponse{Type: "error", ID: msg.ID, Error: "invalid payload", Code: "INVALID_JSON"}
		}
		resp, err := h.Move(req)
		return result(msg, resp, err)
	default:
		return WSResponse{Type: "error", ID: msg.ID, Error: "unknown message type", Code: "UNKNOWN_TYPE"}
	}
}

func result(msg WSMessage, payload interface{}, err error) WSResponse {
	if err != nil {
		_, code := classify(err)
		return WSResponse{Type: "error", ID: msg.ID, Error: err.Error(), Code: code}
	}
	return WSResponse{Type: "result", ID: msg.ID, Payload: payload}
}
