package websocket

import (
	"encoding/json"
	"time"

	"fleamarket/pkg/logger"
)

// WebSocket Message Types
const (
	MessageTypePing         = "ping"
	MessageTypePong         = "pong"
	MessageTypeStoreChanged = "store_changed"
	MessageTypeError        = "error"
)

// WebSocket Message Structure
type WSMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// HandleClientMessage processes incoming WebSocket messages. Views only read
// the feed; mutations go through the HTTP API.
func (m *Manager) HandleClientMessage(client *Client, messageBytes []byte) {
	var wsMessage WSMessage
	if err := json.Unmarshal(messageBytes, &wsMessage); err != nil {
		logger.Debug("WebSocket: invalid frame from %s: %v", client.ID, err)
		m.sendToClient(client, WSMessage{
			Type:      MessageTypeError,
			Data:      map[string]string{"message": "Invalid message format"},
			Timestamp: time.Now().Format(time.RFC3339),
		})
		return
	}

	switch wsMessage.Type {
	case MessageTypePing:
		m.sendToClient(client, WSMessage{
			Type:      MessageTypePong,
			Data:      map[string]string{"status": "alive"},
			Timestamp: time.Now().Format(time.RFC3339),
		})
	default:
		m.sendToClient(client, WSMessage{
			Type:      MessageTypeError,
			Data:      map[string]string{"message": "Unknown message type"},
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
}

func (m *Manager) sendToClient(client *Client, message WSMessage) {
	payload, err := json.Marshal(message)
	if err != nil {
		logger.Error("WebSocket: failed to encode %s message: %v", message.Type, err)
		return
	}

	select {
	case client.Send <- payload:
	default:
		logger.Warn("WebSocket: send buffer full for %s", client.ID)
	}
}
