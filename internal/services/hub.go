package services

import (
	"encoding/json"
	"sync"

	"github.com/arnold/hard75-api/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event types sent over WebSocket
const (
	EventLogUpdated  = "log_updated"
	EventDayComplete = "day_complete"
	EventBadgeEarned = "badge_earned"
	EventStepGoal    = "step_goal"
)

// textMessage matches websocket.TextMessage.
const textMessage = 1

// WSEvent is the JSON message sent to connected clients
type WSEvent struct {
	Type   string      `json:"type"`
	UserID string      `json:"userId"`
	Date   string      `json:"date,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Socket is the part of a websocket connection the hub writes to.
type Socket interface {
	WriteMessage(messageType int, data []byte) error
}

// Hub fans events out to every device a user has connected.
type Hub struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]map[Socket]bool // userID -> set of connections
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[uuid.UUID]map[Socket]bool)}
}

// Global hub instance
var WS = NewHub()

func (h *Hub) Register(userID uuid.UUID, s Socket) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[userID] == nil {
		h.rooms[userID] = make(map[Socket]bool)
	}
	h.rooms[userID][s] = true
	logger.Log.Debug("ws_register", zap.String("user_id", userID.String()), zap.Int("connections", len(h.rooms[userID])))
}

func (h *Hub) Unregister(userID uuid.UUID, s Socket) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.rooms[userID]; ok {
		delete(conns, s)
		if len(conns) == 0 {
			delete(h.rooms, userID)
		}
	}
	logger.Log.Debug("ws_unregister", zap.String("user_id", userID.String()))
}

// Connections returns how many sockets the user has open.
func (h *Hub) Connections(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[userID])
}

// Broadcast sends an event to every connection the user has open.
func (h *Hub) Broadcast(userID uuid.UUID, event WSEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.rooms[userID]
	if !ok {
		return
	}

	msg, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error("ws_marshal_failed", zap.Error(err))
		return
	}

	for s := range conns {
		if err := s.WriteMessage(textMessage, msg); err != nil {
			logger.Log.Warn("ws_write_failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
	}
}
