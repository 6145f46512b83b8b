package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"logogrid/internal/logos"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// HandleWS runs a live display. The connection owns its selection; each
// "shuffle" message replaces it and pushes the new grid.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request, sel logos.Selection) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Log.Debug("ws upgrade failed", zap.Error(err))
		return
	}
	if len(sel.Indices) == 0 && s.Selector.Pool().Len() > 0 {
		sel = s.Selector.Deal()
	}
	client := NewWSClient(conn, sel)
	s.Hub.Register(client)
	defer func() {
		s.Hub.Unregister(client)
		_ = conn.Close()
		client.Close()
	}()

	go client.WritePump()

	client.Push("grid", s.gridPayload(client.Selection()))

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var inbound struct {
			Type string `json:"type"`
			Ts   int64  `json:"ts"`
		}
		if err := json.Unmarshal(msg, &inbound); err != nil {
			client.Push("error", map[string]interface{}{"e": "invalid message"})
			continue
		}
		switch inbound.Type {
		case "ping":
			client.Push("pong", map[string]interface{}{
				"ts":          inbound.Ts,
				"server_time": time.Now().UnixMilli(),
			})
		case "shuffle":
			client.Replace(s.Selector.Deal())
			s.Log.Debug("ws reshuffled", zap.String("client", client.ID), zap.Int("size", len(client.Selection().Logos)))
			client.Push("grid", s.gridPayload(client.Selection()))
		case "grid":
			client.Push("grid", s.gridPayload(client.Selection()))
		default:
			client.Push("error", map[string]interface{}{"e": "unknown type"})
		}
	}
}
