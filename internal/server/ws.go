package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	. "MissileCommand/internal/game"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type inboundMessage struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type liveConn struct {
	conn     *websocket.Conn
	sendTick *time.Ticker
}

func serveWS(h *Hub, w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	roomID := query.Get("room")
	if roomID == "" {
		roomID = RandId("room")
	}
	enc := parseEncoding(query.Get("enc"))

	params := h.Params
	overrides, hasOverrides := parseParamOverrides(query)
	if hasOverrides {
		params = applyParamOverrides(params, overrides)
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	lc := &liveConn{
		conn:     conn,
		sendTick: time.NewTicker(time.Second / UpdateRateHz),
	}

	room, ok := h.AcquireRoom(roomID, params)
	if !ok {
		_ = conn.WriteJSON(errorDTO{Type: "room_full", Message: "room full"})
		lc.sendTick.Stop()
		conn.Close()
		return
	}
	playerID := RandId("p")
	if hasOverrides {
		log.Printf("room %s overrides: ammo %d reload %dms spawn %dms max attackers %d",
			roomID, params.MaxAmmo, params.ReloadMs, params.SpawnIntervalMs, params.MaxAttackers)
	}
	log.Printf("player %s joined room %s (enc %s)", playerID, roomID, enc)

	room.Mu.Lock()
	welcome := welcomeDTO{
		Type:     "welcome",
		Room:     room.ID,
		Player:   playerID,
		Encoding: string(enc),
		W:        room.Width,
		H:        room.Height,
	}
	room.Mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := conn.WriteJSON(welcome); err != nil {
		log.Printf("send welcome error: %v", err)
		cancel()
	}

	go func() {
		defer cancel()
		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if msgType != websocket.TextMessage {
				log.Printf("Received unsupported WebSocket message type %d", msgType)
				continue
			}
			var inbound inboundMessage
			if err := json.Unmarshal(data, &inbound); err != nil {
				log.Printf("invalid JSON message: %v", err)
				continue
			}
			handleInbound(room, inbound)
		}
	}()

	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-lc.sendTick.C:
				snap := room.Snapshot()
				msgType, data, err := encodeState(enc, snapshotToDTO(snap))
				if err != nil {
					log.Printf("player %s: %v", playerID, err)
					return
				}
				if err := conn.WriteMessage(msgType, data); err != nil {
					log.Printf("send state error: %v", err)
					return
				}
				if snap.Stopped {
					_ = conn.WriteMessage(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, "quit"))
					return
				}
			}
		}
	}()

	<-ctx.Done()
	lc.sendTick.Stop()
	conn.Close()
	room.Detach()
	log.Printf("player %s left room %s", playerID, roomID)
}

func handleInbound(room *Room, msg inboundMessage) {
	at := Vec2{X: msg.X, Y: msg.Y}
	switch msg.Type {
	case "launch":
		room.Enqueue(Command{Kind: CmdLaunch, At: at})
	case "repair":
		room.Enqueue(Command{Kind: CmdRepair, At: at})
	case "quit":
		room.Enqueue(Command{Kind: CmdQuit})
	default:
		log.Printf("unknown text message type: %s", msg.Type)
	}
}
