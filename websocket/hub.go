package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Event is a progression notification pushed to a connected user:
// level_up, rank_up or achievement_unlocked.
type Event struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

type userEvent struct {
	UserID uuid.UUID
	Event  Event
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var events = make(chan userEvent, 64)

// Publish queues an event for a user. Drops the event if the hub is
// backed up; pushes are best-effort.
func Publish(userID uuid.UUID, event Event) {
	select {
	case events <- userEvent{UserID: userID, Event: event}:
	default:
		log.Printf("Event hub full, dropping %s event for user %s", event.Type, userID)
	}
}

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case ev := <-events:
			clientsMu.RLock()
			conn, ok := clients[ev.UserID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(ev.Event); err != nil {
				log.Printf("Error sending %s event to client %s: %v", ev.Event.Type, ev.UserID, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, ev.UserID)
				clientsMu.Unlock()
			}
		}
	}
}
