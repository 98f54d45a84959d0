package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// connection wraps one client socket. Writes come from both the read
// loop (error events) and broadcast fan-out, so they are serialized
// with a mutex.
type connection struct {
	ws *websocket.Conn

	writeMu sync.Mutex

	// sessionID and participantID are set by the join handshake and
	// only touched from the connection's own read loop
	sessionID     string
	participantID string
}

func newConnection(ws *websocket.Conn) *connection {
	return &connection{ws: ws}
}

// send writes one message to the client
func (c *connection) send(msg *ServerMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteJSON(msg)
}

// sendError reports a failed operation back to this client only
func (c *connection) sendError(code, message string) {
	// Best effort: a client that cannot receive errors is about to
	// drop anyway
	_ = c.send(&ServerMessage{
		Type:    MessageTypeError,
		Code:    code,
		Message: message,
	})
}
