package ws

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/KirkDiggler/pointing/internal/models"
	sessionService "github.com/KirkDiggler/pointing/internal/services/session"
	"github.com/gorilla/websocket"
)

// Config holds configuration for the synchronization gateway
type Config struct {
	// SessionService executes mutations and reloads snapshots
	SessionService sessionService.Service
}

// Gateway keeps a registry of live connections grouped by session ID
// and pushes the full session snapshot to every connection in a group
// after each successful mutation. The registry is owned exclusively by
// the gateway.
type Gateway struct {
	sessions sessionService.Service
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	groups map[string]map[*connection]struct{}
}

// New creates a new synchronization gateway
func New(cfg *Config) (*Gateway, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	return &Gateway{
		sessions: cfg.SessionService,
		upgrader: websocket.Upgrader{
			// Session IDs act as capability tokens, there is no
			// origin-based access control
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		groups: make(map[string]map[*connection]struct{}),
	}, nil
}

// RegisterConnection adds a connection to a session's group, creating
// the group if needed
func (g *Gateway) RegisterConnection(sessionID string, c *connection) {
	g.mu.Lock()
	defer g.mu.Unlock()

	group, ok := g.groups[sessionID]
	if !ok {
		group = make(map[*connection]struct{})
		g.groups[sessionID] = group
	}
	group[c] = struct{}{}
}

// UnregisterConnection removes a connection from a session's group.
// Dropping an emptied group is bookkeeping only, the session itself
// lives on in the store.
func (g *Gateway) UnregisterConnection(sessionID string, c *connection) {
	g.mu.Lock()
	defer g.mu.Unlock()

	group, ok := g.groups[sessionID]
	if !ok {
		return
	}
	delete(group, c)
	if len(group) == 0 {
		delete(g.groups, sessionID)
	}
}

// GroupSize reports how many connections a session currently has
func (g *Gateway) GroupSize(sessionID string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.groups[sessionID])
}

// BroadcastSessionState reloads the session and delivers the full
// snapshot to every connection in its group, including whichever
// connection triggered the mutation. A session that vanished from the
// store is logged and skipped, not fatal.
func (g *Gateway) BroadcastSessionState(ctx context.Context, sessionID string) error {
	output, err := g.sessions.GetSession(ctx, &sessionService.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if sessionService.IsNotFound(err) {
			log.Printf("broadcast skipped, session %s no longer exists", sessionID)
			return nil
		}
		return err
	}

	msg := &ServerMessage{
		Type:    MessageTypeSessionUpdated,
		Session: output.Session,
	}

	g.mu.RLock()
	conns := make([]*connection, 0, len(g.groups[sessionID]))
	for c := range g.groups[sessionID] {
		conns = append(conns, c)
	}
	g.mu.RUnlock()

	for _, c := range conns {
		if err := c.send(msg); err != nil {
			log.Printf("failed to push snapshot to a connection in session %s: %v", sessionID, err)
		}
	}

	return nil
}

// HandleConnection upgrades an HTTP request to a WebSocket and serves
// it until the client disconnects
func (g *Gateway) HandleConnection(w http.ResponseWriter, r *http.Request) {
	socket, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	c := newConnection(socket)
	defer g.drop(c)
	defer socket.Close()

	for {
		var msg ClientMessage
		if err := socket.ReadJSON(&msg); err != nil {
			return
		}
		g.handleMessage(r.Context(), c, &msg)
	}
}

// handleMessage dispatches one inbound client message. Errors go back
// to the originating connection only; successful mutations end in one
// broadcast to the whole group.
func (g *Gateway) handleMessage(ctx context.Context, c *connection, msg *ClientMessage) {
	if msg.Type == MessageTypeJoin {
		g.handleJoin(ctx, c, msg)
		return
	}

	if c.sessionID == "" {
		c.sendError(ErrorCodeBadMessage, "join a session first")
		return
	}

	switch msg.Type {
	case MessageTypeLeave:
		g.handleLeave(ctx, c)

	case MessageTypeStartVoting:
		_, err := g.sessions.StartVoting(ctx, &sessionService.StartVotingInput{
			SessionID:     c.sessionID,
			ParticipantID: c.participantID,
			Question:      msg.Question,
		})
		g.finishMutation(ctx, c, err)

	case MessageTypeSubmitVote:
		_, err := g.sessions.SubmitVote(ctx, &sessionService.SubmitVoteInput{
			SessionID:     c.sessionID,
			ParticipantID: c.participantID,
			Value:         msg.Value,
		})
		g.finishMutation(ctx, c, err)

	case MessageTypeRevealVotes:
		_, err := g.sessions.RevealVotes(ctx, &sessionService.RevealVotesInput{
			SessionID:     c.sessionID,
			ParticipantID: c.participantID,
		})
		g.finishMutation(ctx, c, err)

	case MessageTypeFinishVoting:
		_, err := g.sessions.FinishVoting(ctx, &sessionService.FinishVotingInput{
			SessionID:     c.sessionID,
			ParticipantID: c.participantID,
		})
		g.finishMutation(ctx, c, err)

	default:
		c.sendError(ErrorCodeBadMessage, "unknown message type "+msg.Type)
	}
}

// handleJoin attaches the connection to a session. A supplied
// participant ID resumes that participant instead of creating a new
// one, so reconnects never duplicate members.
func (g *Gateway) handleJoin(ctx context.Context, c *connection, msg *ClientMessage) {
	if c.sessionID != "" {
		c.sendError(ErrorCodeBadMessage, "already joined")
		return
	}
	if msg.SessionID == "" {
		c.sendError(ErrorCodeBadMessage, "sessionId is required")
		return
	}

	participantID := msg.ParticipantID
	if participantID == "" {
		output, err := g.sessions.JoinSession(ctx, &sessionService.JoinSessionInput{
			SessionID: msg.SessionID,
			Name:      msg.Name,
			Role:      models.ParticipantRole(msg.Role),
		})
		if err != nil {
			c.sendError(classify(err), err.Error())
			return
		}
		participantID = output.ParticipantID
	}

	// Marks the participant connected; for a resumed ID this doubles as
	// validation that the participant actually exists
	_, err := g.sessions.SetParticipantConnected(ctx, &sessionService.SetParticipantConnectedInput{
		SessionID:     msg.SessionID,
		ParticipantID: participantID,
		Connected:     true,
	})
	if err != nil {
		c.sendError(classify(err), err.Error())
		return
	}

	c.sessionID = msg.SessionID
	c.participantID = participantID
	g.RegisterConnection(c.sessionID, c)

	if err := c.send(&ServerMessage{
		Type:          MessageTypeJoined,
		ParticipantID: participantID,
	}); err != nil {
		log.Printf("failed to ack join for session %s: %v", c.sessionID, err)
	}

	// Everyone, including the joiner, converges on the same snapshot
	if err := g.BroadcastSessionState(ctx, c.sessionID); err != nil {
		log.Printf("broadcast after join failed for session %s: %v", c.sessionID, err)
	}
}

// handleLeave removes the participant from the session and detaches the
// connection
func (g *Gateway) handleLeave(ctx context.Context, c *connection) {
	sessionID := c.sessionID

	_, err := g.sessions.LeaveSession(ctx, &sessionService.LeaveSessionInput{
		SessionID:     sessionID,
		ParticipantID: c.participantID,
	})
	if err != nil {
		c.sendError(classify(err), err.Error())
		return
	}

	g.UnregisterConnection(sessionID, c)
	c.sessionID = ""
	c.participantID = ""

	if err := g.BroadcastSessionState(ctx, sessionID); err != nil {
		log.Printf("broadcast after leave failed for session %s: %v", sessionID, err)
	}
}

// finishMutation reports the outcome of a round mutation: an error event
// to the initiator on failure, one group broadcast on success
func (g *Gateway) finishMutation(ctx context.Context, c *connection, err error) {
	if err != nil {
		c.sendError(classify(err), err.Error())
		return
	}
	if err := g.BroadcastSessionState(ctx, c.sessionID); err != nil {
		log.Printf("broadcast failed for session %s: %v", c.sessionID, err)
	}
}

// drop cleans up after a closed connection: unregister, flag the
// participant as disconnected and let the remaining group know
func (g *Gateway) drop(c *connection) {
	if c.sessionID == "" {
		return
	}

	// The request context is gone once the read loop exits
	ctx := context.Background()

	g.UnregisterConnection(c.sessionID, c)

	if c.participantID != "" {
		_, err := g.sessions.SetParticipantConnected(ctx, &sessionService.SetParticipantConnectedInput{
			SessionID:     c.sessionID,
			ParticipantID: c.participantID,
			Connected:     false,
		})
		if err != nil && !sessionService.IsNotFound(err) {
			log.Printf("failed to mark participant %s disconnected: %v", c.participantID, err)
		}
	}

	if err := g.BroadcastSessionState(ctx, c.sessionID); err != nil {
		log.Printf("broadcast after disconnect failed for session %s: %v", c.sessionID, err)
	}
}

// classify maps service errors onto wire error codes
func classify(err error) string {
	switch {
	case sessionService.IsNotFound(err):
		return ErrorCodeNotFound
	case sessionService.IsValidation(err):
		return ErrorCodeValidation
	case sessionService.IsPrecondition(err):
		return ErrorCodePrecondition
	case sessionService.IsAuthorization(err):
		return ErrorCodeAuthorization
	default:
		return ErrorCodeInternal
	}
}
