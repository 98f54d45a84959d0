package ws

import (
	sessionService "github.com/KirkDiggler/pointing/internal/services/session"
)

// Client-to-server message types
const (
	MessageTypeJoin         = "join"
	MessageTypeLeave        = "leave"
	MessageTypeStartVoting  = "start-voting"
	MessageTypeSubmitVote   = "submit-vote"
	MessageTypeRevealVotes  = "reveal-votes"
	MessageTypeFinishVoting = "finish-voting"
)

// Server-to-client message types. SessionUpdated is the only
// state-carrying event: it always holds the complete current snapshot,
// never a delta.
const (
	MessageTypeJoined         = "joined"
	MessageTypeSessionUpdated = "session-updated"
	MessageTypeError          = "error"
)

// Error codes attached to error events
const (
	ErrorCodeNotFound      = "not_found"
	ErrorCodeValidation    = "validation"
	ErrorCodePrecondition  = "precondition"
	ErrorCodeAuthorization = "authorization"
	ErrorCodeBadMessage    = "bad_message"
	ErrorCodeInternal      = "internal"
)

// ClientMessage is the envelope for everything a client sends
type ClientMessage struct {
	Type string `json:"type"`

	// SessionID scopes the join handshake
	SessionID string `json:"sessionId,omitempty"`

	// ParticipantID resumes an existing participant on join
	ParticipantID string `json:"participantId,omitempty"`

	// Name and Role enroll a new participant on join
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`

	// Question opens a round on start-voting
	Question string `json:"question,omitempty"`

	// Value is the vote label on submit-vote
	Value string `json:"value,omitempty"`
}

// ServerMessage is the envelope for everything the server sends
type ServerMessage struct {
	Type string `json:"type"`

	// Session carries the full snapshot on session-updated
	Session *sessionService.SessionSnapshot `json:"session,omitempty"`

	// ParticipantID tells a freshly joined client its identity
	ParticipantID string `json:"participantId,omitempty"`

	// Message and Code describe an error event
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}
