package models

import "time"

// ParticipantRole represents what a participant may do in a session
type ParticipantRole string

const (
	// RoleVoter participants may vote and drive round transitions
	RoleVoter ParticipantRole = "voter"

	// RoleObserver participants may only watch
	RoleObserver ParticipantRole = "observer"
)

// IsValid reports whether the role is one of the known roles
func (r ParticipantRole) IsValid() bool {
	return r == RoleVoter || r == RoleObserver
}

// Participant represents a person in an estimation session
type Participant struct {
	// ID is the opaque, role-prefixed identifier for the participant
	ID string `json:"id"`

	// Name is the display name of the participant
	Name string `json:"name"`

	// Role determines whether the participant may vote
	Role ParticipantRole `json:"role"`

	// Connected indicates whether the participant has a live connection
	Connected bool `json:"connected"`

	// JoinedAt is when the participant joined the session
	JoinedAt time.Time `json:"joinedAt"`
}

// CanVote reports whether the participant may cast votes and drive
// round transitions
func (p *Participant) CanVote() bool {
	return p.Role == RoleVoter
}
